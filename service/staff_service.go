// api/service/staff_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hospicore/facility/api/db"
	"github.com/hospicore/facility/api/directory"
	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/policy"
	"github.com/hospicore/facility/api/util"
	"github.com/hospicore/facility/api/workflow"
)

// workflowLockTTL bounds how long a parked workflow may hold its staff member
// exclusively while the admin picks a delegate.
const workflowLockTTL = 2 * time.Minute

// IStaffService defines the interface for nurse and secretary operations
type IStaffService interface {
	ListNurses(ctx context.Context, sess model.Session) ([]model.Staff, error)
	ListFloorNurses(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error)
	ListSecretaries(ctx context.Context, sess model.Session) ([]model.Staff, error)
	ListFloorSecretaries(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error)
	GetSecretary(ctx context.Context, sess model.Session, id int) (*model.Staff, error)

	CreateStaff(ctx context.Context, sess model.Session, role model.StaffRole, req model.CreateStaffRequest) error
	UpdateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int, req model.CreateStaffRequest) error
	UpdateCredentials(ctx context.Context, sess model.Session, id int, req model.UpdateCredentialsRequest) error
	ReactivateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) error

	DeactivateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) error
	EligibleDelegates(ctx context.Context, sess model.Session, nurseID int) ([]model.Staff, error)
	ResolveDelegation(ctx context.Context, sess model.Session, nurseID, delegateID int) (string, error)

	DelegateBeds(ctx context.Context, sess model.Session, fromNurseID, toNurseID int) (string, error)
	ReassignFloor(ctx context.Context, sess model.Session, role model.StaffRole, staffID, newFloorID int) (string, error)
}

// StaffService handles the nurse and secretary roster, including the
// delegate-then-retry workflows for deactivation and floor reassignment.
type StaffService struct {
	api             directory.API
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	workflows       *workflow.Registry
}

var _ IStaffService = &StaffService{}

// NewStaffService creates a new instance of StaffService
func NewStaffService(api directory.API, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *StaffService {
	service := &StaffService{
		api:             api,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		workflows:       workflow.NewRegistry(),
	}

	eventBus.Subscribe(util.EventStaffChanged, service.handleStaffChanged)
	eventBus.Subscribe(util.EventBedsDelegated, service.handleBedsDelegated)

	return service
}

func (s *StaffService) handleStaffChanged(ctx context.Context, event util.Event) error {
	staff, ok := event.Payload.(model.Staff)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Staff changed event received", zap.Int("staffID", staff.ID), zap.String("role", string(staff.Role)))

	if err := s.cacheService.DeleteStaffList(ctx, staff.Role); err != nil {
		logger.Warn("Failed to invalidate staff cache", zap.Error(err), zap.String("role", string(staff.Role)))
	}
	if err := s.notificationSvc.NotifyStaffChange(ctx, "changed", staff); err != nil {
		logger.Warn("Failed to send staff change notification", zap.Error(err))
	}
	return nil
}

func (s *StaffService) handleBedsDelegated(ctx context.Context, event util.Event) error {
	ev, ok := event.Payload.(model.BedsDelegated)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Beds delegated event received",
		zap.Int("fromNurseID", ev.FromNurseID),
		zap.Int("toNurseID", ev.ToNurseID),
		zap.Int("floorID", ev.FloorID))

	// Delegation rewrites the nurse column of every bed on the floor's
	// snapshot; drop it so the next read refetches.
	if ev.FloorID != 0 {
		if err := s.cacheService.DeleteFloorBeds(ctx, ev.FloorID); err != nil {
			logger.Warn("Failed to invalidate bed cache", zap.Error(err), zap.Int("floorID", ev.FloorID))
		}
	}
	if err := s.notificationSvc.NotifyBedsDelegated(ctx, ev.FromNurseID, ev.ToNurseID); err != nil {
		logger.Warn("Failed to send delegation notification", zap.Error(err))
	}
	return nil
}

func (s *StaffService) ListNurses(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	return s.listCached(ctx, sess, model.RoleNurse)
}

func (s *StaffService) ListSecretaries(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	return s.listCached(ctx, sess, model.RoleSecretary)
}

func (s *StaffService) listCached(ctx context.Context, sess model.Session, role model.StaffRole) ([]model.Staff, error) {
	cached, err := s.cacheService.GetStaffList(ctx, role)
	if err != nil {
		logger.Warn("Staff cache lookup failed, falling back to backend", zap.Error(err), zap.String("role", string(role)))
	} else if cached != nil {
		return cached, nil
	}

	var staff []model.Staff
	if role == model.RoleNurse {
		staff, err = s.api.ListNurses(ctx, sess)
	} else {
		staff, err = s.api.ListSecretaries(ctx, sess)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetStaffList(ctx, role, staff); err != nil {
		logger.Warn("Failed to cache staff list", zap.Error(err), zap.String("role", string(role)))
	}
	return staff, nil
}

func (s *StaffService) ListFloorNurses(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	return s.api.ListFloorNurses(ctx, sess, floorID)
}

func (s *StaffService) ListFloorSecretaries(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	return s.api.ListFloorSecretaries(ctx, sess, floorID)
}

func (s *StaffService) GetSecretary(ctx context.Context, sess model.Session, id int) (*model.Staff, error) {
	return s.api.GetSecretary(ctx, sess, id)
}

// CreateStaff registers a nurse or secretary. The account's initial password
// is derived from the name and handed to the backend with the form.
func (s *StaffService) CreateStaff(ctx context.Context, sess model.Session, role model.StaffRole, req model.CreateStaffRequest) error {
	if err := s.validationUtil.ValidateStaff(req); err != nil {
		return fmt.Errorf("%w: %v", facility_errors.ErrInvalidStaffData, err)
	}
	req.Password = s.validationUtil.GeneratePassword(req.FirstName, req.PaternalName)

	var err error
	if role == model.RoleNurse {
		err = s.api.CreateNurse(ctx, sess, req)
	} else {
		err = s.api.CreateSecretary(ctx, sess, req)
	}
	if err != nil {
		return err
	}

	s.eventBus.Publish(ctx, util.EventStaffChanged, model.Staff{
		FirstName:    req.FirstName,
		PaternalName: req.PaternalName,
		Role:         role,
	})
	return nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int, req model.CreateStaffRequest) error {
	if err := s.validationUtil.ValidateStaff(req); err != nil {
		return fmt.Errorf("%w: %v", facility_errors.ErrInvalidStaffData, err)
	}

	var err error
	if role == model.RoleNurse {
		err = s.api.UpdateNurse(ctx, sess, id, req)
	} else {
		err = s.api.UpdateSecretary(ctx, sess, id, req)
	}
	if err != nil {
		return err
	}

	s.eventBus.Publish(ctx, util.EventStaffChanged, model.Staff{ID: id, Role: role})
	return nil
}

// UpdateCredentials applies a self-service username/password change.
func (s *StaffService) UpdateCredentials(ctx context.Context, sess model.Session, id int, req model.UpdateCredentialsRequest) error {
	if err := s.validationUtil.ValidateCredentials(req); err != nil {
		return fmt.Errorf("%w: %v", facility_errors.ErrInvalidCredentials, err)
	}
	return s.api.UpdateCredentials(ctx, sess, id, req)
}

func (s *StaffService) ReactivateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) error {
	if err := s.api.ReactivateStaff(ctx, sess, id); err != nil {
		return err
	}
	s.eventBus.Publish(ctx, util.EventStaffChanged, model.Staff{ID: id, Role: role})
	return nil
}

// findStaff locates one roster entry by id and role.
func (s *StaffService) findStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) (*model.Staff, error) {
	roster, err := s.listCached(ctx, sess, role)
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].ID == id {
			return &roster[i], nil
		}
	}
	return nil, facility_errors.ErrStaffNotFound
}

// floorRoster narrows a roster to the members of one floor.
func floorRoster(roster []model.Staff, floorID int) []model.Staff {
	out := make([]model.Staff, 0, len(roster))
	for _, m := range roster {
		if m.FloorID() == floorID {
			out = append(out, m)
		}
	}
	return out
}

// DeactivateStaff soft-deletes a nurse or secretary. The sole active member of
// a floor is never deactivatable. A nurse still holding beds parks the
// operation in a pending workflow and returns ErrStillHoldsBeds; the caller
// then offers a delegate and resolves via ResolveDelegation.
func (s *StaffService) DeactivateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) error {
	person, err := s.findStaff(ctx, sess, role, id)
	if err != nil {
		return err
	}

	roster, err := s.listCached(ctx, sess, role)
	if err != nil {
		return err
	}
	if d := policy.CanDeactivate(*person, floorRoster(roster, person.FloorID())); !d.Allowed {
		return fmt.Errorf("%w: %s", facility_errors.ErrLastActiveOnFloor, d.Reason)
	}

	if role == model.RoleSecretary {
		if err := s.api.DeactivateSecretary(ctx, sess, id); err != nil {
			return err
		}
		s.eventBus.Publish(ctx, util.EventStaffChanged, *person)
		return nil
	}

	// Nurses may hold beds; their deactivation runs as a workflow under a
	// lock so two admins cannot interleave delegate choices.
	if !s.lockStaffWorkflow(ctx, id) {
		return facility_errors.ErrWorkflowInProgress
	}

	d := s.workflows.GetOrCreate(id, func() *workflow.DelegateRetry {
		return workflow.NewDelegateRetry(id,
			func(ctx context.Context) (string, error) { return "", s.api.DeactivateNurse(ctx, sess, id) },
			func(ctx context.Context, to int) (string, error) { return s.api.DelegateBeds(ctx, sess, id, to) },
		)
	})

	_, err = d.Start(ctx)
	switch {
	case err == nil:
		s.finishWorkflow(ctx, id, *person)
		return nil
	case errors.Is(err, facility_errors.ErrStillHoldsBeds):
		// Lock stays held until the delegate choice arrives or the TTL
		// expires.
		return err
	default:
		s.finishWorkflow(ctx, id, *person)
		return err
	}
}

// lockStaffWorkflow takes the per-staff workflow lock. A lock error is
// tolerated: the lock is best-effort and redis being down must not block
// roster management.
func (s *StaffService) lockStaffWorkflow(ctx context.Context, id int) bool {
	locked, err := db.LockResource(ctx, fmt.Sprintf("staff:workflow:%d", id), workflowLockTTL)
	if err != nil {
		logger.Warn("Workflow lock unavailable, proceeding without it", zap.Error(err), zap.Int("staffID", id))
		return true
	}
	return locked
}

func (s *StaffService) finishWorkflow(ctx context.Context, id int, person model.Staff) {
	s.workflows.Remove(id)
	if err := db.UnlockResource(ctx, fmt.Sprintf("staff:workflow:%d", id)); err != nil {
		logger.Warn("Failed to release workflow lock", zap.Error(err), zap.Int("staffID", id))
	}
	s.eventBus.Publish(ctx, util.EventStaffChanged, person)
}

// EligibleDelegates lists the active nurses on the parked nurse's floor that
// may receive her beds. An empty list means the parked operation cannot
// proceed.
func (s *StaffService) EligibleDelegates(ctx context.Context, sess model.Session, nurseID int) ([]model.Staff, error) {
	nurse, err := s.findStaff(ctx, sess, model.RoleNurse, nurseID)
	if err != nil {
		return nil, err
	}
	floorNurses, err := s.api.ListFloorNurses(ctx, sess, nurse.FloorID())
	if err != nil {
		return nil, err
	}
	// Floor-scoped listings omit the floor object; pin it so the same-floor
	// rule sees what the listing already guarantees.
	for i := range floorNurses {
		if floorNurses[i].Floor == nil {
			floorNurses[i].Floor = nurse.Floor
		}
	}
	return policy.EligibleDelegates(*nurse, floorNurses), nil
}

// ResolveDelegation completes a parked nurse workflow, whether it guards a
// deactivation or a floor reassignment: the chosen delegate takes over every
// bed and the blocked operation is retried exactly once.
func (s *StaffService) ResolveDelegation(ctx context.Context, sess model.Session, nurseID, delegateID int) (string, error) {
	d, ok := s.workflows.Pending(nurseID)
	if !ok {
		return "", facility_errors.ErrNoPendingWorkflow
	}

	nurse, err := s.findStaff(ctx, sess, model.RoleNurse, nurseID)
	if err != nil {
		return "", err
	}
	delegate, err := s.findStaff(ctx, sess, model.RoleNurse, delegateID)
	if err != nil {
		return "", err
	}
	if dec := policy.CanDelegate(*nurse, *delegate); !dec.Allowed {
		return "", fmt.Errorf("%w: %s", facility_errors.ErrDelegateNotEligible, dec.Reason)
	}

	msg, err := d.ChooseDelegate(ctx, delegateID)
	if d.Terminal() {
		s.finishWorkflow(ctx, nurseID, *nurse)
	}
	if err != nil {
		return "", err
	}

	s.eventBus.Publish(ctx, util.EventBedsDelegated, model.BedsDelegated{
		FromNurseID: nurseID,
		ToNurseID:   delegateID,
		FloorID:     nurse.FloorID(),
	})
	return msg, nil
}

// DelegateBeds moves every bed from one nurse to another outside any parked
// workflow. Re-delegating a nurse with nothing left is a backend no-op.
func (s *StaffService) DelegateBeds(ctx context.Context, sess model.Session, fromNurseID, toNurseID int) (string, error) {
	from, err := s.findStaff(ctx, sess, model.RoleNurse, fromNurseID)
	if err != nil {
		return "", err
	}
	to, err := s.findStaff(ctx, sess, model.RoleNurse, toNurseID)
	if err != nil {
		return "", err
	}
	if d := policy.CanDelegate(*from, *to); !d.Allowed {
		return "", fmt.Errorf("%w: %s", facility_errors.ErrDelegateNotEligible, d.Reason)
	}

	msg, err := s.api.DelegateBeds(ctx, sess, fromNurseID, toNurseID)
	if err != nil {
		return "", err
	}

	s.eventBus.Publish(ctx, util.EventBedsDelegated, model.BedsDelegated{
		FromNurseID: fromNurseID,
		ToNurseID:   toNurseID,
		FloorID:     from.FloorID(),
	})
	return msg, nil
}

// ReassignFloor moves a staff member to another floor. Moving someone to the
// floor they already occupy, or moving a floor's only secretary away, is
// rejected locally without a backend call. A nurse still holding beds parks
// the move in a pending workflow and returns ErrStillHoldsBeds, resolved the
// same way as a parked deactivation.
func (s *StaffService) ReassignFloor(ctx context.Context, sess model.Session, role model.StaffRole, staffID, newFloorID int) (string, error) {
	person, err := s.findStaff(ctx, sess, role, staffID)
	if err != nil {
		return "", err
	}

	var decision policy.Decision
	if role == model.RoleSecretary {
		floorSecs, err := s.api.ListFloorSecretaries(ctx, sess, person.FloorID())
		if err != nil {
			return "", err
		}
		decision = policy.CanReassignSecretary(*person, floorSecs, newFloorID)
	} else {
		decision = policy.CanReassign(*person, newFloorID)
	}

	if !decision.Allowed {
		if decision.Reason == policy.ReasonSameFloor {
			return "", facility_errors.ErrSameFloor
		}
		return "", fmt.Errorf("%w: %s", facility_errors.ErrLastActiveOnFloor, decision.Reason)
	}

	if role == model.RoleSecretary {
		msg, err := s.api.ReassignFloor(ctx, sess, staffID, newFloorID)
		if err != nil {
			return "", err
		}
		s.eventBus.Publish(ctx, util.EventStaffChanged, *person)
		return msg, nil
	}

	// Nurses may hold beds; the move runs as a delegate-then-retry workflow
	// under the same lock as deactivation.
	if !s.lockStaffWorkflow(ctx, staffID) {
		return "", facility_errors.ErrWorkflowInProgress
	}

	d := s.workflows.GetOrCreate(staffID, func() *workflow.DelegateRetry {
		return workflow.NewDelegateRetry(staffID,
			func(ctx context.Context) (string, error) { return s.api.ReassignFloor(ctx, sess, staffID, newFloorID) },
			func(ctx context.Context, to int) (string, error) { return s.api.DelegateBeds(ctx, sess, staffID, to) },
		)
	})

	msg, err := d.Start(ctx)
	switch {
	case err == nil:
		s.finishWorkflow(ctx, staffID, *person)
		return msg, nil
	case errors.Is(err, facility_errors.ErrStillHoldsBeds):
		// Lock stays held until the delegate choice arrives or the TTL
		// expires.
		return "", err
	default:
		s.finishWorkflow(ctx, staffID, *person)
		return "", err
	}
}
