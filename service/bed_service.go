// api/service/bed_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hospicore/facility/api/directory"
	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/policy"
	"github.com/hospicore/facility/api/util"
)

// IBedService defines the interface for bed operations
type IBedService interface {
	ListFloorBeds(ctx context.Context, sess model.Session, floorID int) ([]model.Bed, error)
	AddBeds(ctx context.Context, sess model.Session, floorID, count int) (string, error)
	DeleteBed(ctx context.Context, sess model.Session, floorID, bedID int) (string, error)
	ListAssignments(ctx context.Context, sess model.Session) ([]model.BedAssignment, error)
	AssignBeds(ctx context.Context, sess model.Session, req model.AssignBedsRequest) error
}

// BedService handles business logic for bed inventory and assignment.
type BedService struct {
	api             directory.API
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IBedService = &BedService{}

// NewBedService creates a new instance of BedService
func NewBedService(api directory.API, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *BedService {
	service := &BedService{
		api:             api,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventBedsChanged, service.handleBedsChanged)

	return service
}

func (s *BedService) handleBedsChanged(ctx context.Context, event util.Event) error {
	floorID, _ := event.Payload.(int)
	logger.Info("Beds changed event received", zap.Int("floorID", floorID))

	if err := s.cacheService.DeleteFloorBeds(ctx, floorID); err != nil {
		logger.Warn("Failed to invalidate bed cache", zap.Error(err), zap.Int("floorID", floorID))
	}
	if err := s.notificationSvc.NotifyBedChange(ctx, "changed", floorID); err != nil {
		logger.Warn("Failed to send bed change notification", zap.Error(err))
	}
	return nil
}

// ListFloorBeds returns the floor's beds ordered by sequence label, answering
// from the cache when possible.
func (s *BedService) ListFloorBeds(ctx context.Context, sess model.Session, floorID int) ([]model.Bed, error) {
	cached, err := s.cacheService.GetFloorBeds(ctx, floorID)
	if err != nil {
		logger.Warn("Bed cache lookup failed, falling back to backend", zap.Error(err), zap.Int("floorID", floorID))
	} else if cached != nil {
		return policy.SortBySequence(cached), nil
	}

	beds, err := s.api.ListFloorBeds(ctx, sess, floorID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetFloorBeds(ctx, floorID, beds); err != nil {
		logger.Warn("Failed to cache beds", zap.Error(err), zap.Int("floorID", floorID))
	}
	return policy.SortBySequence(beds), nil
}

// AddBeds appends a batch of beds to the floor's sequence.
func (s *BedService) AddBeds(ctx context.Context, sess model.Session, floorID, count int) (string, error) {
	if count < 1 {
		return "", facility_errors.ErrInvalidCount
	}

	msg, err := s.api.AddBeds(ctx, sess, floorID, count)
	if err != nil {
		return "", err
	}

	s.eventBus.Publish(ctx, util.EventBedsChanged, floorID)
	return msg, nil
}

// DeleteBed removes one bed after checking the occupancy rules against a fresh
// snapshot of the floor. Only an unoccupied, unassigned bed at either end of
// the sequence is removable; everything else is rejected without spending a
// backend call.
func (s *BedService) DeleteBed(ctx context.Context, sess model.Session, floorID, bedID int) (string, error) {
	beds, err := s.api.ListFloorBeds(ctx, sess, floorID)
	if err != nil {
		return "", err
	}

	var target *model.Bed
	for i := range beds {
		if beds[i].ID == bedID {
			target = &beds[i]
			break
		}
	}
	if target == nil {
		return "", facility_errors.ErrBedNotFound
	}

	if d := policy.CanDeleteBed(*target, beds); !d.Allowed {
		return "", fmt.Errorf("%w: %s", facility_errors.ErrBedNotDeletable, d.Reason)
	}

	msg, err := s.api.DeleteBed(ctx, sess, bedID)
	if err != nil {
		return "", err
	}

	s.eventBus.Publish(ctx, util.EventBedsChanged, floorID)
	return msg, nil
}

func (s *BedService) ListAssignments(ctx context.Context, sess model.Session) ([]model.BedAssignment, error) {
	return s.api.ListAssignments(ctx, sess)
}

// AssignBeds hands a batch of free beds to one nurse.
func (s *BedService) AssignBeds(ctx context.Context, sess model.Session, req model.AssignBedsRequest) error {
	if len(req.BedIDs) == 0 {
		return facility_errors.ErrInvalidCount
	}

	if err := s.api.AssignBeds(ctx, sess, req); err != nil {
		return err
	}

	// Assignment changes the nurse column of every touched bed; the floors
	// involved are not in the request, so the per-floor snapshots expire by
	// TTL instead of explicit invalidation.
	logger.Info("Beds assigned", zap.Int("nurseID", req.NurseID), zap.Int("count", len(req.BedIDs)))
	return nil
}
