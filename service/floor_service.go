// api/service/floor_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hospicore/facility/api/directory"
	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/util"
)

// IFloorService defines the interface for floor operations
type IFloorService interface {
	ListFloors(ctx context.Context, sess model.Session) ([]model.Floor, error)
	AddFloors(ctx context.Context, sess model.Session, count int) (string, error)
	DeleteFloor(ctx context.Context, sess model.Session, floorID int) (string, error)
}

// FloorService handles business logic for floor operations
type FloorService struct {
	api             directory.API
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IFloorService = &FloorService{}

// NewFloorService creates a new instance of FloorService
func NewFloorService(api directory.API, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *FloorService {
	service := &FloorService{
		api:             api,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventFloorsChanged, service.handleFloorsChanged)

	return service
}

func (s *FloorService) handleFloorsChanged(ctx context.Context, event util.Event) error {
	change, ok := event.Payload.(model.FloorsChanged)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Floors changed event received",
		zap.String("changeType", change.ChangeType),
		zap.Int("count", change.Count))

	if err := s.cacheService.DeleteFloors(ctx); err != nil {
		logger.Warn("Failed to invalidate floors cache", zap.Error(err))
	}
	if err := s.notificationSvc.NotifyFloorChange(ctx, change.ChangeType, change.Count); err != nil {
		logger.Warn("Failed to send floor change notification", zap.Error(err))
	}
	return nil
}

// ListFloors answers from the cache when it holds a fresh snapshot and falls
// back to the backend otherwise.
func (s *FloorService) ListFloors(ctx context.Context, sess model.Session) ([]model.Floor, error) {
	cached, err := s.cacheService.GetFloors(ctx)
	if err != nil {
		logger.Warn("Floor cache lookup failed, falling back to backend", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	floors, err := s.api.ListFloors(ctx, sess)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetFloors(ctx, floors); err != nil {
		logger.Warn("Failed to cache floors", zap.Error(err))
	}
	return floors, nil
}

// AddFloors inserts a batch of floors. The backend names and numbers them.
func (s *FloorService) AddFloors(ctx context.Context, sess model.Session, count int) (string, error) {
	if count < 1 {
		return "", facility_errors.ErrInvalidCount
	}

	msg, err := s.api.AddFloors(ctx, sess, count)
	if err != nil {
		return "", err
	}

	s.eventBus.Publish(ctx, util.EventFloorsChanged, model.FloorsChanged{ChangeType: "created", Count: count})
	return msg, nil
}

// DeleteFloor removes a floor. A floor still owning beds is rejected locally
// before the backend is asked; the backend revalidates regardless.
func (s *FloorService) DeleteFloor(ctx context.Context, sess model.Session, floorID int) (string, error) {
	beds, err := s.api.ListFloorBeds(ctx, sess, floorID)
	if err != nil {
		return "", err
	}
	if len(beds) > 0 {
		return "", facility_errors.ErrFloorHasBeds
	}

	msg, err := s.api.DeleteFloor(ctx, sess, floorID)
	if err != nil {
		return "", err
	}

	if err := s.cacheService.DeleteFloorBeds(ctx, floorID); err != nil {
		logger.Warn("Failed to invalidate bed cache", zap.Error(err), zap.Int("floorID", floorID))
	}
	s.eventBus.Publish(ctx, util.EventFloorsChanged, model.FloorsChanged{ChangeType: "deleted", Count: 1})
	return msg, nil
}
