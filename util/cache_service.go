// api/util/cache_service.go

package util

import (
	"context"

	"github.com/hospicore/facility/api/db"
	"github.com/hospicore/facility/api/model"
)

// CacheService fronts the redis layer so services never touch db directly.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetFloors(ctx context.Context) ([]model.Floor, error) {
	return db.GetCachedFloors(ctx)
}

func (c *CacheService) SetFloors(ctx context.Context, floors []model.Floor) error {
	return db.CacheFloors(ctx, floors)
}

func (c *CacheService) DeleteFloors(ctx context.Context) error {
	return db.DeleteCachedFloors(ctx)
}

func (c *CacheService) GetFloorBeds(ctx context.Context, floorID int) ([]model.Bed, error) {
	return db.GetCachedFloorBeds(ctx, floorID)
}

func (c *CacheService) SetFloorBeds(ctx context.Context, floorID int, beds []model.Bed) error {
	return db.CacheFloorBeds(ctx, floorID, beds)
}

func (c *CacheService) DeleteFloorBeds(ctx context.Context, floorID int) error {
	return db.DeleteCachedFloorBeds(ctx, floorID)
}

func (c *CacheService) GetStaffList(ctx context.Context, role model.StaffRole) ([]model.Staff, error) {
	return db.GetCachedStaffList(ctx, role)
}

func (c *CacheService) SetStaffList(ctx context.Context, role model.StaffRole, staff []model.Staff) error {
	return db.CacheStaffList(ctx, role, staff)
}

func (c *CacheService) DeleteStaffList(ctx context.Context, role model.StaffRole) error {
	return db.DeleteCachedStaffList(ctx, role)
}
