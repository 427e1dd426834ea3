// api/service/services.go
package service

import (
	"github.com/hospicore/facility/api/audit"
	"github.com/hospicore/facility/api/directory"
	"github.com/hospicore/facility/api/util"
)

type Services struct {
	Auth    IAuthService
	Floor   IFloorService
	Bed     IBedService
	Patient IPatientService
	Staff   IStaffService
	Audit   IAuditService
}

func InitializeServices(
	api directory.API,
	auditMirror audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	services := &Services{
		Auth:    NewAuthService(api),
		Floor:   NewFloorService(api, cacheService, notificationSvc, eventBus),
		Bed:     NewBedService(api, cacheService, notificationSvc, eventBus),
		Patient: NewPatientService(api, validationUtil, notificationSvc, eventBus),
		Staff:   NewStaffService(api, validationUtil, cacheService, notificationSvc, eventBus),
		Audit:   NewAuditService(api, auditMirror),
	}

	return services, nil
}
