// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyFloorChange(ctx context.Context, changeType string, count int) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: Floors added",
			zap.Int("count", count))
	case "deleted":
		logger.Info("NOTIFICATION: Floor removed")
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyBedChange(ctx context.Context, changeType string, floorID int) error {
	logger.Info("NOTIFICATION: Bed inventory changed",
		zap.String("changeType", changeType),
		zap.Int("floorID", floorID))
	return nil
}

func (n *NotificationService) NotifyPatientAdmitted(ctx context.Context, patient model.AdmitPatientRequest) error {
	logger.Info("NOTIFICATION: Patient admitted",
		zap.String("patient", patient.FirstName+" "+patient.PaternalName),
		zap.Int("bedID", patient.BedID))
	return nil
}

func (n *NotificationService) NotifyPatientDischarged(ctx context.Context, patientID int) error {
	logger.Info("NOTIFICATION: Patient discharged",
		zap.Int("patientID", patientID))
	return nil
}

func (n *NotificationService) NotifyStaffChange(ctx context.Context, changeType string, staff model.Staff) error {
	logger.Info("NOTIFICATION: Staff roster changed",
		zap.String("changeType", changeType),
		zap.Int("staffID", staff.ID),
		zap.String("role", string(staff.Role)))
	return nil
}

func (n *NotificationService) NotifyBedsDelegated(ctx context.Context, fromNurseID, toNurseID int) error {
	logger.Info("NOTIFICATION: Beds delegated",
		zap.Int("fromNurseID", fromNurseID),
		zap.Int("toNurseID", toNurseID))
	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
