package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studyabroad_backend/internals/features/learning/notifications/model"
)

type NotificationDTO struct {
	NotificationID        uuid.UUID      `json:"notification_id"`
	NotificationBatchID   *uuid.UUID     `json:"notification_batch_id,omitempty"`
	NotificationTitle     string         `json:"notification_title"`
	NotificationMessage   string         `json:"notification_message"`
	NotificationData      datatypes.JSON `json:"notification_data,omitempty"`
	NotificationCreatedAt time.Time      `json:"notification_created_at"`
}

type CreateNotificationRequest struct {
	NotificationBatchID *uuid.UUID     `json:"notification_batch_id"`
	NotificationTitle   string         `json:"notification_title" validate:"required,min=3,max=200"`
	NotificationMessage string         `json:"notification_message" validate:"required"`
	NotificationData    datatypes.JSON `json:"notification_data"`
}

func ToNotificationDTO(m model.NotificationModel) NotificationDTO {
	return NotificationDTO{
		NotificationID:        m.NotificationID,
		NotificationBatchID:   m.NotificationBatchID,
		NotificationTitle:     m.NotificationTitle,
		NotificationMessage:   m.NotificationMessage,
		NotificationData:      m.NotificationData,
		NotificationCreatedAt: m.NotificationCreatedAt,
	}
}
