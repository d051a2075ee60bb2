package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationModel: pengumuman untuk satu batch, atau global bila
// notification_batch_id NULL.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationBatchID   *uuid.UUID     `gorm:"column:notification_batch_id;type:uuid;index" json:"notification_batch_id,omitempty"`
	NotificationTitle     string         `gorm:"column:notification_title;size:200;not null" json:"notification_title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationData      datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
