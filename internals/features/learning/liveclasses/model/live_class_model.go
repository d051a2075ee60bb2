package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LiveClassModel struct {
	LiveClassID              uuid.UUID      `gorm:"column:live_class_id;type:uuid;primaryKey" json:"live_class_id"`
	LiveClassBatchID         uuid.UUID      `gorm:"column:live_class_batch_id;type:uuid;not null;index" json:"live_class_batch_id"`
	LiveClassTitle           string         `gorm:"column:live_class_title;size:200;not null" json:"live_class_title"`
	LiveClassMeetingURL      string         `gorm:"column:live_class_meeting_url;type:text;not null" json:"live_class_meeting_url"`
	LiveClassStartsAt        time.Time      `gorm:"column:live_class_starts_at;not null" json:"live_class_starts_at"`
	LiveClassDurationMinutes int            `gorm:"column:live_class_duration_minutes;not null;default:60" json:"live_class_duration_minutes"`
	LiveClassWeekdays        pq.StringArray `gorm:"column:live_class_weekdays;type:text[]" json:"live_class_weekdays"` // jadwal berulang, mis. ["monday","wednesday"]
	LiveClassCreatedAt       time.Time      `gorm:"column:live_class_created_at;autoCreateTime" json:"live_class_created_at"`
	LiveClassUpdatedAt       time.Time      `gorm:"column:live_class_updated_at;autoUpdateTime" json:"live_class_updated_at"`
}

func (LiveClassModel) TableName() string {
	return "live_classes"
}

func (m *LiveClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.LiveClassID == uuid.Nil {
		m.LiveClassID = uuid.New()
	}
	return nil
}
