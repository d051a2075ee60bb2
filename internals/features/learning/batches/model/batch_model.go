package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchModel struct {
	BatchID          uuid.UUID `gorm:"column:batch_id;type:uuid;primaryKey" json:"batch_id"`
	BatchName        string    `gorm:"column:batch_name;size:120;not null" json:"batch_name"`
	BatchDescription string    `gorm:"column:batch_description;type:text" json:"batch_description"`
	BatchStartDate   time.Time `gorm:"column:batch_start_date;not null" json:"batch_start_date"`
	BatchEndDate     time.Time `gorm:"column:batch_end_date;not null" json:"batch_end_date"`
	BatchStatus      string    `gorm:"column:batch_status;type:varchar(20);not null;default:'active'" json:"batch_status"` // active/inactive
	BatchCreatedAt   time.Time `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt   time.Time `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at"`
}

func (BatchModel) TableName() string {
	return "batches"
}

func (m *BatchModel) BeforeCreate(tx *gorm.DB) error {
	if m.BatchID == uuid.Nil {
		m.BatchID = uuid.New()
	}
	return nil
}
