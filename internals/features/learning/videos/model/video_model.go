package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type VideoModel struct {
	VideoID          uuid.UUID      `gorm:"column:video_id;type:uuid;primaryKey" json:"video_id"`
	VideoBatchID     uuid.UUID      `gorm:"column:video_batch_id;type:uuid;not null;index" json:"video_batch_id"`
	VideoTitle       string         `gorm:"column:video_title;size:200;not null" json:"video_title"`
	VideoDescription string         `gorm:"column:video_description;type:text" json:"video_description"`
	VideoURL         string         `gorm:"column:video_url;type:text;not null" json:"video_url"`
	VideoTags        pq.StringArray `gorm:"column:video_tags;type:text[]" json:"video_tags"`
	VideoCreatedAt   time.Time      `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt   time.Time      `gorm:"column:video_updated_at;autoUpdateTime" json:"video_updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (m *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if m.VideoID == uuid.Nil {
		m.VideoID = uuid.New()
	}
	return nil
}
