package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/learning/videos/model"
)

type VideoDTO struct {
	VideoID          uuid.UUID `json:"video_id"`
	VideoBatchID     uuid.UUID `json:"video_batch_id"`
	VideoTitle       string    `json:"video_title"`
	VideoDescription string    `json:"video_description"`
	VideoURL         string    `json:"video_url"`
	VideoTags        []string  `json:"video_tags"`
	VideoCreatedAt   time.Time `json:"video_created_at"`
}

type CreateVideoRequest struct {
	VideoBatchID     uuid.UUID `json:"video_batch_id" validate:"required"`
	VideoTitle       string    `json:"video_title" validate:"required,min=3,max=200"`
	VideoDescription string    `json:"video_description"`
	VideoURL         string    `json:"video_url" validate:"required,url"`
	VideoTags        []string  `json:"video_tags" validate:"omitempty,dive,required"`
}

type UpdateVideoRequest struct {
	VideoTitle       *string   `json:"video_title" validate:"omitempty,min=3,max=200"`
	VideoDescription *string   `json:"video_description"`
	VideoURL         *string   `json:"video_url" validate:"omitempty,url"`
	VideoTags        *[]string `json:"video_tags" validate:"omitempty,dive,required"`
}

func ToVideoDTO(m model.VideoModel) VideoDTO {
	return VideoDTO{
		VideoID:          m.VideoID,
		VideoBatchID:     m.VideoBatchID,
		VideoTitle:       m.VideoTitle,
		VideoDescription: m.VideoDescription,
		VideoURL:         m.VideoURL,
		VideoTags:        m.VideoTags,
		VideoCreatedAt:   m.VideoCreatedAt,
	}
}
