package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/learning/liveclasses/model"
)

type LiveClassDTO struct {
	LiveClassID              uuid.UUID `json:"live_class_id"`
	LiveClassBatchID         uuid.UUID `json:"live_class_batch_id"`
	LiveClassTitle           string    `json:"live_class_title"`
	LiveClassMeetingURL      string    `json:"live_class_meeting_url"`
	LiveClassStartsAt        time.Time `json:"live_class_starts_at"`
	LiveClassDurationMinutes int       `json:"live_class_duration_minutes"`
	LiveClassWeekdays        []string  `json:"live_class_weekdays"`
	LiveClassCreatedAt       time.Time `json:"live_class_created_at"`
}

type CreateLiveClassRequest struct {
	LiveClassBatchID         uuid.UUID `json:"live_class_batch_id" validate:"required"`
	LiveClassTitle           string    `json:"live_class_title" validate:"required,min=3,max=200"`
	LiveClassMeetingURL      string    `json:"live_class_meeting_url" validate:"required,url"`
	LiveClassStartsAt        time.Time `json:"live_class_starts_at" validate:"required"`
	LiveClassDurationMinutes int       `json:"live_class_duration_minutes" validate:"omitempty,min=15,max=480"`
	LiveClassWeekdays        []string  `json:"live_class_weekdays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type UpdateLiveClassRequest struct {
	LiveClassTitle           *string    `json:"live_class_title" validate:"omitempty,min=3,max=200"`
	LiveClassMeetingURL      *string    `json:"live_class_meeting_url" validate:"omitempty,url"`
	LiveClassStartsAt        *time.Time `json:"live_class_starts_at"`
	LiveClassDurationMinutes *int       `json:"live_class_duration_minutes" validate:"omitempty,min=15,max=480"`
	LiveClassWeekdays        *[]string  `json:"live_class_weekdays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

func ToLiveClassDTO(m model.LiveClassModel) LiveClassDTO {
	return LiveClassDTO{
		LiveClassID:              m.LiveClassID,
		LiveClassBatchID:         m.LiveClassBatchID,
		LiveClassTitle:           m.LiveClassTitle,
		LiveClassMeetingURL:      m.LiveClassMeetingURL,
		LiveClassStartsAt:        m.LiveClassStartsAt,
		LiveClassDurationMinutes: m.LiveClassDurationMinutes,
		LiveClassWeekdays:        m.LiveClassWeekdays,
		LiveClassCreatedAt:       m.LiveClassCreatedAt,
	}
}
