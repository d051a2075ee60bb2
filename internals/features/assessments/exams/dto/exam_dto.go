package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/assessments/exams/model"
)

// ============================
// Response DTO
// ============================

type ExamDTO struct {
	ExamID              uuid.UUID `json:"exam_id"`
	ExamBatchID         uuid.UUID `json:"exam_batch_id"`
	ExamTitle           string    `json:"exam_title"`
	ExamDescription     string    `json:"exam_description"`
	ExamDurationMinutes int       `json:"exam_duration_minutes"`
	ExamTotalMarks      int       `json:"exam_total_marks"`
	ExamPassingMarks    int       `json:"exam_passing_marks"`
	ExamIsPublished     bool      `json:"exam_is_published"`
	ExamPublishResult   bool      `json:"exam_publish_result"`
	ExamCreatedAt       time.Time `json:"exam_created_at"`
}

// ============================
// Request DTO
// ============================

type CreateExamRequest struct {
	ExamBatchID         uuid.UUID `json:"exam_batch_id" validate:"required"`
	ExamTitle           string    `json:"exam_title" validate:"required,min=3,max=200"`
	ExamDescription     string    `json:"exam_description"`
	ExamDurationMinutes int       `json:"exam_duration_minutes" validate:"required,min=1,max=600"`
	ExamPassingMarks    *int      `json:"exam_passing_marks" validate:"omitempty,min=0"`
}

type UpdateExamRequest struct {
	ExamTitle           *string `json:"exam_title" validate:"omitempty,min=3,max=200"`
	ExamDescription     *string `json:"exam_description"`
	ExamDurationMinutes *int    `json:"exam_duration_minutes" validate:"omitempty,min=1,max=600"`
	ExamPassingMarks    *int    `json:"exam_passing_marks" validate:"omitempty,min=0"`
	ExamIsPublished     *bool   `json:"exam_is_published"`
	ExamPublishResult   *bool   `json:"exam_publish_result"`
}

// ============================
// Converter
// ============================

func ToExamDTO(m model.ExamModel) ExamDTO {
	return ExamDTO{
		ExamID:              m.ExamID,
		ExamBatchID:         m.ExamBatchID,
		ExamTitle:           m.ExamTitle,
		ExamDescription:     m.ExamDescription,
		ExamDurationMinutes: m.ExamDurationMinutes,
		ExamTotalMarks:      m.ExamTotalMarks,
		ExamPassingMarks:    m.EffectivePassingMarks(),
		ExamIsPublished:     m.ExamIsPublished,
		ExamPublishResult:   m.ExamPublishResult,
		ExamCreatedAt:       m.ExamCreatedAt,
	}
}
