package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/learning/batches/model"
)

// ============================
// Response DTO
// ============================

type BatchDTO struct {
	BatchID          uuid.UUID `json:"batch_id"`
	BatchName        string    `json:"batch_name"`
	BatchDescription string    `json:"batch_description"`
	BatchStartDate   time.Time `json:"batch_start_date"`
	BatchEndDate     time.Time `json:"batch_end_date"`
	BatchStatus      string    `json:"batch_status"`
	BatchCreatedAt   time.Time `json:"batch_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateBatchRequest struct {
	BatchName        string    `json:"batch_name" validate:"required,min=3,max=120"`
	BatchDescription string    `json:"batch_description"`
	BatchStartDate   time.Time `json:"batch_start_date" validate:"required"`
	BatchEndDate     time.Time `json:"batch_end_date" validate:"required,gtfield=BatchStartDate"`
	BatchStatus      string    `json:"batch_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateBatchRequest struct {
	BatchName        *string    `json:"batch_name" validate:"omitempty,min=3,max=120"`
	BatchDescription *string    `json:"batch_description"`
	BatchStartDate   *time.Time `json:"batch_start_date"`
	BatchEndDate     *time.Time `json:"batch_end_date"`
	BatchStatus      *string    `json:"batch_status" validate:"omitempty,oneof=active inactive"`
}

// ============================
// Converter
// ============================

func ToBatchDTO(m model.BatchModel) BatchDTO {
	return BatchDTO{
		BatchID:          m.BatchID,
		BatchName:        m.BatchName,
		BatchDescription: m.BatchDescription,
		BatchStartDate:   m.BatchStartDate,
		BatchEndDate:     m.BatchEndDate,
		BatchStatus:      m.BatchStatus,
		BatchCreatedAt:   m.BatchCreatedAt,
	}
}
