package dto

import (
	"time"

	"github.com/google/uuid"

	batchDto "studyabroad_backend/internals/features/learning/batches/dto"
	"studyabroad_backend/internals/features/learning/enrollments/model"
)

type BatchStudentDTO struct {
	BatchStudentID           uuid.UUID          `json:"batch_student_id"`
	BatchStudentBatchID      uuid.UUID          `json:"batch_student_batch_id"`
	BatchStudentStudentID    uuid.UUID          `json:"batch_student_student_id"`
	BatchStudentAccessExpiry time.Time          `json:"batch_student_access_expiry"`
	BatchStudentCreatedAt    time.Time          `json:"batch_student_created_at"`
	Batch                    *batchDto.BatchDTO `json:"batch,omitempty"`
}

type CreateBatchStudentRequest struct {
	BatchID      uuid.UUID `json:"batch_id" validate:"required"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	AccessExpiry time.Time `json:"access_expiry" validate:"required"`
}

func ToBatchStudentDTO(m model.BatchStudentModel) BatchStudentDTO {
	out := BatchStudentDTO{
		BatchStudentID:           m.BatchStudentID,
		BatchStudentBatchID:      m.BatchStudentBatchID,
		BatchStudentStudentID:    m.BatchStudentStudentID,
		BatchStudentAccessExpiry: m.BatchStudentAccessExpiry,
		BatchStudentCreatedAt:    m.BatchStudentCreatedAt,
	}
	if m.Batch != nil {
		b := batchDto.ToBatchDTO(*m.Batch)
		out.Batch = &b
	}
	return out
}
