package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "studyabroad_backend/internals/features/learning/batches/model"
)

// BatchStudentModel menghubungkan student ke batch dengan masa akses.
// Akses konten batch hanya valid selama now < access_expiry.
type BatchStudentModel struct {
	BatchStudentID           uuid.UUID `gorm:"column:batch_student_id;type:uuid;primaryKey" json:"batch_student_id"`
	BatchStudentBatchID      uuid.UUID `gorm:"column:batch_student_batch_id;type:uuid;not null;uniqueIndex:idx_batch_student_unique" json:"batch_student_batch_id"`
	BatchStudentStudentID    uuid.UUID `gorm:"column:batch_student_student_id;type:uuid;not null;uniqueIndex:idx_batch_student_unique" json:"batch_student_student_id"`
	BatchStudentAccessExpiry time.Time `gorm:"column:batch_student_access_expiry;not null" json:"batch_student_access_expiry"`
	BatchStudentCreatedAt    time.Time `gorm:"column:batch_student_created_at;autoCreateTime" json:"batch_student_created_at"`

	// Relations
	Batch *batchModel.BatchModel `gorm:"foreignKey:BatchStudentBatchID" json:"batch,omitempty"`
}

func (BatchStudentModel) TableName() string {
	return "batch_students"
}

func (m *BatchStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.BatchStudentID == uuid.Nil {
		m.BatchStudentID = uuid.New()
	}
	return nil
}
