package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	questionModel "studyabroad_backend/internals/features/assessments/questions/model"
)

// AnswerMap: jawaban per question_id. Disimpan sebagai JSON satu kolom,
// karena selalu dibaca/ditulis utuh bersama attempt-nya.
type AnswerMap map[uuid.UUID]questionModel.Option

type ExamAttemptModel struct {
	ExamAttemptID        uuid.UUID `gorm:"column:exam_attempt_id;type:uuid;primaryKey" json:"exam_attempt_id"`
	ExamAttemptExamID    uuid.UUID `gorm:"column:exam_attempt_exam_id;type:uuid;not null;uniqueIndex:idx_exam_attempt_unique" json:"exam_attempt_exam_id"`
	ExamAttemptStudentID uuid.UUID `gorm:"column:exam_attempt_student_id;type:uuid;not null;uniqueIndex:idx_exam_attempt_unique" json:"exam_attempt_student_id"`

	ExamAttemptAnswers AnswerMap `gorm:"column:exam_attempt_answers;serializer:json" json:"exam_attempt_answers"`

	ExamAttemptIsSubmitted bool       `gorm:"column:exam_attempt_is_submitted;not null;default:false" json:"exam_attempt_is_submitted"`
	ExamAttemptStartedAt   time.Time  `gorm:"column:exam_attempt_started_at;not null" json:"exam_attempt_started_at"`
	ExamAttemptSubmittedAt *time.Time `gorm:"column:exam_attempt_submitted_at" json:"exam_attempt_submitted_at,omitempty"`

	ExamAttemptCreatedAt time.Time `gorm:"column:exam_attempt_created_at;autoCreateTime" json:"exam_attempt_created_at"`
	ExamAttemptUpdatedAt time.Time `gorm:"column:exam_attempt_updated_at;autoUpdateTime" json:"exam_attempt_updated_at"`
}

func (ExamAttemptModel) TableName() string {
	return "exam_attempts"
}

func (m *ExamAttemptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamAttemptID == uuid.Nil {
		m.ExamAttemptID = uuid.New()
	}
	if m.ExamAttemptAnswers == nil {
		m.ExamAttemptAnswers = AnswerMap{}
	}
	return nil
}

// Deadline dihitung ulang dari started_at yang tersimpan, bukan dari jam
// client, supaya reload tidak pernah menambah waktu.
func (m ExamAttemptModel) Deadline(durationMinutes int) time.Time {
	return m.ExamAttemptStartedAt.Add(time.Duration(durationMinutes) * time.Minute)
}
