package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID              uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey" json:"exam_id"`
	ExamBatchID         uuid.UUID `gorm:"column:exam_batch_id;type:uuid;not null;index" json:"exam_batch_id"`
	ExamTitle           string    `gorm:"column:exam_title;size:200;not null" json:"exam_title"`
	ExamDescription     string    `gorm:"column:exam_description;type:text" json:"exam_description"`
	ExamDurationMinutes int       `gorm:"column:exam_duration_minutes;not null" json:"exam_duration_minutes"`
	ExamTotalMarks      int       `gorm:"column:exam_total_marks;not null;default:0" json:"exam_total_marks"`

	// NULL berarti pakai default 40% dari total marks.
	ExamPassingMarks *int `gorm:"column:exam_passing_marks" json:"exam_passing_marks,omitempty"`

	ExamIsPublished   bool `gorm:"column:exam_is_published;not null;default:false" json:"exam_is_published"`
	ExamPublishResult bool `gorm:"column:exam_publish_result;not null;default:false" json:"exam_publish_result"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamID == uuid.Nil {
		m.ExamID = uuid.New()
	}
	return nil
}

// EffectivePassingMarks: passing marks eksplisit, atau 40% dari total.
func (m ExamModel) EffectivePassingMarks() int {
	if m.ExamPassingMarks != nil {
		return *m.ExamPassingMarks
	}
	return m.ExamTotalMarks * 40 / 100
}
