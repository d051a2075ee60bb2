package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultModel struct {
	ResultID        uuid.UUID `gorm:"column:result_id;type:uuid;primaryKey" json:"result_id"`
	ResultAttemptID uuid.UUID `gorm:"column:result_attempt_id;type:uuid;not null;uniqueIndex" json:"result_attempt_id"`
	ResultExamID    uuid.UUID `gorm:"column:result_exam_id;type:uuid;not null;index" json:"result_exam_id"`
	ResultStudentID uuid.UUID `gorm:"column:result_student_id;type:uuid;not null;index" json:"result_student_id"`

	ResultScore      int     `gorm:"column:result_score;not null" json:"result_score"`
	ResultTotalMarks int     `gorm:"column:result_total_marks;not null" json:"result_total_marks"`
	ResultPercentage float64 `gorm:"column:result_percentage;not null" json:"result_percentage"`
	ResultPassed     bool    `gorm:"column:result_passed;not null" json:"result_passed"`

	ResultCreatedAt time.Time `gorm:"column:result_created_at;autoCreateTime" json:"result_created_at"`
}

func (ResultModel) TableName() string {
	return "results"
}

func (m *ResultModel) BeforeCreate(tx *gorm.DB) error {
	if m.ResultID == uuid.Nil {
		m.ResultID = uuid.New()
	}
	return nil
}
