package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Option: huruf jawaban yang valid. Dipakai juga oleh attempts supaya
// jawaban invalid tertolak di level tipe, bukan cuma validasi request.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

func (o Option) IsValid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

type QuestionModel struct {
	QuestionID      uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionExamID  uuid.UUID `gorm:"column:question_exam_id;type:uuid;not null;index" json:"question_exam_id"`
	QuestionText    string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptionA string    `gorm:"column:question_option_a;type:text;not null" json:"question_option_a"`
	QuestionOptionB string    `gorm:"column:question_option_b;type:text;not null" json:"question_option_b"`
	QuestionOptionC string    `gorm:"column:question_option_c;type:text;not null" json:"question_option_c"`
	QuestionOptionD string    `gorm:"column:question_option_d;type:text;not null" json:"question_option_d"`
	QuestionCorrect Option    `gorm:"column:question_correct;type:char(1);not null" json:"question_correct"`
	QuestionMarks   int       `gorm:"column:question_marks;not null;default:1" json:"question_marks"`

	// Urutan tampil, unik per exam, di-maintain lewat adjacent swap.
	QuestionOrderIndex int `gorm:"column:question_order_index;not null" json:"question_order_index"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}
