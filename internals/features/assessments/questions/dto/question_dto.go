package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/assessments/questions/model"
)

// ============================
// Response DTO
// ============================

type QuestionDTO struct {
	QuestionID         uuid.UUID    `json:"question_id"`
	QuestionExamID     uuid.UUID    `json:"question_exam_id"`
	QuestionText       string       `json:"question_text"`
	QuestionOptionA    string       `json:"question_option_a"`
	QuestionOptionB    string       `json:"question_option_b"`
	QuestionOptionC    string       `json:"question_option_c"`
	QuestionOptionD    string       `json:"question_option_d"`
	QuestionCorrect    model.Option `json:"question_correct"`
	QuestionMarks      int          `json:"question_marks"`
	QuestionOrderIndex int          `json:"question_order_index"`
	QuestionCreatedAt  time.Time    `json:"question_created_at"`
}

// StudentQuestionDTO: versi tanpa kunci jawaban untuk student yang sedang
// mengerjakan attempt.
type StudentQuestionDTO struct {
	QuestionID         uuid.UUID `json:"question_id"`
	QuestionText       string    `json:"question_text"`
	QuestionOptionA    string    `json:"question_option_a"`
	QuestionOptionB    string    `json:"question_option_b"`
	QuestionOptionC    string    `json:"question_option_c"`
	QuestionOptionD    string    `json:"question_option_d"`
	QuestionMarks      int       `json:"question_marks"`
	QuestionOrderIndex int       `json:"question_order_index"`
}

// ============================
// Request DTO
// ============================

type CreateQuestionRequest struct {
	QuestionExamID  uuid.UUID `json:"question_exam_id" validate:"required"`
	QuestionText    string    `json:"question_text" validate:"required"`
	QuestionOptionA string    `json:"question_option_a" validate:"required"`
	QuestionOptionB string    `json:"question_option_b" validate:"required"`
	QuestionOptionC string    `json:"question_option_c" validate:"required"`
	QuestionOptionD string    `json:"question_option_d" validate:"required"`
	QuestionCorrect string    `json:"question_correct" validate:"required,oneof=A B C D"`
	QuestionMarks   int       `json:"question_marks" validate:"required,min=1"`
}

type UpdateQuestionRequest struct {
	QuestionText    *string `json:"question_text" validate:"omitempty,min=1"`
	QuestionOptionA *string `json:"question_option_a" validate:"omitempty,min=1"`
	QuestionOptionB *string `json:"question_option_b" validate:"omitempty,min=1"`
	QuestionOptionC *string `json:"question_option_c" validate:"omitempty,min=1"`
	QuestionOptionD *string `json:"question_option_d" validate:"omitempty,min=1"`
	QuestionCorrect *string `json:"question_correct" validate:"omitempty,oneof=A B C D"`
	QuestionMarks   *int    `json:"question_marks" validate:"omitempty,min=1"`
}

type MoveQuestionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// ============================
// Converter
// ============================

func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:         m.QuestionID,
		QuestionExamID:     m.QuestionExamID,
		QuestionText:       m.QuestionText,
		QuestionOptionA:    m.QuestionOptionA,
		QuestionOptionB:    m.QuestionOptionB,
		QuestionOptionC:    m.QuestionOptionC,
		QuestionOptionD:    m.QuestionOptionD,
		QuestionCorrect:    m.QuestionCorrect,
		QuestionMarks:      m.QuestionMarks,
		QuestionOrderIndex: m.QuestionOrderIndex,
		QuestionCreatedAt:  m.QuestionCreatedAt,
	}
}

func ToStudentQuestionDTO(m model.QuestionModel) StudentQuestionDTO {
	return StudentQuestionDTO{
		QuestionID:         m.QuestionID,
		QuestionText:       m.QuestionText,
		QuestionOptionA:    m.QuestionOptionA,
		QuestionOptionB:    m.QuestionOptionB,
		QuestionOptionC:    m.QuestionOptionC,
		QuestionOptionD:    m.QuestionOptionD,
		QuestionMarks:      m.QuestionMarks,
		QuestionOrderIndex: m.QuestionOrderIndex,
	}
}
