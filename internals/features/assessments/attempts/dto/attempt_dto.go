package dto

import (
	"time"

	"github.com/google/uuid"

	attemptModel "studyabroad_backend/internals/features/assessments/attempts/model"
	questionDto "studyabroad_backend/internals/features/assessments/questions/dto"
)

// ============================
// Response DTO
// ============================

type AttemptDTO struct {
	ExamAttemptID          uuid.UUID  `json:"exam_attempt_id"`
	ExamAttemptExamID      uuid.UUID  `json:"exam_attempt_exam_id"`
	ExamAttemptStudentID   uuid.UUID  `json:"exam_attempt_student_id"`
	ExamAttemptIsSubmitted bool       `json:"exam_attempt_is_submitted"`
	ExamAttemptStartedAt   time.Time  `json:"exam_attempt_started_at"`
	ExamAttemptSubmittedAt *time.Time `json:"exam_attempt_submitted_at,omitempty"`
	AnsweredCount          int        `json:"answered_count"`
}

// StartAttemptResponse membawa soal (tanpa kunci) plus deadline yang
// dihitung dari started_at tersimpan.
type StartAttemptResponse struct {
	Attempt          AttemptDTO                       `json:"attempt"`
	Questions        []questionDto.StudentQuestionDTO `json:"questions"`
	Answers          map[uuid.UUID]string             `json:"answers"`
	Deadline         time.Time                        `json:"deadline"`
	RemainingSeconds int                              `json:"remaining_seconds"`
	Resumed          bool                             `json:"resumed"`
}

// ============================
// Request DTO
// ============================

type RecordAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Option     string    `json:"option" validate:"required,oneof=A B C D"`
}

// ============================
// Converter
// ============================

func ToAttemptDTO(m attemptModel.ExamAttemptModel) AttemptDTO {
	return AttemptDTO{
		ExamAttemptID:          m.ExamAttemptID,
		ExamAttemptExamID:      m.ExamAttemptExamID,
		ExamAttemptStudentID:   m.ExamAttemptStudentID,
		ExamAttemptIsSubmitted: m.ExamAttemptIsSubmitted,
		ExamAttemptStartedAt:   m.ExamAttemptStartedAt,
		ExamAttemptSubmittedAt: m.ExamAttemptSubmittedAt,
		AnsweredCount:          len(m.ExamAttemptAnswers),
	}
}

func ToAnswerPayload(answers attemptModel.AnswerMap) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(answers))
	for qID, opt := range answers {
		out[qID] = string(opt)
	}
	return out
}
