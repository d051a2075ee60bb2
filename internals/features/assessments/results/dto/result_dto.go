package dto

import (
	"time"

	"github.com/google/uuid"

	"studyabroad_backend/internals/features/assessments/results/model"
)

type ResultDTO struct {
	ResultID         uuid.UUID `json:"result_id"`
	ResultAttemptID  uuid.UUID `json:"result_attempt_id"`
	ResultExamID     uuid.UUID `json:"result_exam_id"`
	ResultStudentID  uuid.UUID `json:"result_student_id"`
	ResultScore      int       `json:"result_score"`
	ResultTotalMarks int       `json:"result_total_marks"`
	ResultPercentage float64   `json:"result_percentage"`
	ResultPassed     bool      `json:"result_passed"`
	ResultCreatedAt  time.Time `json:"result_created_at"`
}

func ToResultDTO(m model.ResultModel) ResultDTO {
	return ResultDTO{
		ResultID:         m.ResultID,
		ResultAttemptID:  m.ResultAttemptID,
		ResultExamID:     m.ResultExamID,
		ResultStudentID:  m.ResultStudentID,
		ResultScore:      m.ResultScore,
		ResultTotalMarks: m.ResultTotalMarks,
		ResultPercentage: m.ResultPercentage,
		ResultPassed:     m.ResultPassed,
		ResultCreatedAt:  m.ResultCreatedAt,
	}
}
