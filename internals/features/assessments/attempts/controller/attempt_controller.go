package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptDto "studyabroad_backend/internals/features/assessments/attempts/dto"
	attemptModel "studyabroad_backend/internals/features/assessments/attempts/model"
	"studyabroad_backend/internals/features/assessments/attempts/service"
	questionDto "studyabroad_backend/internals/features/assessments/questions/dto"
	questionModel "studyabroad_backend/internals/features/assessments/questions/model"
	questionService "studyabroad_backend/internals/features/assessments/questions/service"
	resultDto "studyabroad_backend/internals/features/assessments/results/dto"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type AttemptController struct {
	DB *gorm.DB
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db}
}

// ▶️ POST /attempts/exam/:examId/start — idempotent, resume kalau sudah ada
func (ctrl *AttemptController) StartAttempt(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "examId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	started, err := service.StartAttempt(ctrl.DB, examID, studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExamNotFound), errors.Is(err, service.ErrExamNotPublished):
			// exam yang belum publish tidak bocor keberadaannya
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		case errors.Is(err, service.ErrNotEnrolled):
			return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak terdaftar di batch ujian ini")
		case errors.Is(err, service.ErrAlreadySubmitted):
			return helper.JsonError(c, fiber.StatusConflict, "Ujian sudah pernah dikumpulkan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start attempt")
		}
	}

	if err := questionService.RepairOrderIndexes(ctrl.DB, examID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to prepare questions")
	}
	var questions []questionModel.QuestionModel
	if err := ctrl.DB.
		Where("question_exam_id = ?", examID).
		Order("question_order_index ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	studentQuestions := make([]questionDto.StudentQuestionDTO, 0, len(questions))
	for _, q := range questions {
		studentQuestions = append(studentQuestions, questionDto.ToStudentQuestionDTO(q))
	}

	resp := attemptDto.StartAttemptResponse{
		Attempt:          attemptDto.ToAttemptDTO(started.Attempt),
		Questions:        studentQuestions,
		Answers:          attemptDto.ToAnswerPayload(started.Attempt.ExamAttemptAnswers),
		Deadline:         started.Deadline,
		RemainingSeconds: started.RemainingSeconds,
		Resumed:          started.Resumed,
	}
	if started.Resumed {
		return helper.JsonOK(c, "Attempt dilanjutkan", resp)
	}
	return helper.JsonCreated(c, "Attempt dimulai", resp)
}

// ✏️ POST /attempts/:id/answer — upsert satu jawaban
func (ctrl *AttemptController) RecordAnswer(c *fiber.Ctx) error {
	attemptID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body attemptDto.RecordAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	err = service.RecordAnswer(ctrl.DB, attemptID, studentID, body.QuestionID, questionModel.Option(body.Option))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
		case errors.Is(err, service.ErrAlreadySubmitted):
			return helper.JsonError(c, fiber.StatusConflict, "Ujian sudah dikumpulkan")
		case errors.Is(err, service.ErrDeadlinePassed):
			return helper.JsonError(c, fiber.StatusConflict, "Waktu ujian sudah habis")
		case errors.Is(err, service.ErrQuestionNotInExam):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Soal bukan bagian dari ujian ini")
		case errors.Is(err, service.ErrInvalidOption):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Pilihan jawaban tidak valid")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record answer")
		}
	}
	return helper.JsonUpdated(c, "Jawaban tersimpan", nil)
}

// ✅ POST /attempts/:id/submit — exactly-once; submit ulang mengembalikan
// result yang sudah ada dengan 409
func (ctrl *AttemptController) SubmitAttempt(c *fiber.Ctx) error {
	attemptID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result, err := service.SubmitAttempt(ctrl.DB, attemptID, studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
		case errors.Is(err, service.ErrAlreadySubmitted):
			return helper.JsonError(c, fiber.StatusConflict, "Ujian sudah pernah dikumpulkan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit attempt")
		}
	}
	return helper.JsonOK(c, "Ujian berhasil dikumpulkan", resultDto.ToResultDTO(*result))
}

// 🔍 GET /attempts/exam/:examId/me — status attempt milik sendiri
func (ctrl *AttemptController) GetMyAttempt(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "examId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var attempt attemptModel.ExamAttemptModel
	if err := ctrl.DB.First(&attempt,
		"exam_attempt_exam_id = ? AND exam_attempt_student_id = ?", examID, studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
	}
	return helper.JsonOK(c, "ok", attemptDto.ToAttemptDTO(attempt))
}
