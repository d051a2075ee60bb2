package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examModel "studyabroad_backend/internals/features/assessments/exams/model"
	"studyabroad_backend/internals/features/assessments/results/dto"
	"studyabroad_backend/internals/features/assessments/results/model"
	helper "studyabroad_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

// 🔍 GET /results/exam/:examId/me — result milik sendiri.
// Exam yang belum publish_result dijawab 404, bukan 403, supaya keberadaan
// result tidak bocor.
func (ctrl *ResultController) GetMyResult(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "examId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var exam examModel.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
	}
	if !exam.ExamPublishResult {
		return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
	}

	var result model.ResultModel
	if err := ctrl.DB.First(&result,
		"result_exam_id = ? AND result_student_id = ?", examID, studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
	}
	return helper.JsonOK(c, "ok", dto.ToResultDTO(result))
}

// 📄 GET /results/me — semua result milik student, hanya dari exam yang
// publish_result-nya aktif
func (ctrl *ResultController) GetMyResults(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var results []model.ResultModel
	if err := ctrl.DB.
		Joins("JOIN exams ON exams.exam_id = results.result_exam_id").
		Where("results.result_student_id = ? AND exams.exam_publish_result = ?", studentID, true).
		Order("results.result_created_at DESC").
		Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve results")
	}

	out := make([]dto.ResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToResultDTO(r))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// 📄 GET (admin) /results/exam/:examId — semua result satu ujian, paged
func (ctrl *ResultController) GetResultsByExam(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "examId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ResultModel{}).
		Where("result_exam_id = ?", examID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var results []model.ResultModel
	if err := ctrl.DB.
		Where("result_exam_id = ?", examID).
		Order("result_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve results")
	}

	out := make([]dto.ResultDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToResultDTO(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
