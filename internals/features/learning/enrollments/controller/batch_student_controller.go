package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "studyabroad_backend/internals/features/users/user/model"

	"studyabroad_backend/internals/constants"
	"studyabroad_backend/internals/features/learning/enrollments/dto"
	"studyabroad_backend/internals/features/learning/enrollments/model"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type BatchStudentController struct {
	DB *gorm.DB
}

func NewBatchStudentController(db *gorm.DB) *BatchStudentController {
	return &BatchStudentController{DB: db}
}

// ➕ POST /api/a/enrollments — admin mendaftarkan student ke batch.
// Duplikat (batch, student) diperlakukan sebagai update access_expiry.
func (ctrl *BatchStudentController) CreateEnrollment(c *fiber.Ctx) error {
	var body dto.CreateBatchStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Hanya akun role student yang bisa di-enroll
	var student userModel.UserModel
	if err := ctrl.DB.First(&student, "id = ?", body.StudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	if student.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "User bukan student")
	}

	var existing model.BatchStudentModel
	err := ctrl.DB.
		Where("batch_student_batch_id = ? AND batch_student_student_id = ?", body.BatchID, body.StudentID).
		First(&existing).Error
	if err == nil {
		existing.BatchStudentAccessExpiry = body.AccessExpiry
		if err := ctrl.DB.Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
		}
		return helper.JsonUpdated(c, "Masa akses diperbarui", dto.ToBatchStudentDTO(existing))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	row := model.BatchStudentModel{
		BatchStudentBatchID:      body.BatchID,
		BatchStudentStudentID:    body.StudentID,
		BatchStudentAccessExpiry: body.AccessExpiry,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}
	return helper.JsonCreated(c, "Student berhasil di-enroll", dto.ToBatchStudentDTO(row))
}

// 📄 GET /api/a/enrollments?batch_id=&student_id=
func (ctrl *BatchStudentController) GetEnrollmentsFiltered(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.BatchStudentModel{}).Preload("Batch")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_student_batch_id = ?", batchID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("batch_student_student_id = ?", studentID)
	}

	var rows []model.BatchStudentModel
	if err := q.Order("batch_student_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve enrollments")
	}

	out := make([]dto.BatchStudentDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToBatchStudentDTO(r))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ❌ DELETE /api/a/enrollments/:id — cabut akses student.
func (ctrl *BatchStudentController) DeleteEnrollment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	if err := ctrl.DB.Delete(&model.BatchStudentModel{}, "batch_student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	return helper.JsonDeleted(c, "Akses student dicabut", nil)
}

// 📄 GET /api/u/my-batches — batch aktif milik student yang login.
func (ctrl *BatchStudentController) GetMyBatches(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.BatchStudentModel
	if err := ctrl.DB.Preload("Batch").
		Where("batch_student_student_id = ? AND batch_student_access_expiry > ?", studentID, time.Now()).
		Order("batch_student_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve batches")
	}

	out := make([]dto.BatchStudentDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToBatchStudentDTO(r))
	}
	return helper.JsonList(c, "ok", out, nil)
}
