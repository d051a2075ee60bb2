package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollService "studyabroad_backend/internals/features/learning/enrollments/service"
	"studyabroad_backend/internals/features/learning/liveclasses/dto"
	"studyabroad_backend/internals/features/learning/liveclasses/model"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type LiveClassController struct {
	DB *gorm.DB
}

func NewLiveClassController(db *gorm.DB) *LiveClassController {
	return &LiveClassController{DB: db}
}

// ➕ Create live class (admin)
func (ctrl *LiveClassController) CreateLiveClass(c *fiber.Ctx) error {
	var body dto.CreateLiveClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	duration := body.LiveClassDurationMinutes
	if duration == 0 {
		duration = 60
	}

	row := model.LiveClassModel{
		LiveClassBatchID:         body.LiveClassBatchID,
		LiveClassTitle:           body.LiveClassTitle,
		LiveClassMeetingURL:      body.LiveClassMeetingURL,
		LiveClassStartsAt:        body.LiveClassStartsAt,
		LiveClassDurationMinutes: duration,
		LiveClassWeekdays:        body.LiveClassWeekdays,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create live class")
	}
	return helper.JsonCreated(c, "Live class berhasil dibuat", dto.ToLiveClassDTO(row))
}

// 📄 Get live classes by batch (admin bebas; student wajib enrolled)
func (ctrl *LiveClassController) GetLiveClassesByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batchId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	if !helper.IsAdmin(c) {
		studentID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		ok, err := enrollService.HasActiveEnrollment(ctrl.DB, studentID, batchID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses batch sudah berakhir atau belum terdaftar")
		}
	}

	var rows []model.LiveClassModel
	if err := ctrl.DB.
		Where("live_class_batch_id = ?", batchID).
		Order("live_class_starts_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve live classes")
	}

	out := make([]dto.LiveClassDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToLiveClassDTO(r))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ✏️ Update live class (admin)
func (ctrl *LiveClassController) UpdateLiveClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid live class id")
	}

	var body dto.UpdateLiveClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.LiveClassModel
	if err := ctrl.DB.First(&row, "live_class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Live class not found")
	}

	if body.LiveClassTitle != nil {
		row.LiveClassTitle = *body.LiveClassTitle
	}
	if body.LiveClassMeetingURL != nil {
		row.LiveClassMeetingURL = *body.LiveClassMeetingURL
	}
	if body.LiveClassStartsAt != nil {
		row.LiveClassStartsAt = *body.LiveClassStartsAt
	}
	if body.LiveClassDurationMinutes != nil {
		row.LiveClassDurationMinutes = *body.LiveClassDurationMinutes
	}
	if body.LiveClassWeekdays != nil {
		row.LiveClassWeekdays = *body.LiveClassWeekdays
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update live class")
	}
	return helper.JsonUpdated(c, "Live class berhasil diperbarui", dto.ToLiveClassDTO(row))
}

// ❌ Delete live class (admin)
func (ctrl *LiveClassController) DeleteLiveClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid live class id")
	}

	if err := ctrl.DB.Delete(&model.LiveClassModel{}, "live_class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete live class")
	}
	return helper.JsonDeleted(c, "Live class berhasil dihapus", nil)
}
