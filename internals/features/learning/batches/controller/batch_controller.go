package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyabroad_backend/internals/features/learning/batches/dto"
	"studyabroad_backend/internals/features/learning/batches/model"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

// ➕ Create batch
func (ctrl *BatchController) CreateBatch(c *fiber.Ctx) error {
	var body dto.CreateBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	status := body.BatchStatus
	if status == "" {
		status = "active"
	}

	newBatch := model.BatchModel{
		BatchName:        body.BatchName,
		BatchDescription: body.BatchDescription,
		BatchStartDate:   body.BatchStartDate,
		BatchEndDate:     body.BatchEndDate,
		BatchStatus:      status,
	}
	if err := ctrl.DB.Create(&newBatch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create batch")
	}
	return helper.JsonCreated(c, "Batch berhasil dibuat", dto.ToBatchDTO(newBatch))
}

// 📄 Get all batches
func (ctrl *BatchController) GetAllBatches(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.BatchModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("batch_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count batches")
	}

	var batches []model.BatchModel
	if err := q.Order("batch_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&batches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve batches")
	}

	out := make([]dto.BatchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.ToBatchDTO(b))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 Get batch by ID
func (ctrl *BatchController) GetBatchByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	var batch model.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}
	return helper.JsonOK(c, "ok", dto.ToBatchDTO(batch))
}

// ✏️ Update batch
func (ctrl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	var body dto.UpdateBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var batch model.BatchModel
	if err := ctrl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}

	if body.BatchName != nil {
		batch.BatchName = *body.BatchName
	}
	if body.BatchDescription != nil {
		batch.BatchDescription = *body.BatchDescription
	}
	if body.BatchStartDate != nil {
		batch.BatchStartDate = *body.BatchStartDate
	}
	if body.BatchEndDate != nil {
		batch.BatchEndDate = *body.BatchEndDate
	}
	if body.BatchStatus != nil {
		batch.BatchStatus = *body.BatchStatus
	}
	if batch.BatchEndDate.Before(batch.BatchStartDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tanggal selesai harus setelah tanggal mulai")
	}

	if err := ctrl.DB.Save(&batch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update batch")
	}
	return helper.JsonUpdated(c, "Batch berhasil diperbarui", dto.ToBatchDTO(batch))
}

// ❌ Delete batch
func (ctrl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	if err := ctrl.DB.Delete(&model.BatchModel{}, "batch_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete batch")
	}
	return helper.JsonDeleted(c, "Batch berhasil dihapus", nil)
}
