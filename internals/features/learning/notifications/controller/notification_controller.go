package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollService "studyabroad_backend/internals/features/learning/enrollments/service"
	"studyabroad_backend/internals/features/learning/notifications/dto"
	"studyabroad_backend/internals/features/learning/notifications/model"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ➕ Create notification (admin); tanpa batch_id berarti global
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var body dto.CreateNotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.NotificationModel{
		NotificationBatchID: body.NotificationBatchID,
		NotificationTitle:   body.NotificationTitle,
		NotificationMessage: body.NotificationMessage,
		NotificationData:    body.NotificationData,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}
	return helper.JsonCreated(c, "Notifikasi berhasil dibuat", dto.ToNotificationDTO(row))
}

// 📄 Get all notifications (admin)
func (ctrl *NotificationController) GetAllNotifications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []model.NotificationModel
	if err := ctrl.DB.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve notifications")
	}

	out := make([]dto.NotificationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToNotificationDTO(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📄 GET /api/u/notifications — feed student: global + batch yang di-enroll
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	batchIDs, err := enrollService.ActiveBatchIDs(ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	q := ctrl.DB.Model(&model.NotificationModel{})
	if len(batchIDs) > 0 {
		q = q.Where("notification_batch_id IS NULL OR notification_batch_id IN ?", batchIDs)
	} else {
		q = q.Where("notification_batch_id IS NULL")
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_created_at DESC").Limit(100).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve notifications")
	}

	out := make([]dto.NotificationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToNotificationDTO(r))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ❌ Delete notification (admin)
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	if err := ctrl.DB.Delete(&model.NotificationModel{}, "notification_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	return helper.JsonDeleted(c, "Notifikasi berhasil dihapus", nil)
}
