package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollService "studyabroad_backend/internals/features/learning/enrollments/service"
	"studyabroad_backend/internals/features/learning/videos/dto"
	"studyabroad_backend/internals/features/learning/videos/model"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// ➕ Create video (admin)
func (ctrl *VideoController) CreateVideo(c *fiber.Ctx) error {
	var body dto.CreateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	newVideo := model.VideoModel{
		VideoBatchID:     body.VideoBatchID,
		VideoTitle:       body.VideoTitle,
		VideoDescription: body.VideoDescription,
		VideoURL:         body.VideoURL,
		VideoTags:        body.VideoTags,
	}
	if err := ctrl.DB.Create(&newVideo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create video")
	}
	return helper.JsonCreated(c, "Video berhasil ditambahkan", dto.ToVideoDTO(newVideo))
}

// 📄 Get videos by batch (admin bebas; student wajib enrolled & belum expired)
func (ctrl *VideoController) GetVideosByBatch(c *fiber.Ctx) error {
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

	var videos []model.VideoModel
	if err := ctrl.DB.
		Where("video_batch_id = ?", batchID).
		Order("video_created_at DESC").
		Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve videos")
	}

	out := make([]dto.VideoDTO, 0, len(videos))
	for _, v := range videos {
		out = append(out, dto.ToVideoDTO(v))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ✏️ Update video (admin)
func (ctrl *VideoController) UpdateVideo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	var body dto.UpdateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var video model.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
	}

	if body.VideoTitle != nil {
		video.VideoTitle = *body.VideoTitle
	}
	if body.VideoDescription != nil {
		video.VideoDescription = *body.VideoDescription
	}
	if body.VideoURL != nil {
		video.VideoURL = *body.VideoURL
	}
	if body.VideoTags != nil {
		video.VideoTags = *body.VideoTags
	}

	if err := ctrl.DB.Save(&video).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update video")
	}
	return helper.JsonUpdated(c, "Video berhasil diperbarui", dto.ToVideoDTO(video))
}

// ❌ Delete video (admin)
func (ctrl *VideoController) DeleteVideo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	if err := ctrl.DB.Delete(&model.VideoModel{}, "video_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	return helper.JsonDeleted(c, "Video berhasil dihapus", nil)
}
