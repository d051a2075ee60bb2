package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videocontroller "studyabroad_backend/internals/features/learning/videos/controller"
)

func VideoUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := videocontroller.NewVideoController(db)

	user.Get("/videos/batch/:batchId", ctrl.GetVideosByBatch)
}
