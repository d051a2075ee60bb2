package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videocontroller "studyabroad_backend/internals/features/learning/videos/controller"
)

func VideoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := videocontroller.NewVideoController(db)

	videos := admin.Group("/videos")
	videos.Post("/", ctrl.CreateVideo)
	videos.Get("/batch/:batchId", ctrl.GetVideosByBatch)
	videos.Put("/:id", ctrl.UpdateVideo)
	videos.Delete("/:id", ctrl.DeleteVideo)
}
