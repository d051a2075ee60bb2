package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	livecontroller "studyabroad_backend/internals/features/learning/liveclasses/controller"
)

func LiveClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := livecontroller.NewLiveClassController(db)

	live := admin.Group("/live-classes")
	live.Post("/", ctrl.CreateLiveClass)
	live.Get("/batch/:batchId", ctrl.GetLiveClassesByBatch)
	live.Put("/:id", ctrl.UpdateLiveClass)
	live.Delete("/:id", ctrl.DeleteLiveClass)
}
