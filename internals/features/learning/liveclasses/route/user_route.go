package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	livecontroller "studyabroad_backend/internals/features/learning/liveclasses/controller"
)

func LiveClassUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := livecontroller.NewLiveClassController(db)

	user.Get("/live-classes/batch/:batchId", ctrl.GetLiveClassesByBatch)
}
