package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchcontroller "studyabroad_backend/internals/features/learning/batches/controller"
)

func BatchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := batchcontroller.NewBatchController(db)

	batches := admin.Group("/batches")
	batches.Post("/", ctrl.CreateBatch)
	batches.Get("/", ctrl.GetAllBatches)
	batches.Get("/:id", ctrl.GetBatchByID)
	batches.Put("/:id", ctrl.UpdateBatch)
	batches.Delete("/:id", ctrl.DeleteBatch)
}
