package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifcontroller "studyabroad_backend/internals/features/learning/notifications/controller"
)

func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := notifcontroller.NewNotificationController(db)

	notifications := admin.Group("/notifications")
	notifications.Post("/", ctrl.CreateNotification)
	notifications.Get("/", ctrl.GetAllNotifications)
	notifications.Delete("/:id", ctrl.DeleteNotification)
}
