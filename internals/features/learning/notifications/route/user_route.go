package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifcontroller "studyabroad_backend/internals/features/learning/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := notifcontroller.NewNotificationController(db)

	user.Get("/notifications", ctrl.GetMyNotifications)
}
