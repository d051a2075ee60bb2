package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "studyabroad_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := usercontroller.NewUserAdminController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Patch("/:id/role", ctrl.UpdateUserRole)
	users.Patch("/:id/active", ctrl.UpdateUserActive)
}
