package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoutes "studyabroad_backend/internals/features/users/auth/route"
	UserRoutes "studyabroad_backend/internals/features/users/user/route"
)

/* ===================== AUTH (mixed public/protected) ===================== */
func AuthAllRoutes(app *fiber.App, db *gorm.DB) {
	AuthRoutes.AuthRoutes(app, db)
}

/* ===================== ADMIN ===================== */
// Manajemen profil: list, detail, ganti role, aktif/nonaktif
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	UserRoutes.UserAdminRoutes(r, db)
}
