package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"studyabroad_backend/internals/constants"
)

// newRoleTestApp memasang stub yang menanam role ke Locals, persis seperti
// yang dilakukan AuthMiddleware setelah token tervalidasi.
func newRoleTestApp(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_role", role)
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func requestStatus(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAdminRouteRejectsStudent(t *testing.T) {
	gate := OnlyRoles("Akses khusus untuk admin", constants.AdminOnly...)
	app := newRoleTestApp(constants.RoleStudent, gate)

	if got := requestStatus(t, app); got != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", got)
	}
}

func TestAdminRouteAllowsAdmin(t *testing.T) {
	gate := OnlyRoles("Akses khusus untuk admin", constants.AdminOnly...)
	app := newRoleTestApp(constants.RoleAdmin, gate)

	if got := requestStatus(t, app); got != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
}

func TestStudentRouteAllowsAdminAsSuperset(t *testing.T) {
	gate := OnlyRoles("", constants.StudentAndAbove...)
	app := newRoleTestApp(constants.RoleAdmin, gate)

	if got := requestStatus(t, app); got != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
}

func TestStudentRouteAllowsStudent(t *testing.T) {
	gate := OnlyRoles("", constants.StudentAndAbove...)
	app := newRoleTestApp(constants.RoleStudent, gate)

	if got := requestStatus(t, app); got != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
}

func TestMissingRoleIsUnauthorized(t *testing.T) {
	gate := OnlyRoles("", constants.StudentAndAbove...)
	app := newRoleTestApp("", gate)

	if got := requestStatus(t, app); got != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", got)
	}
}

func TestUnknownRoleIsForbidden(t *testing.T) {
	gate := OnlyRoles("", constants.StudentAndAbove...)
	app := newRoleTestApp("guest", gate)

	if got := requestStatus(t, app); got != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", got)
	}
}
