// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// OnlyRolesSlice membatasi akses ke daftar role tertentu.
// errMsg dipakai apa adanya agar pesan per-fitur konsisten.
func OnlyRolesSlice(errMsg string, roles []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role := helperAuth.GetUserRoleFromToken(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, errMsg)
		}
		return c.Next()
	}
}
