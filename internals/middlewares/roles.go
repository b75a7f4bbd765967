package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolhub_backend/internals/helpers"
)

// RequireRoles gates a route group on the role loaded by Auth. The role
// comes from the users row, not the raw claim, so a stale token can't
// keep an old role alive. Authenticated-but-unauthorized → 403.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[helper.GetUserRole(c)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}
