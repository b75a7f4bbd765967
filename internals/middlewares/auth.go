package middlewares

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

// Auth verifies the bearer token (cookie fallback), checks the user is
// still active, and stores user_id + role in Locals. Missing/invalid
// token → 401; deactivated account → 403.
func Auth(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or invalid token")
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or invalid token")
		}

		if exp, ok := claims["exp"].(float64); !ok || time.Now().Unix() > int64(exp) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or invalid token")
		}

		var user userModel.UserModel
		if err := db.Select("id", "role", "is_active").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "User not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
		}

		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocUserRole, user.Role)
		c.Locals(helper.LocRawToken, tokenString)
		return c.Next()
	}
}
