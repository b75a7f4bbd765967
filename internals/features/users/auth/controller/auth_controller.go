package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authService "schoolhub_backend/internals/features/users/auth/service"
	userDTO "schoolhub_backend/internals/features/users/user/dto"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type AuthController struct {
	Service  *authService.AuthService
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{
		Service:  authService.NewAuthService(db, cfg),
		validate: validator.New(),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	actorIsAdmin := helper.GetUserRole(c) == userModel.RoleAdmin
	user, err := h.Service.Register(&req, actorIsAdmin)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Registered", user)
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pair, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		return helper.FromError(c, err)
	}

	h.setRefreshCookie(c, pair)
	return helper.JsonOK(c, "Logged in", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_at":   pair.AccessExpiresAt,
		"user":         pair.User,
	})
}

// POST /api/auth/refresh (refresh token from cookie or body)
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	raw := c.Cookies("refresh_token")
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = body.RefreshToken
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	pair, err := h.Service.Refresh(raw)
	if err != nil {
		return helper.FromError(c, err)
	}

	h.setRefreshCookie(c, pair)
	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_at":   pair.AccessExpiresAt,
	})
}

// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := h.Service.Logout(userID); err != nil {
		return helper.FromError(c, err)
	}
	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Logged out", fiber.Map{"logged_out": true})
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	user, err := h.Service.Me(userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "", user)
}

func (h *AuthController) setRefreshCookie(c *fiber.Ctx, pair *authService.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		Expires:  pair.RefreshExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}
