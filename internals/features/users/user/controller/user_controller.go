package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "schoolhub_backend/internals/features/users/user/dto"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"

	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	DB        *gorm.DB
	UploadDir string
	validate  *validator.Validate
}

func NewUserController(db *gorm.DB, uploadDir string) *UserController {
	return &UserController{DB: db, UploadDir: uploadDir, validate: validator.New()}
}

// GET /api/users?role=&search=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{})
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		if !userModel.ValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role filter")
		}
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(full_name) LIKE ? OR lower(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	return helper.JsonList(c, "users", userDTO.FromModels(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage), "")
}

// GET /api/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.JsonOK(c, "", userDTO.FromModel(&user))
}

// PUT /api/users/:id (self or admin; only admins may touch role/is_active)
func (h *UserController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// re-resolve the actor's role from storage
	var actor userModel.UserModel
	if err := h.DB.Select("id", "role").First(&actor, "id = ?", actorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown actor")
	}
	isAdmin := actor.Role == userModel.RoleAdmin
	if !isAdmin && actorID != id {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update your own account")
	}
	if !isAdmin && (req.Role != nil || req.IsActive != nil) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may change role or active flag")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		hs := string(hash)
		req.Password = &hs
	}

	req.ApplyToModel(&user)
	if err := h.DB.Save(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonOK(c, "User updated", userDTO.FromModel(&user))
}

// DELETE /api/users/:id (admin only, route-gated; hard delete)
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := h.DB.Unscoped().Delete(&userModel.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "User deleted", fiber.Map{"deleted": true})
}

// POST /api/users/:id/photo (multipart `file`, image allow-list, 10MB)
// Stored as webp under profiles/.
func (h *UserController) UploadPhoto(c *fiber.Ctx) error {
	actorID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if actorID != id && helper.GetUserRole(c) != userModel.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update your own photo")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}
	if err := helper.ValidateUpload(fh, 10*1024*1024, helper.ImageMIMEs); err != nil {
		return helper.FromError(c, err)
	}

	url, err := helper.SaveProfilePhoto(fh, h.UploadDir)
	if err != nil {
		return helper.FromError(c, err)
	}

	if err := h.DB.Model(&userModel.UserModel{}).Where("id = ?", id).
		Update("photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo")
	}
	return helper.JsonOK(c, "Photo updated", fiber.Map{"photo_url": url})
}
