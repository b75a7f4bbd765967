package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

// ResolveUserRole re-reads an actor's role from storage. Claimed roles
// from the request are never trusted across resources.
func ResolveUserRole(db *gorm.DB, id uuid.UUID) (string, error) {
	var user userModel.UserModel
	if err := db.Select("id", "role").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusUnauthorized, "Unknown actor")
		}
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve actor")
	}
	return user.Role, nil
}

// EnsureOwnerOrAdmin applies the shared authorization rule: the acting
// user must be the resource owner or an admin.
func EnsureOwnerOrAdmin(db *gorm.DB, actorID, ownerID uuid.UUID) error {
	if actorID == ownerID {
		return nil
	}
	role, err := ResolveUserRole(db, actorID)
	if err != nil {
		return err
	}
	if role != userModel.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "You do not own this resource")
	}
	return nil
}
