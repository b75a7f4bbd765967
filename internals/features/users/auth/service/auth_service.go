package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authModel "schoolhub_backend/internals/features/users/auth/model"
	userDTO "schoolhub_backend/internals/features/users/user/dto"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

type AuthService struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthService(db *gorm.DB, cfg *configs.Config) *AuthService {
	return &AuthService{DB: db, Cfg: cfg}
}

// TokenPair is what login/refresh hand back to the controller.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
	User             userDTO.UserResponse
}

// Register creates a user. Self-registration always gets the student
// role; only an admin actor may pick another one.
func (s *AuthService) Register(req *userDTO.CreateUserRequest, actorIsAdmin bool) (*userDTO.UserResponse, error) {
	if req.Role != "" && req.Role != userModel.RoleStudent && !actorIsAdmin {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only admins may assign roles")
	}

	var cnt int64
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("lower(email) = lower(?)", req.Email).Count(&cnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel()
	m.Password = string(hash)
	if err := s.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	resp := userDTO.FromModel(m)
	return &resp, nil
}

// Login verifies credentials and issues both tokens, persisting the
// refresh hash.
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user userModel.UserModel
	if err := s.DB.First(&user, "lower(email) = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return s.issueTokens(&user)
}

// Refresh rotates the pair: the presented refresh token must parse and
// match a live row, which is then revoked in favor of a new one.
func (s *AuthService) Refresh(rawRefresh string) (*TokenPair, error) {
	userID, err := ParseRefreshToken(rawRefresh, s.Cfg.JWTRefreshSecret)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	hash := HashRefreshToken(rawRefresh, s.Cfg.JWTRefreshSecret)
	var row authModel.RefreshTokenModel
	if err := s.DB.First(&row, "token = ? AND revoked_at IS NULL AND expires_at > now()", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unknown refresh token")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check refresh token")
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&row).Update("revoked_at", now).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}
	return s.issueTokens(&user)
}

// Logout revokes every live refresh row for the user.
func (s *AuthService) Logout(userID uuid.UUID) error {
	now := time.Now().UTC()
	if err := s.DB.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log out")
	}
	return nil
}

// Me returns the caller's own profile.
func (s *AuthService) Me(userID uuid.UUID) (*userDTO.UserResponse, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}
	resp := userDTO.FromModel(&user)
	return &resp, nil
}

func (s *AuthService) issueTokens(user *userModel.UserModel) (*TokenPair, error) {
	accessTTL := time.Duration(s.Cfg.JWTExpiryHours) * time.Hour

	access, accessExp, err := GenerateAccessToken(s.Cfg.JWTSecret, user, accessTTL)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refresh, refreshExp, err := GenerateRefreshToken(s.Cfg.JWTRefreshSecret, user.ID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	row := authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     HashRefreshToken(refresh, s.Cfg.JWTRefreshSecret),
		ExpiresAt: refreshExp,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to persist refresh token")
	}

	return &TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
		User:             userDTO.FromModel(user),
	}, nil
}
