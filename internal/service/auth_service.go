package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hygienicomfort/shop_api/internal/cache"
	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

// AuthService handles staff login, registration and password resets.
type AuthService struct {
	staffRepo *repository.StaffUserRepository
	redis     *cache.RedisClient
	resetTTL  time.Duration
}

// NewAuthService constructs an AuthService. resetTTL bounds the lifetime
// of password reset tokens.
func NewAuthService(staffRepo *repository.StaffUserRepository, redis *cache.RedisClient, resetTTL time.Duration) *AuthService {
	return &AuthService{staffRepo: staffRepo, redis: redis, resetTTL: resetTTL}
}

// LoginResult bundles the signed token with the account it belongs to.
type LoginResult struct {
	Token string            `json:"token"`
	User  *models.StaffUser `json:"user"`
}

// Login verifies credentials and issues a JWT carrying the account's
// role and display identity.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		log.Warn().Str("email", email).Msg("Login attempt for unknown email")
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("Login attempt for inactive account")
		return nil, utils.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.FullName, user.EmployeeID, user.Role)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Str("role", user.Role).Msg("Login successful")
	return &LoginResult{Token: token, User: user}, nil
}

// Register creates a new staff account with a bcrypt password hash.
func (s *AuthService) Register(email, password, fullName, employeeID, role string) (*models.StaffUser, error) {
	if role != models.RoleAdmin && role != models.RoleStaff {
		role = models.RoleStaff
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.StaffUser{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		EmployeeID:   employeeID,
		Role:         role,
		IsActive:     true,
	}
	if err := s.staffRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset issues a single-use reset token for an email and
// returns the link the frontend mails or displays. Unknown emails return
// an empty link without error so callers cannot probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email, baseURL string) (string, error) {
	user, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info().Str("email", email).Msg("Password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	token := uuid.New().String()
	key := resetTokenKey(token)
	if err := s.redis.Set(ctx, key, fmt.Sprintf("%d", user.ID), s.resetTTL); err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("Password reset token issued")
	return fmt.Sprintf("%s/reset-password?token=%s", baseURL, token), nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	val, err := s.redis.GetDel(ctx, resetTokenKey(token))
	if err != nil {
		if cache.IsNil(err) {
			return utils.ErrInvalidToken
		}
		return err
	}

	var userID int
	if _, err := fmt.Sscanf(val, "%d", &userID); err != nil {
		return utils.ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.staffRepo.UpdatePassword(userID, string(hashed))
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthService) ChangePassword(userID int, current, newPassword string) error {
	user, err := s.staffRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.staffRepo.UpdatePassword(userID, string(hashed))
}

// GetProfile returns the account behind a token's user id.
func (s *AuthService) GetProfile(userID int) (*models.StaffUser, error) {
	return s.staffRepo.GetByID(userID)
}

// UpdateProfile changes the display fields of an account.
func (s *AuthService) UpdateProfile(userID int, fullName, employeeID string) (*models.StaffUser, error) {
	user, err := s.staffRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.FullName = fullName
	user.EmployeeID = employeeID
	if err := s.staffRepo.UpdateProfile(user); err != nil {
		return nil, err
	}
	return user, nil
}

func resetTokenKey(token string) string {
	return "reset:" + token
}
