package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/platform/constants"
	"github.com/IvanZabelin/foodgram/internal/platform/sec"
	"github.com/IvanZabelin/foodgram/internal/platform/validate"
)

// Validation field identifiers.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldPassword        = "password"
	FieldNewPassword     = "new_password"
	FieldCurrentPassword = "current_password"
)

// TokenProvider mints signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID int64, username, role, tokenID string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Service implements the identity use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed before merging.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

func NewService(userRepo UserRepository, sessionRepo SessionRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// Register validates, hashes, and persists a new account. Uniqueness of
// email and username yields client-safe conflicts.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Username(FieldUsername, input.Username)
	validator.MaxLen(FieldUsername, input.Username, constants.MaxUsernameLength)
	validator.Required(FieldEmail, input.Email)
	validator.Email(FieldEmail, input.Email)
	validator.MaxLen(FieldEmail, input.Email, constants.MaxEmailLength)
	validator.Required(FieldFirstName, input.FirstName)
	validator.MaxLen(FieldFirstName, input.FirstName, constants.MaxUsernameLength)
	validator.Required(FieldLastName, input.LastName)
	validator.MaxLen(FieldLastName, input.LastName, constants.MaxUsernameLength)
	validator.Required(FieldPassword, input.Password)
	validator.MinLen(FieldPassword, input.Password, 8)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Generic conflicts by probing first. The unique constraints still
	// back this up under concurrent registration.
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.userRepository.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
		Role:         sec.RoleMember,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues an access token backed by a Redis
// session entry. Failures stay generic to prevent account enumeration.
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return "", apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", apperr.Unauthorized("Invalid login credentials")
	}

	// Time-sortable jti keys the revocable session entry.
	tokenID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("auth_service_token_id_failed: %w", err)
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(
		user.ID, user.Username, string(user.Role), tokenID.String(), constants.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	sessionKey := fmt.Sprintf("%d:%s", user.ID, tokenID.String())
	if err := service.sessionRepository.Create(context, sessionKey, constants.AccessTokenTTL); err != nil {
		return "", fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.Int64("user_id", user.ID))

	return accessToken, nil
}

// Logout revokes the session behind the presented token. Idempotent: a
// token that is already dead logs out successfully.
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if err := service.sessionRepository.Delete(context, claims.SessionKey()); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("user_logged_out", slog.Int64("user_id", claims.UserID))

	return nil
}

// VerifyAccess validates the JWT signature and claims, then requires the
// backing session to still exist. Satisfies middleware.TokenVerifier.
func (service *Service) VerifyAccess(context context.Context, tokenString string) (*sec.AuthClaims, error) {
	claims, err := service.tokenProvider.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	alive, err := service.sessionRepository.Exists(context, claims.SessionKey())
	if err != nil {
		return nil, err
	}
	if !alive {
		return nil, apperr.Unauthorized("Session has been revoked")
	}

	return claims, nil
}

// # Password Management

// ChangePassword verifies the current password before storing the new
// hash. Existing sessions stay alive until their tokens expire.
func (service *Service) ChangePassword(context context.Context, userID int64, currentPassword, newPassword string) error {
	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, currentPassword)
	validator.Required(FieldNewPassword, newPassword)
	validator.MinLen(FieldNewPassword, newPassword, 8)
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_change_password_update_failed: %w", err)
	}

	service.logger.Info("password_changed", slog.Int64("user_id", userID))

	return nil
}
