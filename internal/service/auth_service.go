package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"dochouse/internal/model"
	"dochouse/internal/repository"
	"dochouse/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email or username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid identifier or password")
	ErrInvalidRole        = errors.New("invalid role")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, username, email, password, photoURL string) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (*model.User, string, error)
	AuthStatus(ctx context.Context, userID int) (*model.User, error)
	SetRole(ctx context.Context, userID int, role string) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, userID int) (int64, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account with the default 'user' role.
// The password hash is never returned to callers of the HTTP API.
func (s *authService) Register(ctx context.Context, username, email, password, photoURL string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing == nil && username != "" {
		existing, err = s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing username: %w", err)
		}
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userRole := model.RoleUser // Default role

	// Check for initial admin setup via environment variable
	initialAdminEmail := os.Getenv("INITIAL_ADMIN_EMAIL")
	if initialAdminEmail != "" && email == initialAdminEmail {
		userRole = model.RoleAdmin
		log.Printf("INFO: User %s is being registered as ADMIN via INITIAL_ADMIN_EMAIL.", email)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PhotoURL:     photoURL,
		PasswordHash: hashedPassword,
		Role:         userRole,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token. The identifier is
// treated as an email when it contains '@', as a username otherwise.
// Unknown identifier and wrong password yield the same error so callers
// cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, identifier, password string) (*model.User, string, error) {
	var user *model.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by identifier: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// AuthStatus re-fetches the current record for a verified identity
func (s *authService) AuthStatus(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetRole updates a user's role. Safe to retry: applying the same role
// twice leaves the record unchanged.
func (s *authService) SetRole(ctx context.Context, userID int, role string) (int64, error) {
	if role != model.RoleUser && role != model.RoleAdmin {
		return 0, ErrInvalidRole
	}
	affected, err := s.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		return 0, fmt.Errorf("failed to set role: %w", err)
	}
	if affected == 0 {
		return 0, ErrUserNotFound
	}
	return affected, nil
}

// IsAdmin reports whether the stored role for the email is admin
func (s *authService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	return user.Role == model.RoleAdmin, nil
}

// DeleteUser removes a user record
func (s *authService) DeleteUser(ctx context.Context, userID int) (int64, error) {
	affected, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return 0, ErrUserNotFound
	}
	return affected, nil
}
