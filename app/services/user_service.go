package services

import (
	"errors"
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService handles registration, lookup and authentication
type UserService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, jwtSecret string) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// Register creates a new user with a bcrypt-hashed password
func (s *UserService) Register(username, name, password string) (*models.User, error) {
	if err := validateRegistration(username, name, password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, fmt.Errorf("username %q is already taken", username)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Name:     name,
		Password: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// validateRegistration validates a registration request's fields
func validateRegistration(username, name, password string) error {
	if len(username) < 3 || len(username) > 30 {
		return fmt.Errorf("username must be 3-30 characters")
	}
	if name == "" {
		return fmt.Errorf("display name is required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

// Login verifies credentials and issues a signed bearer token.
// Any failure collapses to ErrInvalidCredentials so callers cannot
// distinguish an unknown username from a wrong password.
func (s *UserService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %v", err)
	}

	return user.Sanitized(), signed, nil
}

// GetUser retrieves a user by ID without the password hash
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// ListUsers retrieves all users without password hashes
func (s *UserService) ListUsers() ([]*models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]*models.User, 0, len(users))
	for _, user := range users {
		out = append(out, user.Sanitized())
	}
	return out, nil
}
