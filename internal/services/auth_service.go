package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskify-app/taskify-api/internal/auth"
	"github.com/taskify-app/taskify-api/internal/logger"
	"github.com/taskify-app/taskify-api/internal/models"
	"github.com/taskify-app/taskify-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid username/email or password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration, credential verification and token
// issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	tokens    *auth.TokenManager
	passwords *auth.PasswordManager
	log       *logger.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, log *logger.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		passwords: auth.NewPasswordManager(),
		log:       log,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// Register creates a new user account and issues a token for it. Username
// and email collisions are exact, case-sensitive matches.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		s.log.Warn("registration rejected: username taken", "username", input.Username)
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		s.log.Warn("registration rejected: email taken", "email", input.Email)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         "User",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered", "username", user.Username, "id", user.ID)

	return s.issue(user)
}

// Login verifies credentials against the stored hash and issues a token.
// Unknown account, inactive account and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(usernameOrEmail, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		s.log.Warn("login rejected: account inactive", "username", user.Username)
		return nil, ErrInvalidCredentials
	}

	if !s.passwords.Verify(user.PasswordHash, password) {
		s.log.Warn("login rejected: bad password", "username", user.Username)
		return nil, ErrInvalidCredentials
	}

	s.log.Info("user logged in", "username", user.Username, "id", user.ID)

	return s.issue(user)
}

// ValidateToken reports whether a token is currently valid. Every failure
// mode is uniformly false.
func (s *AuthService) ValidateToken(token string) bool {
	_, err := s.tokens.Validate(token)
	return err == nil
}

// ExtractUserID reads the subject from a token without validating it.
func (s *AuthService) ExtractUserID(token string) (uint64, bool) {
	return s.tokens.ExtractUserID(token)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
