package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"github.com/rewritely/rewritely-go/internal/crypto"
	"github.com/rewritely/rewritely-go/internal/model"
	"github.com/rewritely/rewritely-go/internal/repository"
)

var (
	ErrFieldsRequired      = errors.New("all fields are required")
	ErrUsernameLength      = errors.New("username must be 3-20 characters")
	ErrInvalidEmail        = errors.New("please enter a valid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrCredentialsRequired = errors.New("username and password are required")
	// Deliberately identical for unknown user and wrong password so the
	// response never reveals which one it was.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the persistence surface AuthService depends on. Implemented
// by repository.UserRepository; lookups report repository.ErrUserNotFound and
// Create reports the repository duplicate-key sentinels.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	TouchLastLogin(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// AuthService handles registration, login and session business logic.
type AuthService struct {
	repo        UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:        repo,
		jwtSecret:   secret,
		tokenExpiry: expiry,
	}
}

// Register creates a new user account and returns the identity plus a fresh
// token. Username uniqueness is reported before email uniqueness when both
// collide. The pre-checks are advisory; the store's unique indexes are the
// authoritative guard, and a duplicate-key insert maps to the same errors.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrFieldsRequired
	}
	if n := len([]rune(req.Username)); n < 3 || n > 20 {
		return model.AuthResponse{}, ErrUsernameLength
	}
	if !emailPattern.MatchString(req.Email) {
		return model.AuthResponse{}, ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return model.AuthResponse{}, ErrPasswordTooShort
	}

	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return model.AuthResponse{}, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.AuthResponse{}, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	slog.Info("user registered", "username", user.Username)

	return model.AuthResponse{
		Success: true,
		Message: "registration successful",
		User: model.AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token,
	}, nil
}

// Login authenticates a user by username or email and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return model.AuthResponse{}, ErrCredentialsRequired
	}

	user, err := s.repo.GetByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	// Bookkeeping only; a failed write must not fail the login.
	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		slog.Warn("updating last_login failed", "user_id", user.ID, "error", err)
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	slog.Info("user logged in", "username", user.Username)

	return model.AuthResponse{
		Success: true,
		Message: "login successful",
		User: model.AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token,
	}, nil
}

// Profile re-fetches the current user row by ID so the returned view reflects
// current state rather than stale token claims.
func (s *AuthService) Profile(ctx context.Context, userID int64) (model.Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	return model.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}, nil
}

// Stats returns aggregate user counters.
func (s *AuthService) Stats(ctx context.Context) (model.Stats, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return model.Stats{TotalUsers: count}, nil
}
