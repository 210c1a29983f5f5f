package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/moviefavs/backend/internal/logger"
	"github.com/moviefavs/backend/internal/models"
	"github.com/moviefavs/backend/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// AuthService handles registration, login, and password management.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{reader: reader, writer: writer}
}

// Register creates a new account with a bcrypt-hashed password.
// A concurrent registration of the same username loses on the unique index
// and surfaces here as ErrUserAlreadyExists.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hash))
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Log.Errorw("username already taken", "username", username)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user. The returned flag is true for legacy accounts
// with an empty stored hash, which authenticate with any supplied password,
// including the empty string, until one is set.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, bool, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, false, err
	}
	if user == nil {
		logger.Log.Errorw("unknown username on login", "username", username)
		return nil, false, ErrInvalidCredentials
	}

	if user.NeedsPassword() {
		return user, true, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, false, ErrInvalidCredentials
	}

	return user, false, nil
}

// SetPassword hashes and unconditionally overwrites the user's password.
// Ownership of the account is not verified at this layer.
func (svc *AuthService) SetPassword(ctx context.Context, userID int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hash)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	return nil
}
