package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/entertainmenthub/user-api/internal/domain/entity"
	repo "github.com/entertainmenthub/user-api/internal/domain/repository"
	"github.com/entertainmenthub/user-api/pkg/helpers"
	"github.com/entertainmenthub/user-api/pkg/mailer"
)

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email is already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password, so a
	// failed login never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a resolved identity has no stored user.
	ErrUserNotFound = errors.New("user not found")
)

// PasswordHasher is the one-way credential hash used for storage and verification.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// Identity is the resolved subject of a validated token. It is passed
// explicitly into every protected service call; there is no ambient
// current-user state anywhere in the process.
type Identity struct {
	UserID   string
	Email    string
	Username string
}

// AuthService orchestrates registration and login.
type AuthService struct {
	Repo   repo.UserRepository
	Hasher PasswordHasher
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
	Pub    *mailer.Publisher // optional; nil disables welcome emails
}

func NewAuthService(r repo.UserRepository, hasher PasswordHasher, jwt *helpers.JWTManager, logger *logrus.Logger, pub *mailer.Publisher) *AuthService {
	return &AuthService{Repo: r, Hasher: hasher, JWT: jwt, Logger: logger, Pub: pub}
}

// Register creates a new account with a hashed password and returns the
// persisted user. The ExistsByEmail check is the fast path; the unique
// constraint in the store is the backstop against a concurrent register.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	taken, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.WelcomeJob(u.Email, u.Username)
		if pErr := s.Pub.Enqueue(ctx, job); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
		}
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	}
	return u, nil
}

// dummyDigest is a throwaway bcrypt digest compared against when the email
// lookup misses, so a miss costs roughly the same as a wrong password.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login verifies credentials and issues a signed session token. A missing
// account and a wrong password collapse into the same error; store failures
// propagate unchanged.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.Hasher.Verify(password, dummyDigest)
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !s.Hasher.Verify(password, u.PasswordHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// GetProfile returns the stored identity summary for a resolved identity.
func (s *AuthService) GetProfile(ctx context.Context, id Identity) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
