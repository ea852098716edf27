package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/entertainmenthub/user-api/internal/application"
	"github.com/entertainmenthub/user-api/internal/domain/entity"
	"github.com/entertainmenthub/user-api/internal/infrastructure/memory"
	"github.com/entertainmenthub/user-api/pkg/helpers"
)

func newAuthService(t *testing.T) (*application.AuthService, *memory.UserRepository) {
	t.Helper()

	repo := memory.NewUserRepository()
	hasher := helpers.NewBcryptHasher(bcrypt.MinCost)
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	return application.NewAuthService(repo, hasher, jwt, nil, nil), repo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	u, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@x.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "pw123", u.PasswordHash, "plaintext must never be stored")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "other", "alice@x.com", "different")
	assert.ErrorIs(t, err, application.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	registered, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	u, token, exp, err := svc.Login(ctx, "alice@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_Login_FailureIsExistenceAgnostic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@x.com", "pw123")
	_, _, _, wrongPwErr := svc.Login(ctx, "alice@x.com", "wrong")

	// "no such account" and "wrong password" must be indistinguishable
	assert.ErrorIs(t, unknownErr, application.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, application.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

// faultyRepo fails every email lookup with a fixed error, standing in for a
// store that is down.
type faultyRepo struct {
	*memory.UserRepository
	err error
}

func (r *faultyRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, r.err
}

func TestAuthService_Login_StoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")
	repo := &faultyRepo{UserRepository: memory.NewUserRepository(), err: storeErr}
	hasher := helpers.NewBcryptHasher(bcrypt.MinCost)
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	svc := application.NewAuthService(repo, hasher, jwt, nil, nil)

	_, _, _, err := svc.Login(ctx, "alice@x.com", "pw123")
	assert.ErrorIs(t, err, storeErr, "store faults must surface, not hide behind a 401")
	assert.NotErrorIs(t, err, application.ErrInvalidCredentials)
}

// countingHasher records how often Verify runs.
type countingHasher struct {
	application.PasswordHasher
	verifies int
}

func (h *countingHasher) Verify(plain, digest string) bool {
	h.verifies++
	return h.PasswordHasher.Verify(plain, digest)
}

func TestAuthService_Login_UnknownEmailStillVerifies(t *testing.T) {
	ctx := context.Background()
	hasher := &countingHasher{PasswordHasher: helpers.NewBcryptHasher(bcrypt.MinCost)}
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	svc := application.NewAuthService(memory.NewUserRepository(), hasher, jwt, nil, nil)

	_, _, _, err := svc.Login(ctx, "nobody@x.com", "pw123")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
	// a miss burns a hash comparison like a hit does
	assert.Equal(t, 1, hasher.verifies)
}

func TestAuthService_GetProfile(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthService(t)

	u, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	id := application.Identity{UserID: u.ID, Email: u.Email, Username: u.Username}
	got, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	repo.Delete(u.ID)
	_, err = svc.GetProfile(ctx, id)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}
