package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/harborline/seaquote/internal/auth/domain"
	"github.com/harborline/seaquote/internal/auth/repository"
	"github.com/harborline/seaquote/internal/clock"
	"github.com/harborline/seaquote/internal/config"
	"github.com/harborline/seaquote/internal/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.AutoMigrate(conn))

	fake := clock.NewFakeClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		Config: config.Config{SessionTTLHours: 24},
		DB:     conn,
		Log:    zap.NewNop(),
		Clock:  fake,
		Repo:   repository.Provide(),
	})
	return svc, fake
}

func register(t *testing.T, svc domain.Service, username, role string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret-pass",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterNormalizesUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	user := register(t, svc, "  Alice ", "")
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "  ", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "bob", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "bob", Password: "s3cret-pass", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "")

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "ALICE",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", domain.RoleOperator)
	ctx := context.Background()

	user, session, err := svc.Login(ctx, "Alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	require.NotEmpty(t, session.ID)

	resolved, err := svc.Authenticate(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.True(t, resolved.CanOperate())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "")
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "alice", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "")
	ctx := context.Background()

	_, session, err := svc.Login(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.ID))

	_, err = svc.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, fake := newAuthService(t)
	register(t, svc, "alice", "")
	ctx := context.Background()

	_, session, err := svc.Login(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	fake.Advance(25 * time.Hour)

	_, err = svc.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// The expired session is deleted, not just rejected.
	_, err = svc.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthenticateEmptySession(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
