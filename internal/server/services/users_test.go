package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/server/auth"
	"github.com/hsaleh/talentdesk/internal/server/config"
	"github.com/hsaleh/talentdesk/internal/server/repositories/repomanager"
)

func testUserService() *UserService {
	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	return NewUserService(nil, repomanager.NewMemoryRepositoryManager(), cfg)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	s := testUserService()
	ctx := context.Background()

	pair, err := s.Register(ctx, "hala", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	loginPair, err := s.Login(ctx, "hala", "s3cret")
	require.NoError(t, err)
	loginUserID, err := auth.GetUserIDFromToken(loginPair.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, userID, loginUserID)
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	s := testUserService()
	ctx := context.Background()

	_, err := s.Register(ctx, "hala", "s3cret")
	require.NoError(t, err)

	_, err = s.Register(ctx, "hala", "other")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	s := testUserService()
	ctx := context.Background()

	_, err := s.Register(ctx, "hala", "s3cret")
	require.NoError(t, err)

	_, err = s.Login(ctx, "hala", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidLoginPassword)
}

func TestUserService_LoginUnknownUserSameError(t *testing.T) {
	s := testUserService()

	_, err := s.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, common.ErrInvalidLoginPassword)
}

func TestUserService_RefreshRotatesToken(t *testing.T) {
	s := testUserService()
	ctx := context.Background()

	pair, err := s.Register(ctx, "hala", "s3cret")
	require.NoError(t, err)

	next, err := s.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// The old refresh token was consumed by the rotation.
	_, err = s.RefreshToken(ctx, pair.RefreshToken)
	assert.Error(t, err)
}

func TestUserService_ExpiredRefreshToken(t *testing.T) {
	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: -time.Minute,
	}
	s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), cfg)
	ctx := context.Background()

	pair, err := s.Register(ctx, "hala", "s3cret")
	require.NoError(t, err)

	_, err = s.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}
