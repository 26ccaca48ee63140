package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/client/api"
	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/common"
)

type stubAuthAPI struct {
	pair *api.TokenPair
	err  error
}

func (s *stubAuthAPI) Register(ctx context.Context, username, password string) (*api.TokenPair, error) {
	return s.pair, s.err
}

func (s *stubAuthAPI) Login(ctx context.Context, username, password string) (*api.TokenPair, error) {
	return s.pair, s.err
}

func (s *stubAuthAPI) Refresh(ctx context.Context, refreshToken string) (*api.TokenPair, error) {
	return s.pair, s.err
}

func TestAuthService_LoginStoresPair(t *testing.T) {
	mem := kv.NewMemory()
	s := NewAuthService(&stubAuthAPI{pair: &api.TokenPair{AccessToken: "a1", RefreshToken: "r1"}}, mem, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "user", "pass"))
	assert.Equal(t, "a1", s.SessionToken(ctx))

	refresh, ok, err := mem.Get(ctx, kv.KeyRefreshToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "r1", refresh)
}

func TestAuthService_SessionTokenEmptyWithoutLogin(t *testing.T) {
	s := NewAuthService(&stubAuthAPI{}, kv.NewMemory(), testLogger())
	assert.Empty(t, s.SessionToken(context.Background()))
}

func TestAuthService_LogoutDropsSessionOnly(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, kv.KeyTalents, `[{"id":"t1"}]`))

	s := NewAuthService(&stubAuthAPI{pair: &api.TokenPair{AccessToken: "a1", RefreshToken: "r1"}}, mem, testLogger())
	require.NoError(t, s.Login(ctx, "user", "pass"))
	require.NoError(t, s.Logout(ctx))

	assert.Empty(t, s.SessionToken(ctx))
	_, ok, err := mem.Get(ctx, kv.KeyTalents)
	require.NoError(t, err)
	assert.True(t, ok, "local data survives logout")
}

func TestAuthService_RefreshSessionRotates(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	stub := &stubAuthAPI{pair: &api.TokenPair{AccessToken: "a1", RefreshToken: "r1"}}
	s := NewAuthService(stub, mem, testLogger())
	require.NoError(t, s.Login(ctx, "user", "pass"))

	stub.pair = &api.TokenPair{AccessToken: "a2", RefreshToken: "r2"}
	require.NoError(t, s.RefreshSession(ctx))
	assert.Equal(t, "a2", s.SessionToken(ctx))
}

func TestAuthService_RefreshSessionUnauthorizedLogsOut(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	stub := &stubAuthAPI{pair: &api.TokenPair{AccessToken: "a1", RefreshToken: "r1"}}
	s := NewAuthService(stub, mem, testLogger())
	require.NoError(t, s.Login(ctx, "user", "pass"))

	stub.pair = nil
	stub.err = common.ErrUnauthorized
	err := s.RefreshSession(ctx)
	require.Error(t, err)
	assert.Empty(t, s.SessionToken(ctx))
}

func TestAuthService_RefreshWithoutStoredTokenIsUnauthorized(t *testing.T) {
	s := NewAuthService(&stubAuthAPI{}, kv.NewMemory(), testLogger())
	assert.ErrorIs(t, s.RefreshSession(context.Background()), common.ErrUnauthorized)
}
