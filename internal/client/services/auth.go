// Package services holds the client-side application services: session
// handling and the sync orchestrator.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsaleh/talentdesk/internal/client/api"
	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/logging"
)

// AuthAPI is the subset of the api client the auth service needs.
type AuthAPI interface {
	Register(ctx context.Context, username, password string) (*api.TokenPair, error)
	Login(ctx context.Context, username, password string) (*api.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenPair, error)
}

// AuthService keeps the session token in a kv slot so sync stays opportunistic
// across restarts. It implements the TokenProvider collaborator.
type AuthService struct {
	api AuthAPI
	kv  kv.Store
	log logging.Logger
}

func NewAuthService(api AuthAPI, kvs kv.Store, log logging.Logger) *AuthService {
	return &AuthService{api: api, kv: kvs, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	pair, err := s.api.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return s.storePair(ctx, pair)
}

func (s *AuthService) Login(ctx context.Context, username, password string) error {
	pair, err := s.api.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return s.storePair(ctx, pair)
}

// Logout drops the stored session. Local data is untouched.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.kv.RemoveMany(ctx, kv.KeySessionToken, kv.KeyRefreshToken)
}

// SessionToken returns the stored access token, or "" when no session exists.
// Absence is not an error: sync treats it as "nothing to do".
func (s *AuthService) SessionToken(ctx context.Context) string {
	token, ok, err := s.kv.Get(ctx, kv.KeySessionToken)
	if err != nil {
		s.log.Error(ctx, "failed to read session token", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// RefreshSession rotates the token pair using the stored refresh token.
func (s *AuthService) RefreshSession(ctx context.Context) error {
	refresh, ok, err := s.kv.Get(ctx, kv.KeyRefreshToken)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrUnauthorized
	}
	pair, err := s.api.Refresh(ctx, refresh)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			_ = s.Logout(ctx)
		}
		return fmt.Errorf("session refresh failed: %w", err)
	}
	return s.storePair(ctx, pair)
}

func (s *AuthService) storePair(ctx context.Context, pair *api.TokenPair) error {
	if err := s.kv.Set(ctx, kv.KeySessionToken, pair.AccessToken); err != nil {
		return err
	}
	return s.kv.Set(ctx, kv.KeyRefreshToken, pair.RefreshToken)
}
