// Package session holds the durable client-side state: the bearer token pair
// and the per-service pending-booking records.
package session

import (
	"context"
	"errors"
	"log/slog"

	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/storage"
)

const (
	accessTokenKey  = "vj_token"
	refreshTokenKey = "vj_refresh"
)

// TokenStore exposes the session token pair. Implementations re-read durable
// storage on every call; validity is only ever decided by the backend's 401.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, access, refresh string) error
	ClearTokens(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type tokenStoreImpl struct {
	kv     storage.KV
	logger *slog.Logger
}

func NewTokenStore(kv storage.KV, logger *slog.Logger) TokenStore {
	return &tokenStoreImpl{kv: kv, logger: logger}
}

func (s *tokenStoreImpl) AccessToken(ctx context.Context) (string, error) {
	return s.read(ctx, accessTokenKey)
}

func (s *tokenStoreImpl) RefreshToken(ctx context.Context) (string, error) {
	return s.read(ctx, refreshTokenKey)
}

// read maps "absent" to ("", nil): callers treat an empty token as logged-out.
func (s *tokenStoreImpl) read(ctx context.Context, key string) (string, error) {
	val, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", errs.Mark(err, errs.ErrStorageFailure)
	}
	return val, nil
}

func (s *tokenStoreImpl) SetTokens(ctx context.Context, access, refresh string) error {
	if err := s.kv.Set(ctx, accessTokenKey, access); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	if err := s.kv.Set(ctx, refreshTokenKey, refresh); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (s *tokenStoreImpl) ClearTokens(ctx context.Context) error {
	if err := s.kv.Delete(ctx, accessTokenKey); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	if err := s.kv.Delete(ctx, refreshTokenKey); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (s *tokenStoreImpl) IsAuthenticated(ctx context.Context) bool {
	token, err := s.AccessToken(ctx)
	if err != nil {
		s.logger.Warn("token storage unreadable, treating as unauthenticated", "error", err)
		return false
	}
	return token != ""
}
