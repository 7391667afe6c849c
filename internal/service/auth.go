package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/depscout/depscout/internal/cache"
	"github.com/depscout/depscout/internal/domain/model"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Tokens   *cache.TTLCache // Required: issued access token cache
	TokenTTL time.Duration   // Optional: access token lifetime, defaults to 1h
	Logger   *slog.Logger    // Optional: structured logger
}

const defaultTokenTTL = time.Hour

// AuthService issues opaque bearer token pairs for the login endpoint and
// tracks issued access tokens for later verification.
type AuthService struct {
	tokens   *cache.TTLCache
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Tokens == nil {
		return nil, errors.New("token cache is required")
	}

	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "auth_service")
	}

	return &AuthService{
		tokens:   opts.Tokens,
		tokenTTL: ttl,
		logger:   logger,
	}, nil
}

// MustNewAuthService constructs a new AuthService and panics on error.
func MustNewAuthService(opts AuthServiceOptions) *AuthService {
	svc, err := NewAuthService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create AuthService: %v", err))
	}
	return svc
}

// Login validates the credential shape and issues a fresh token pair. Tokens
// are opaque and unforgeable but carry no claims; the access token is cached
// under its digest so Verify can confirm it was issued here.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pair := &model.TokenPair{
		AccessToken:  newOpaqueToken(),
		RefreshToken: newOpaqueToken(),
	}
	s.tokens.Set(tokenKey(pair.AccessToken), []byte(req.Login), s.tokenTTL)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "token pair issued", "login", req.Login)
	}
	return pair, nil
}

// Verify reports whether token is a live access token issued by Login,
// returning the login it was issued for.
func (s *AuthService) Verify(token string) (string, bool) {
	login, ok := s.tokens.Get(tokenKey(token))
	if !ok {
		return "", false
	}
	return string(login), true
}

// Revoke drops an access token before its TTL elapses.
func (s *AuthService) Revoke(token string) bool {
	return s.tokens.Delete(tokenKey(token))
}

func newOpaqueToken() string {
	return uuid.NewString() + uuid.NewString()
}

// tokenKey digests tokens before caching so a dump of the cache never yields
// usable credentials.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
