// Package admin guards the admin surface: every entry re-verifies the stored
// token against the backend before any admin view or write proceeds.
package admin

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/session"
)

const loginRoute = "/admin/login"

const adminRole = "admin"

// IdentityPort resolves the current user for a bearer token.
type IdentityPort interface {
	Me(ctx context.Context, token string) (*api.User, error)
}

// Router performs navigation. The gate only ever redirects to the login route.
type Router interface {
	Redirect(route string)
}

// Gate verifies admin access on every guarded entry. An optional positive
// verification cache (VerifyTTL > 0) skips the round trip for rapid
// consecutive entries; the default is to verify every time.
type Gate struct {
	tokens   session.TokenStore
	identity IdentityPort
	router   Router
	clock    clock.Clock
	logger   *slog.Logger

	verifyTTL time.Duration

	mu         sync.Mutex
	verifiedAt time.Time
	user       *api.User
}

type GateOption func(*Gate)

// WithVerifyTTL caches a successful verification for d. Zero disables the
// cache.
func WithVerifyTTL(d time.Duration) GateOption {
	return func(g *Gate) { g.verifyTTL = d }
}

func NewGate(tokens session.TokenStore, identity IdentityPort, router Router, clk clock.Clock, logger *slog.Logger, opts ...GateOption) *Gate {
	g := &Gate{
		tokens:   tokens,
		identity: identity,
		router:   router,
		clock:    clk,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Require verifies the caller is an authenticated admin. On success it
// returns the verified user and token; otherwise it redirects to the login
// route and returns an error. The stored token pair is cleared only when the
// backend itself rejects it, never on transient failures.
func (g *Gate) Require(ctx context.Context) (*api.User, string, error) {
	token, err := g.tokens.AccessToken(ctx)
	if err != nil {
		g.logger.Warn("token storage unreadable on admin entry", "error", err)
		g.router.Redirect(loginRoute)
		return nil, "", errs.Mark(err, errs.ErrNotAuthenticated)
	}
	if token == "" {
		g.router.Redirect(loginRoute)
		return nil, "", errs.ErrNotAuthenticated
	}

	if user := g.cachedUser(); user != nil {
		return user, token, nil
	}

	user, err := g.identity.Me(ctx, token)
	if err != nil {
		if api.IsUnauthorized(err) {
			// The backend rejected the token; it is dead weight.
			if clearErr := g.tokens.ClearTokens(ctx); clearErr != nil {
				g.logger.Warn("failed to clear rejected tokens", "error", clearErr)
			}
			g.router.Redirect(loginRoute)
			return nil, "", errs.Mark(err, errs.ErrNotAuthenticated)
		}
		// Network or server trouble: the token may still be good, so keep it
		// and make the user log in again once the backend is reachable.
		g.logger.Warn("admin verification unreachable", "error", err)
		g.router.Redirect(loginRoute)
		return nil, "", errs.Mark(err, errs.ErrNotAuthenticated)
	}

	if user.Role != adminRole {
		if clearErr := g.tokens.ClearTokens(ctx); clearErr != nil {
			g.logger.Warn("failed to clear non-admin tokens", "error", clearErr)
		}
		g.router.Redirect(loginRoute)
		return nil, "", errs.ErrNotAdmin
	}

	g.cacheUser(user)
	return user, token, nil
}

func (g *Gate) cachedUser() *api.User {
	if g.verifyTTL <= 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.user == nil || g.clock.Now().Sub(g.verifiedAt) > g.verifyTTL {
		return nil
	}
	return g.user
}

func (g *Gate) cacheUser(user *api.User) {
	if g.verifyTTL <= 0 {
		return
	}
	g.mu.Lock()
	g.user = user
	g.verifiedAt = g.clock.Now()
	g.mu.Unlock()
}

// Invalidate drops the cached verification; the next Require re-verifies.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	g.user = nil
	g.mu.Unlock()
}

// Logout clears the stored token pair and returns to the login route.
func (g *Gate) Logout(ctx context.Context) error {
	g.Invalidate()
	if err := g.tokens.ClearTokens(ctx); err != nil {
		return err
	}
	g.router.Redirect(loginRoute)
	return nil
}
