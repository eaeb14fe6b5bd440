//go:build unit

package admin_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"vedicjivan-booking/internal/admin"
	"vedicjivan-booking/internal/api"
	"vedicjivan-booking/internal/pkg/clock"
	"vedicjivan-booking/internal/pkg/errs"
	"vedicjivan-booking/internal/session"
	"vedicjivan-booking/internal/storage"
	adminmock "vedicjivan-booking/tests/mock/admin"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// routeRecorder collects the gate's redirects.
type routeRecorder struct {
	routes []string
}

func (r *routeRecorder) Redirect(route string) {
	r.routes = append(r.routes, route)
}

type GateTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	identity *adminmock.MockIdentityPort
	router   *routeRecorder
	tokens   session.TokenStore
	clk      *clock.MockClock
	logger   *slog.Logger
}

func (s *GateTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.identity = adminmock.NewMockIdentityPort(s.ctrl)
	s.router = &routeRecorder{}
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = session.NewTokenStore(storage.NewMemoryKV(), s.logger)
	s.clk = clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local))
}

func (s *GateTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateTestSuite))
}

func (s *GateTestSuite) newGate(opts ...admin.GateOption) *admin.Gate {
	return admin.NewGate(s.tokens, s.identity, s.router, s.clk, s.logger, opts...)
}

func (s *GateTestSuite) login() {
	s.Require().NoError(s.tokens.SetTokens(context.Background(), "tok_access", "tok_refresh"))
}

func (s *GateTestSuite) TestNoTokenRedirectsToLogin() {
	gate := s.newGate()

	_, _, err := gate.Require(context.Background())
	s.ErrorIs(err, errs.ErrNotAuthenticated)
	s.Equal([]string{"/admin/login"}, s.router.routes)
}

func (s *GateTestSuite) TestAdminPassesAndTokenIsReturned() {
	s.login()
	s.identity.EXPECT().Me(gomock.Any(), "tok_access").
		Return(&api.User{ID: "u1", Name: "Admin", Role: "admin"}, nil)

	gate := s.newGate()
	user, token, err := gate.Require(context.Background())
	s.Require().NoError(err)
	s.Equal("admin", user.Role)
	s.Equal("tok_access", token)
	s.Empty(s.router.routes)
}

func (s *GateTestSuite) TestRejectedTokenIsCleared() {
	s.login()
	s.identity.EXPECT().Me(gomock.Any(), "tok_access").
		Return(nil, &api.Error{Status: 401, Detail: "token expired"})

	gate := s.newGate()
	_, _, err := gate.Require(context.Background())
	s.ErrorIs(err, errs.ErrNotAuthenticated)
	s.Equal([]string{"/admin/login"}, s.router.routes)
	s.False(s.tokens.IsAuthenticated(context.Background()))
}

func (s *GateTestSuite) TestTransientFailureKeepsToken() {
	s.login()
	s.identity.EXPECT().Me(gomock.Any(), "tok_access").
		Return(nil, errors.New("connection refused"))

	gate := s.newGate()
	_, _, err := gate.Require(context.Background())
	s.ErrorIs(err, errs.ErrNotAuthenticated)
	s.Equal([]string{"/admin/login"}, s.router.routes)

	// A network blip must not destroy a possibly-valid login.
	s.True(s.tokens.IsAuthenticated(context.Background()))
}

func (s *GateTestSuite) TestNonAdminIsNeverAllowed() {
	s.login()
	s.identity.EXPECT().Me(gomock.Any(), "tok_access").
		Return(&api.User{ID: "u2", Name: "Customer", Role: "user"}, nil)

	gate := s.newGate()
	_, _, err := gate.Require(context.Background())
	s.ErrorIs(err, errs.ErrNotAdmin)
	s.Equal([]string{"/admin/login"}, s.router.routes)
	s.False(s.tokens.IsAuthenticated(context.Background()))
}

func (s *GateTestSuite) TestVerificationRunsEveryEntryByDefault() {
	s.login()
	s.identity.EXPECT().Me(gomock.Any(), "tok_access").
		Return(&api.User{ID: "u1", Role: "admin"}, nil).
		Times(2)

	gate := s.newGate()
	_, _, err := gate.Require(context.Background())
	s.Require().NoError(err)
	_, _, err = gate.Require(context.Background())
	s.Require().NoError(err)
}

func (s *GateTestSuite) TestVerifyTTLCachesWithinWindow() {
	s.login()
	s.identity.EXPECT().Me(gomock.Any(), "tok_access").
		Return(&api.User{ID: "u1", Role: "admin"}, nil).
		Times(2)

	gate := s.newGate(admin.WithVerifyTTL(time.Minute))

	_, _, err := gate.Require(context.Background())
	s.Require().NoError(err)

	s.clk.Add(30 * time.Second)
	_, _, err = gate.Require(context.Background())
	s.Require().NoError(err)

	s.clk.Add(2 * time.Minute)
	_, _, err = gate.Require(context.Background())
	s.Require().NoError(err)
}

func (s *GateTestSuite) TestLogoutClearsTokensAndRedirects() {
	s.login()
	gate := s.newGate()

	s.Require().NoError(gate.Logout(context.Background()))
	s.False(s.tokens.IsAuthenticated(context.Background()))
	s.Equal([]string{"/admin/login"}, s.router.routes)
}
