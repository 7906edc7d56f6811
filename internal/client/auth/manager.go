// Package auth manages the client authentication session: login, logout,
// token refresh, expiry detection and role checks.
//
// The Manager never returns errors from Login or Logout; failures are
// reported in LoginResult or logged. Refresh is the exception and returns an
// error wrapping ErrSessionExpired so callers handle session loss explicitly.
//
// The Manager is also the gateway's api.UnauthorizedHandler: a 401 on an
// authenticated request clears the stored session and sends the user to the
// login boundary (Navigator).
package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/vetclinic/internal/client/api"
	"github.com/dmitrijs2005/vetclinic/internal/client/models"
	"github.com/dmitrijs2005/vetclinic/internal/logging"
)

// ErrSessionExpired is returned (wrapped) by Refresh when the session could
// not be renewed.
var ErrSessionExpired = errors.New("session expired")

// DefaultLoginFailureMessage is shown when the server gives no reason.
const DefaultLoginFailureMessage = "Error al iniciar sesión"

const (
	loginPath   = "/auth/login"
	logoutPath  = "/auth/logout"
	refreshPath = "/auth/refresh"
)

// Transport is the part of api.Gateway the manager needs.
type Transport interface {
	Post(ctx context.Context, path string, body any) (*api.Response, error)
}

// SessionStore persists the token and user. session.Session implements it.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, token string, user *models.User) error
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Generation() uint64
}

// Navigator is the login boundary the user is sent to after a forced logout.
type Navigator interface {
	ToLogin(ctx context.Context)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context)

func (f NavigatorFunc) ToLogin(ctx context.Context) { f(ctx) }

// LoginResult is the outcome of Login.
type LoginResult struct {
	Success bool
	User    *models.User
	Token   string
	Message string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type Manager struct {
	transport Transport
	session   SessionStore
	navigator Navigator
	logger    logging.Logger
	now       func() time.Time
	scoped    bool

	mu    sync.Mutex
	state State
}

type Option func(*Manager)

func WithNavigator(n Navigator) Option {
	return func(m *Manager) { m.navigator = n }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock overrides time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithGenerationScopedTeardown makes HandleUnauthorized ignore 401s from
// requests issued under an older session generation.
func WithGenerationScopedTeardown() Option {
	return func(m *Manager) { m.scoped = true }
}

func NewManager(t Transport, s SessionStore, opts ...Option) *Manager {
	m := &Manager{
		transport: t,
		session:   s,
		navigator: NavigatorFunc(func(context.Context) {}),
		logger:    logging.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// Login authenticates with identifier (email) and secret (password).
func (m *Manager) Login(ctx context.Context, identifier, secret string) LoginResult {
	m.setState(Authenticating)

	resp, err := m.transport.Post(ctx, loginPath, loginRequest{Email: identifier, Password: secret})
	if err != nil {
		m.setState(Anonymous)
		m.logger.Info(ctx, "login rejected", "email", identifier, "status", api.StatusOf(err))
		return LoginResult{Message: api.MessageOf(err, DefaultLoginFailureMessage)}
	}

	var body loginResponse
	if err := resp.Decode(&body); err != nil || body.AccessToken == "" {
		m.setState(Anonymous)
		m.logger.Error(ctx, "unexpected login response", "error", err)
		return LoginResult{Message: DefaultLoginFailureMessage}
	}

	if err := m.session.Save(ctx, body.AccessToken, body.User); err != nil {
		m.setState(Anonymous)
		m.logger.Error(ctx, "persisting session failed", "error", err)
		return LoginResult{Message: DefaultLoginFailureMessage}
	}

	m.setState(Authenticated)
	m.logger.Info(ctx, "logged in", "email", identifier, "role", body.User.RoleName())
	return LoginResult{Success: true, User: body.User, Token: body.AccessToken}
}

// Logout invalidates the session remotely (best effort) and always clears
// the local session.
func (m *Manager) Logout(ctx context.Context) {
	defer m.clearLocal(ctx)

	if _, err := m.transport.Post(ctx, logoutPath, nil); err != nil {
		m.logger.Warn(ctx, "remote logout failed", "error", err)
	}
}

func (m *Manager) clearLocal(ctx context.Context) {
	if err := m.session.Clear(ctx); err != nil {
		m.logger.Error(ctx, "clearing session failed", "error", err)
	}
	m.setState(Anonymous)
}

// Refresh exchanges the current session for a new token. On failure the
// session is logged out and the returned error wraps ErrSessionExpired.
func (m *Manager) Refresh(ctx context.Context) (string, error) {
	token, err := m.refresh(ctx)
	if err != nil {
		m.Logout(ctx)
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return token, nil
}

func (m *Manager) refresh(ctx context.Context) (string, error) {
	resp, err := m.transport.Post(ctx, refreshPath, nil)
	if err != nil {
		return "", err
	}

	var body refreshResponse
	if err := resp.Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", errors.New("refresh response has no access_token")
	}

	if err := m.session.SetToken(ctx, body.AccessToken); err != nil {
		return "", err
	}
	return body.AccessToken, nil
}

// IsAuthenticated reports whether a usable token is stored. A token that
// cannot be decoded or whose expiry has passed triggers Logout, so this call
// may have side effects.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	token, err := m.session.Token(ctx)
	if err != nil {
		m.logger.Warn(ctx, "reading token failed", "error", err)
		return false
	}
	if token == "" {
		return false
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		m.logger.Warn(ctx, "stored token is malformed", "error", err)
		m.Logout(ctx)
		return false
	}

	if expired(exp, m.now()) {
		m.setState(Expired)
		m.logger.Info(ctx, "session expired", "expired_at", exp)
		m.Logout(ctx)
		return false
	}

	m.setState(Authenticated)
	return true
}

// HandleUnauthorized implements api.UnauthorizedHandler.
func (m *Manager) HandleUnauthorized(ctx context.Context, generation uint64) {
	if m.scoped && generation < m.session.Generation() {
		m.logger.Info(ctx, "ignoring 401 from superseded session",
			"request_generation", generation, "current_generation", m.session.Generation())
		return
	}

	m.logger.Warn(ctx, "unauthorized response, ending session")
	m.clearLocal(ctx)
	m.navigator.ToLogin(ctx)
}

// CurrentUser returns the stored user or nil.
func (m *Manager) CurrentUser(ctx context.Context) *models.User {
	u, err := m.session.User(ctx)
	if err != nil {
		m.logger.Warn(ctx, "reading user failed", "error", err)
		return nil
	}
	return u
}

// Token returns the stored token or "".
func (m *Manager) Token(ctx context.Context) string {
	t, err := m.session.Token(ctx)
	if err != nil {
		return ""
	}
	return t
}

// HasRole reports whether the current user's role name equals role.
func (m *Manager) HasRole(ctx context.Context, role string) bool {
	u := m.CurrentUser(ctx)
	return u != nil && u.Role != nil && u.Role.Name == role
}

// HasAnyRole reports whether the current user's role name is one of roles.
func (m *Manager) HasAnyRole(ctx context.Context, roles ...string) bool {
	u := m.CurrentUser(ctx)
	return u != nil && u.Role != nil && slices.Contains(roles, u.Role.Name)
}
