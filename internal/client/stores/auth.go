package stores

import (
	"context"

	"github.com/dmitrijs2005/vetclinic/internal/client/auth"
	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

// Authenticator is the part of auth.Manager the store drives.
type Authenticator interface {
	Login(ctx context.Context, identifier, secret string) auth.LoginResult
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) *models.User
	HasRole(ctx context.Context, role string) bool
	HasAnyRole(ctx context.Context, roles ...string) bool
}

// AuthStore mirrors the session for observers.
type AuthStore struct {
	mgr           Authenticator
	User          *Writable[*models.User]
	Authenticated *Writable[bool]
	Loading       *Writable[bool]
}

func NewAuthStore(mgr Authenticator) *AuthStore {
	return &AuthStore{
		mgr:           mgr,
		User:          NewWritable[*models.User](nil),
		Authenticated: NewWritable(false),
		Loading:       NewWritable(false),
	}
}

// Init re-hydrates the store from a persisted, still valid session.
func (s *AuthStore) Init(ctx context.Context) {
	if s.mgr.IsAuthenticated(ctx) {
		s.User.Set(s.mgr.CurrentUser(ctx))
		s.Authenticated.Set(true)
		return
	}
	s.reset()
}

func (s *AuthStore) Login(ctx context.Context, identifier, secret string) auth.LoginResult {
	s.Loading.Set(true)
	defer s.Loading.Set(false)

	res := s.mgr.Login(ctx, identifier, secret)
	if res.Success {
		s.User.Set(res.User)
		s.Authenticated.Set(true)
	}
	return res
}

func (s *AuthStore) Logout(ctx context.Context) {
	s.Loading.Set(true)
	defer s.Loading.Set(false)
	defer s.reset()

	s.mgr.Logout(ctx)
}

// Reset clears the store without contacting the server, for use after the
// session was torn down elsewhere.
func (s *AuthStore) Reset() {
	s.reset()
}

func (s *AuthStore) HasRole(ctx context.Context, role string) bool {
	return s.mgr.HasRole(ctx, role)
}

func (s *AuthStore) HasAnyRole(ctx context.Context, roles ...string) bool {
	return s.mgr.HasAnyRole(ctx, roles...)
}

func (s *AuthStore) reset() {
	s.User.Set(nil)
	s.Authenticated.Set(false)
}
