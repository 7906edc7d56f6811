// Package session holds the persisted client session: the bearer token and
// the authenticated user profile, stored together in the local key/value
// store so they survive restarts.
//
// A Session is passed explicitly to the gateway interceptors and to the auth
// manager. Every successful Save starts a new session generation; requests
// are tagged with the generation they were issued under, which lets a late
// 401 from a superseded session be told apart from one for the current
// session.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
	"github.com/dmitrijs2005/vetclinic/internal/client/storage"
	"github.com/dmitrijs2005/vetclinic/internal/common"
	"github.com/dmitrijs2005/vetclinic/internal/dbx"
)

type Session struct {
	db         *sql.DB
	repo       storage.Repository
	generation atomic.Uint64
}

// New returns a Session over a migrated storage database.
func New(db *sql.DB) *Session {
	return &Session{db: db, repo: storage.NewSQLiteRepository(db)}
}

// Token returns the stored bearer token, or "" when there is none.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// User returns the stored profile, or nil when there is none.
func (s *Session) User(ctx context.Context) (*models.User, error) {
	v, err := s.repo.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 || string(v) == "null" {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

// Save persists token and user atomically and starts a new generation.
func (s *Session) Save(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, raw)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.generation.Add(1)
	return nil
}

// SetToken replaces the token of the current session (refresh).
func (s *Session) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenStorageKey, []byte(token))
}

// Clear removes everything persisted for the session, token and user
// included. The store holds nothing else.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Keys lists the persisted keys in sorted order.
func (s *Session) Keys(ctx context.Context) ([]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session keys: %w", err)
	}
	keys := slices.Collect(maps.Keys(all))
	slices.Sort(keys)
	return keys, nil
}

// Generation identifies the current session. It only grows.
func (s *Session) Generation() uint64 {
	return s.generation.Load()
}
