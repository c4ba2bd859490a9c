// Package session holds the caller's bearer credential and cached role.
//
// The Store is the single source of truth for "who is calling": every
// consumer (API client, capability gate, console) reads it through the
// Reader interface, and only SetSession and Clear mutate it. Values are
// mirrored into the local metadata table so a session survives a restart
// but not a logout.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/youquote/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/dbx"
	"github.com/dmitrijs2005/youquote/internal/models"
)

var ErrEmptyCredential = errors.New("empty credential")

// Reader is the read side of the session.
type Reader interface {
	// Credential returns the bearer credential; ok is false for an
	// anonymous session.
	Credential() (credential string, ok bool)
	// Role returns the cached role, RoleUser when unset or anonymous.
	Role() models.Role
}

type Store struct {
	db *sql.DB

	mu         sync.RWMutex
	credential string
	role       models.Role
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load hydrates the store from the metadata table. A persisted role outside
// the enumerated set is ignored.
func (s *Store) Load(ctx context.Context) error {
	pairs, err := metadata.NewSQLiteRepository(s.db).List(ctx, common.SessionCredentialKey, common.SessionRoleKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = string(pairs[common.SessionCredentialKey])
	s.role = models.Role(pairs[common.SessionRoleKey])
	if !s.role.Valid() {
		s.role = ""
	}
	return nil
}

// SetSession persists credential and role atomically and then makes them
// visible to readers.
func (s *Store) SetSession(ctx context.Context, credential string, role models.Role) error {
	if credential == "" {
		return ErrEmptyCredential
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", common.ErrorInvalidRole, role)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionCredentialKey, []byte(credential)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionRoleKey, []byte(role))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.credential = credential
	s.role = role
	s.mu.Unlock()
	return nil
}

// Clear drops the in-memory session first, so gating demotes immediately
// even when the persisted copy cannot be removed.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.role = ""
	s.mu.Unlock()

	// The table holds nothing but session values.
	err := metadata.NewSQLiteRepository(s.db).Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.credential != ""
}

func (s *Store) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.credential == "" || s.role == "" {
		return models.RoleUser
	}
	return s.role
}
