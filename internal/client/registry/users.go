package registry

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/models"
)

type UserSource interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Users projects the administrator's user list.
type Users struct {
	src UserSource
	log logging.Logger

	mu    sync.RWMutex
	users []models.User
}

func NewUsers(src UserSource, log logging.Logger) *Users {
	return &Users{src: src, log: log}
}

// Load replaces the user list. Accounts with a role outside the enumerated
// set are never shown.
func (r *Users) Load(ctx context.Context) error {
	fetched, err := r.src.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	kept := make([]models.User, 0, len(fetched))
	for _, u := range fetched {
		if !u.Role.Valid() {
			r.log.Warn(ctx, "skipping user with unknown role", "user_id", u.ID, "role", u.Role)
			continue
		}
		kept = append(kept, u)
	}

	r.mu.Lock()
	r.users = kept
	r.mu.Unlock()
	return nil
}

func (r *Users) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *Users) All() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users)
}
