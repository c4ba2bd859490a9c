// Package registry keeps the client-side projections of remote collections.
//
// A projection is never authoritative: it is replaced wholesale by a reload
// and never patched locally. A failed reload leaves the previous contents
// in place so a transient read error never blanks the screen.
package registry

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/models"
)

// QuoteSource fetches the moderation collections.
type QuoteSource interface {
	ListActiveQuotes(ctx context.Context) ([]models.Quote, error)
	ListDeletedQuotes(ctx context.Context) ([]models.Quote, error)
}

// Collection names a projection a quote may belong to.
type Collection string

const (
	CollectionActive  Collection = "active"
	CollectionDeleted Collection = "deleted"
)

// Quotes projects the active and deleted collections. Order is whatever
// the remote store returned.
type Quotes struct {
	src QuoteSource
	log logging.Logger

	mu      sync.RWMutex
	active  []models.Quote
	deleted []models.Quote
}

func NewQuotes(src QuoteSource, log logging.Logger) *Quotes {
	return &Quotes{src: src, log: log}
}

// LoadActive replaces the active sequence. Records carrying a deletion time
// are skipped.
func (r *Quotes) LoadActive(ctx context.Context) error {
	fetched, err := r.src.ListActiveQuotes(ctx)
	if err != nil {
		return fmt.Errorf("load active quotes: %w", err)
	}
	kept := r.keep(ctx, fetched, CollectionActive)

	r.mu.Lock()
	r.active = kept
	r.mu.Unlock()
	return nil
}

// LoadDeleted replaces the deleted sequence. Records without a deletion
// time are skipped.
func (r *Quotes) LoadDeleted(ctx context.Context) error {
	fetched, err := r.src.ListDeletedQuotes(ctx)
	if err != nil {
		return fmt.Errorf("load deleted quotes: %w", err)
	}
	kept := r.keep(ctx, fetched, CollectionDeleted)

	r.mu.Lock()
	r.deleted = kept
	r.mu.Unlock()
	return nil
}

func (r *Quotes) keep(ctx context.Context, fetched []models.Quote, c Collection) []models.Quote {
	kept := make([]models.Quote, 0, len(fetched))
	for _, q := range fetched {
		if (c == CollectionActive) != q.Lifecycle.IsActive() {
			r.log.Warn(ctx, "skipping quote listed in the wrong collection",
				"quote_id", q.ID, "collection", c, "state", q.Lifecycle.State())
			continue
		}
		kept = append(kept, q)
	}
	return kept
}

func (r *Quotes) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}

func (r *Quotes) CountDeleted() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.deleted)
}

// Active returns a snapshot of the active sequence.
func (r *Quotes) Active() []models.Quote {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.active)
}

// Deleted returns a snapshot of the deleted sequence.
func (r *Quotes) Deleted() []models.Quote {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.deleted)
}

// Find looks id up in both sequences.
func (r *Quotes) Find(id int64) (models.Quote, Collection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match := func(q models.Quote) bool { return q.ID == id }
	if i := slices.IndexFunc(r.active, match); i >= 0 {
		return r.active[i], CollectionActive, true
	}
	if i := slices.IndexFunc(r.deleted, match); i >= 0 {
		return r.deleted[i], CollectionDeleted, true
	}
	return models.Quote{}, "", false
}
