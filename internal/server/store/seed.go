package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/youquote/internal/models"
)

// Seed accounts. Development only.
const (
	SeedAdminEmail = "admin@example.com"
	SeedUserEmail  = "user@example.com"
	SeedModEmail   = "moderator@example.com"
	SeedPassword   = "password123"
)

var seedQuotes = []struct {
	owner      string
	content    string
	author     string
	popularity int
}{
	{SeedUserEmail, "The only way to do great work is to love what you do.", "Steve Jobs", 42},
	{SeedUserEmail, "Simplicity is prerequisite for reliability.", "Edsger W. Dijkstra", 17},
	{SeedModEmail, "Talk is cheap. Show me the code.", "Linus Torvalds", 30},
	{SeedAdminEmail, "Premature optimization is the root of all evil.", "Donald Knuth", 25},
}

// Seed fills an empty store with an admin, a moderator, a user and a few
// quotes, the last of which is soft-deleted.
func (s *Store) Seed(ctx context.Context) error {
	ids := make(map[string]int64, 3)
	for _, acc := range []struct {
		name, email string
		role        models.Role
	}{
		{"Admin", SeedAdminEmail, models.RoleAdmin},
		{"Moderator", SeedModEmail, models.RoleModerator},
		{"User", SeedUserEmail, models.RoleUser},
	} {
		u, err := s.CreateUser(ctx, acc.name, acc.email, SeedPassword, acc.role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", acc.email, err)
		}
		ids[acc.email] = u.ID
	}

	var last int64
	for _, sq := range seedQuotes {
		q, err := s.AddQuote(ctx, ids[sq.owner], sq.content, sq.author, sq.popularity)
		if err != nil {
			return fmt.Errorf("seed quote: %w", err)
		}
		last = q.ID
	}

	if err := s.Transition(ctx, last, models.TransitionDelete); err != nil {
		return fmt.Errorf("seed deleted quote: %w", err)
	}
	return nil
}
