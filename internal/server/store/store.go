// Package store is the in-memory data layer of the reference server.
//
// Quotes move through the lifecycle only via models.Lifecycle.Apply. A
// purged quote is removed outright, so any later command on its id sees
// not-found.
package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/models"
	"github.com/dmitrijs2005/youquote/internal/server/auth"
)

type account struct {
	user models.User
	hash []byte
}

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users       map[int64]*account
	quotes      map[int64]*models.Quote
	nextUserID  int64
	nextQuoteID int64
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		users:  make(map[int64]*account),
		quotes: make(map[int64]*models.Quote),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers an account. Emails are unique, case-insensitively.
func (s *Store) CreateUser(_ context.Context, name, email, password string, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: %q", common.ErrorInvalidRole, role)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email = normalizeEmail(email)
	for _, a := range s.users {
		if a.user.Email == email {
			return models.User{}, common.ErrorEmailTaken
		}
	}

	s.nextUserID++
	now := s.now().UTC()
	u := models.User{
		ID:        s.nextUserID,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = &account{user: u, hash: hash}
	return u, nil
}

// Authenticate returns the account matching email and password.
func (s *Store) Authenticate(_ context.Context, email, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = normalizeEmail(email)
	for _, a := range s.users {
		if a.user.Email == email && auth.CheckPassword(a.hash, password) {
			return a.user, nil
		}
	}
	return models.User{}, common.ErrInvalidLogin
}

func (s *Store) User(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.users[id]
	if !ok {
		return models.User{}, common.ErrorNotFound
	}
	return a.user, nil
}

// Users lists every account ordered by id.
func (s *Store) Users(_ context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, a := range s.users {
		out = append(out, a.user)
	}
	slices.SortFunc(out, func(a, b models.User) int { return cmpID(a.ID, b.ID) })
	return out
}

func (s *Store) SetRole(_ context.Context, id int64, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", common.ErrorInvalidRole, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.user.Role = role
	a.user.UpdatedAt = s.now().UTC()
	return nil
}

// DeleteUser removes an account together with every quote it owns.
func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(s.users, id)
	for qid, q := range s.quotes {
		if q.UserID == id {
			delete(s.quotes, qid)
		}
	}
	return nil
}

// AddQuote stores an active quote owned by userID.
func (s *Store) AddQuote(_ context.Context, userID int64, content, author string, popularity int) (models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return models.Quote{}, common.ErrorNotFound
	}

	s.nextQuoteID++
	now := s.now().UTC()
	q := &models.Quote{
		ID:              s.nextQuoteID,
		Content:         content,
		Author:          author,
		Length:          utf8.RuneCountInString(content),
		PopularityCount: popularity,
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
		Lifecycle:       models.Active(),
	}
	s.quotes[q.ID] = q
	return s.withUser(*q), nil
}

// withUser attaches the owner. Callers hold the lock.
func (s *Store) withUser(q models.Quote) models.Quote {
	if a, ok := s.users[q.UserID]; ok {
		u := a.user
		q.User = &u
	}
	return q
}

// Quote returns an active quote.
func (s *Store) Quote(_ context.Context, id int64) (models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[id]
	if !ok || !q.Lifecycle.IsActive() {
		return models.Quote{}, common.ErrorNotFound
	}
	return s.withUser(*q), nil
}

func (s *Store) ActiveQuotes(_ context.Context) []models.Quote {
	return s.list(func(q *models.Quote) bool { return q.Lifecycle.IsActive() })
}

func (s *Store) DeletedQuotes(_ context.Context) []models.Quote {
	return s.list(func(q *models.Quote) bool { return q.Lifecycle.IsDeleted() })
}

func (s *Store) list(keep func(*models.Quote) bool) []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		if keep(q) {
			out = append(out, s.withUser(*q))
		}
	}
	slices.SortFunc(out, func(a, b models.Quote) int { return cmpID(a.ID, b.ID) })
	return out
}

// Authors lists the accounts owning at least one active quote, each with
// those quotes.
func (s *Store) Authors(ctx context.Context) []models.Author {
	active := s.ActiveQuotes(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	byUser := make(map[int64][]models.Quote)
	for _, q := range active {
		q.User = nil
		byUser[q.UserID] = append(byUser[q.UserID], q)
	}

	out := make([]models.Author, 0, len(byUser))
	for id, qs := range byUser {
		a, ok := s.users[id]
		if !ok {
			continue
		}
		out = append(out, models.Author{User: a.user, Quotes: qs})
	}
	slices.SortFunc(out, func(a, b models.Author) int { return cmpID(a.ID, b.ID) })
	return out
}

// AuthorQuotes returns the active quotes owned by account id.
func (s *Store) AuthorQuotes(ctx context.Context, id int64) (models.AuthorQuotes, error) {
	u, err := s.User(ctx, id)
	if err != nil {
		return models.AuthorQuotes{}, err
	}

	res := models.AuthorQuotes{Author: u.Name, Quotes: []models.Quote{}}
	for _, q := range s.ActiveQuotes(ctx) {
		if q.UserID == id {
			res.Quotes = append(res.Quotes, q)
		}
	}
	return res, nil
}

// Transition applies t to one quote. A transition the quote's state does
// not allow, or an unknown id, yields common.ErrorNotFound.
func (s *Store) Transition(_ context.Context, id int64, t models.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return common.ErrorNotFound
	}
	return s.apply(q, t)
}

// TransitionDeleted applies t to every deleted quote and returns how many
// were affected.
func (s *Store) TransitionDeleted(_ context.Context, t models.Transition) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, q := range s.quotes {
		if !q.Lifecycle.IsDeleted() {
			continue
		}
		if err := s.apply(q, t); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// apply runs under the write lock.
func (s *Store) apply(q *models.Quote, t models.Transition) error {
	now := s.now().UTC()
	next, err := q.Lifecycle.Apply(t, now)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorNotFound, err)
	}
	if next.IsPurged() {
		delete(s.quotes, q.ID)
		return nil
	}
	q.Lifecycle = next
	q.UpdatedAt = now
	return nil
}

func cmpID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
