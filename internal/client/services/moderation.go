package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/client/client"
	"github.com/dmitrijs2005/youquote/internal/client/registry"
	"github.com/dmitrijs2005/youquote/internal/client/session"
	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/models"
	"github.com/dmitrijs2005/youquote/internal/validation"
)

// ReconcileError reports a command the remote store accepted whose
// follow-up reload failed. The registries still hold their previous
// contents.
type ReconcileError struct {
	Action capability.Action
	Err    error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("%s applied, reload failed: %v", e.Action, e.Err)
}

func (e *ReconcileError) Unwrap() error { return e.Err }

func (e *ReconcileError) UserMessage() string {
	return fmt.Sprintf("Done (%s), but refreshing the list failed: %s",
		e.Action, client.UserMessage(e.Err))
}

// ModerationService executes admin commands.
//
// Every command checks the admin capability first and makes no network
// call without it. An accepted command is followed by the reloads of the
// collections it touches; the reloads of one command run concurrently.
// Lifecycle preconditions are left to the remote store.
type ModerationService interface {
	LoadDashboard(ctx context.Context) error
	ReloadQuotes(ctx context.Context) error
	ReloadUsers(ctx context.Context) error

	Delete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Purge(ctx context.Context, id int64) error
	RestoreAll(ctx context.Context) error
	PurgeAll(ctx context.Context) error

	ChangeRole(ctx context.Context, userID int64, role string) error
	DeleteUser(ctx context.Context, userID int64) error
}

type moderationService struct {
	client   client.Client
	session  session.Reader
	quotes   *registry.Quotes
	users    *registry.Users
	validate *validation.Validator
	log      logging.Logger
}

func NewModerationService(c client.Client, s session.Reader, quotes *registry.Quotes,
	users *registry.Users, log logging.Logger) ModerationService {
	return &moderationService{
		client:   c,
		session:  s,
		quotes:   quotes,
		users:    users,
		validate: validation.New(),
		log:      log,
	}
}

type loader func(ctx context.Context) error

func (m *moderationService) require(ctx context.Context, a capability.Action) error {
	if err := capability.FromSession(m.session).Require(a); err != nil {
		m.log.Warn(ctx, "moderation command refused", "action", a, "role", m.session.Role())
		return err
	}
	return nil
}

func (m *moderationService) reload(ctx context.Context, loaders ...loader) error {
	var g errgroup.Group
	for _, load := range loaders {
		g.Go(func() error {
			if err := load(ctx); err != nil {
				m.log.Warn(ctx, "reload failed", "error", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// run performs one remote mutation and then the reconciliation reloads.
func (m *moderationService) run(ctx context.Context, a capability.Action, mutate loader, loaders ...loader) error {
	if err := m.require(ctx, a); err != nil {
		return err
	}
	if err := mutate(ctx); err != nil {
		m.log.Warn(ctx, "moderation command failed", "action", a, "error", err)
		return fmt.Errorf("%s: %w", a, err)
	}
	if err := m.reload(ctx, loaders...); err != nil {
		return &ReconcileError{Action: a, Err: err}
	}
	m.log.Info(ctx, "moderation command applied", "action", a)
	return nil
}

func (m *moderationService) LoadDashboard(ctx context.Context) error {
	if err := m.require(ctx, capability.ActionListQuotes); err != nil {
		return err
	}
	return m.reload(ctx, m.users.Load, m.quotes.LoadActive, m.quotes.LoadDeleted)
}

func (m *moderationService) ReloadQuotes(ctx context.Context) error {
	if err := m.require(ctx, capability.ActionListQuotes); err != nil {
		return err
	}
	return m.reload(ctx, m.quotes.LoadActive, m.quotes.LoadDeleted)
}

func (m *moderationService) ReloadUsers(ctx context.Context) error {
	if err := m.require(ctx, capability.ActionListUsers); err != nil {
		return err
	}
	return m.reload(ctx, m.users.Load)
}

func (m *moderationService) Delete(ctx context.Context, id int64) error {
	return m.run(ctx, capability.ActionDeleteQuote,
		func(ctx context.Context) error { return m.client.DeleteQuote(ctx, id) },
		m.quotes.LoadActive, m.quotes.LoadDeleted)
}

func (m *moderationService) Restore(ctx context.Context, id int64) error {
	return m.run(ctx, capability.ActionRestoreQuote,
		func(ctx context.Context) error { return m.client.RestoreQuote(ctx, id) },
		m.quotes.LoadActive, m.quotes.LoadDeleted)
}

func (m *moderationService) Purge(ctx context.Context, id int64) error {
	return m.run(ctx, capability.ActionPurgeQuote,
		func(ctx context.Context) error { return m.client.PurgeQuote(ctx, id) },
		m.quotes.LoadDeleted)
}

func (m *moderationService) RestoreAll(ctx context.Context) error {
	return m.run(ctx, capability.ActionRestoreAll, m.client.RestoreAllQuotes,
		m.quotes.LoadActive, m.quotes.LoadDeleted)
}

func (m *moderationService) PurgeAll(ctx context.Context) error {
	return m.run(ctx, capability.ActionPurgeAll, m.client.PurgeAllQuotes,
		m.quotes.LoadDeleted)
}

func (m *moderationService) ChangeRole(ctx context.Context, userID int64, role string) error {
	if err := m.require(ctx, capability.ActionChangeRole); err != nil {
		return err
	}
	if err := m.validate.Validate(models.RoleChange{Role: models.Role(role)}); err != nil {
		return err
	}
	return m.run(ctx, capability.ActionChangeRole,
		func(ctx context.Context) error { return m.client.ChangeUserRole(ctx, userID, models.Role(role)) },
		m.users.Load)
}

func (m *moderationService) DeleteUser(ctx context.Context, userID int64) error {
	return m.run(ctx, capability.ActionDeleteUser,
		func(ctx context.Context) error { return m.client.DeleteUser(ctx, userID) },
		m.users.Load)
}
