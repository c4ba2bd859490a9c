// Package capability derives what the current caller may see and do.
//
// Capabilities are computed from the session on every call and never
// cached, so a login or logout is reflected by the very next render.
package capability

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/youquote/internal/client/session"
	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/models"
)

// Route is a navigation target of the console.
type Route string

const (
	RouteHome        Route = "home"
	RouteRegister    Route = "register"
	RouteLogin       Route = "login"
	RouteVerifyEmail Route = "verify-email"
	RouteQuotes      Route = "quotes"
	RouteAuthors     Route = "authors"
	RouteDashboard   Route = "dashboard"
)

// Action is a moderation operation.
type Action string

const (
	ActionDeleteQuote  Action = "delete-quote"
	ActionRestoreQuote Action = "restore-quote"
	ActionPurgeQuote   Action = "purge-quote"
	ActionRestoreAll   Action = "restore-all"
	ActionPurgeAll     Action = "purge-all"
	ActionListUsers    Action = "list-users"
	ActionChangeRole   Action = "change-role"
	ActionDeleteUser   Action = "delete-user"
	ActionListQuotes   Action = "list-moderation-quotes"
)

var (
	anonymousRoutes = []Route{RouteHome, RouteRegister, RouteLogin}
	memberRoutes    = []Route{RouteHome, RouteQuotes, RouteAuthors}
	adminRoutes     = []Route{RouteHome, RouteQuotes, RouteAuthors, RouteDashboard}

	adminActions = []Action{
		ActionDeleteQuote, ActionRestoreQuote, ActionPurgeQuote,
		ActionRestoreAll, ActionPurgeAll,
		ActionListUsers, ActionChangeRole, ActionDeleteUser,
		ActionListQuotes,
	}
)

// Set is the outcome of gating for one caller.
type Set struct {
	authenticated bool
	role          models.Role
	routes        []Route
	actions       []Action
}

// For computes the capabilities of a caller. Moderator has no moderation
// rights of its own here; it navigates like a regular user.
func For(authenticated bool, role models.Role) Set {
	if !authenticated {
		return Set{role: models.RoleUser, routes: anonymousRoutes}
	}
	if role == models.RoleAdmin {
		return Set{authenticated: true, role: role, routes: adminRoutes, actions: adminActions}
	}
	if !role.Valid() {
		role = models.RoleUser
	}
	return Set{authenticated: true, role: role, routes: memberRoutes}
}

// FromSession computes the capabilities of the session's current caller.
func FromSession(s session.Reader) Set {
	_, ok := s.Credential()
	return For(ok, s.Role())
}

func (s Set) Authenticated() bool { return s.authenticated }

func (s Set) Role() models.Role { return s.role }

// Routes returns the reachable navigation targets in menu order.
func (s Set) Routes() []Route { return slices.Clone(s.routes) }

func (s Set) CanNavigate(r Route) bool {
	if r == RouteVerifyEmail {
		return !s.authenticated
	}
	return slices.Contains(s.routes, r)
}

func (s Set) Can(a Action) bool { return slices.Contains(s.actions, a) }

// Require returns an error matching common.ErrForbidden when a is not
// permitted.
func (s Set) Require(a Action) error {
	if s.Can(a) {
		return nil
	}
	return fmt.Errorf("%w: %s requires the admin role", common.ErrForbidden, a)
}
