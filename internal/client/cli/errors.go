package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/common"
)

// userError is a console-level failure whose text is shown as is.
type userError string

func (e userError) Error() string       { return string(e) }
func (e userError) UserMessage() string { return string(e) }

func usage(s string) error { return userError("Usage: " + s) }

// navError is a refused navigation. It matches common.ErrForbidden.
type navError struct {
	route capability.Route
	set   capability.Set
}

func (e *navError) Error() string {
	return fmt.Sprintf("%v: navigation to %s", common.ErrForbidden, e.route)
}

func (e *navError) Is(target error) bool { return target == common.ErrForbidden }

func (e *navError) UserMessage() string {
	if e.set.Authenticated() && (e.route == capability.RouteLogin || e.route == capability.RouteRegister) {
		return "You are already logged in. Use logout first."
	}
	routes := make([]string, 0, len(e.set.Routes()))
	for _, r := range e.set.Routes() {
		routes = append(routes, string(r))
	}
	return fmt.Sprintf("The %s page is not available. Available: %s.", e.route, strings.Join(routes, ", "))
}
