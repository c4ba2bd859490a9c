package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/youquote/internal/common"
)

// State is the moderation state of a quote.
type State int

const (
	StateActive State = iota
	StateDeleted
	StatePurged
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDeleted:
		return "deleted"
	case StatePurged:
		return "purged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition is a moderation command applied to a single quote.
type Transition string

const (
	TransitionDelete  Transition = "delete"
	TransitionRestore Transition = "restore"
	TransitionPurge   Transition = "purge"
)

// Lifecycle is the tagged moderation state of a quote: Active, Deleted{at}
// or Purged. Only a Deleted lifecycle carries a deletion time. The zero value
// is Active.
type Lifecycle struct {
	state     State
	deletedAt time.Time
}

func Active() Lifecycle { return Lifecycle{state: StateActive} }

func DeletedAt(at time.Time) Lifecycle { return Lifecycle{state: StateDeleted, deletedAt: at} }

func Purged() Lifecycle { return Lifecycle{state: StatePurged} }

func (l Lifecycle) State() State { return l.state }

func (l Lifecycle) IsActive() bool { return l.state == StateActive }

func (l Lifecycle) IsDeleted() bool { return l.state == StateDeleted }

func (l Lifecycle) IsPurged() bool { return l.state == StatePurged }

// DeletedAt returns the deletion time; ok is false unless l is Deleted.
func (l Lifecycle) DeletedAt() (at time.Time, ok bool) {
	if l.state != StateDeleted {
		return time.Time{}, false
	}
	return l.deletedAt, true
}

// Apply returns the lifecycle reached by applying t at the given time.
//
//	Active  -delete->  Deleted
//	Deleted -restore-> Active
//	Deleted -purge->   Purged
//
// Every other pair, including anything applied to Purged, fails with
// common.ErrIllegalTransition.
func (l Lifecycle) Apply(t Transition, now time.Time) (Lifecycle, error) {
	switch {
	case l.state == StateActive && t == TransitionDelete:
		return DeletedAt(now), nil
	case l.state == StateDeleted && t == TransitionRestore:
		return Active(), nil
	case l.state == StateDeleted && t == TransitionPurge:
		return Purged(), nil
	}
	return l, fmt.Errorf("%w: %s on %s quote", common.ErrIllegalTransition, t, l.state)
}
