// Package models defines the entities exchanged with the YouQuote API and
// the explicit moderation lifecycle of a quote.
package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Quote is a quote as seen by the client.
type Quote struct {
	ID              int64
	Content         string
	Author          string
	Length          int
	PopularityCount int
	UserID          int64
	User            *User
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Lifecycle       Lifecycle
}

var ErrPurgedQuote = errors.New("purged quote has no wire form")

// quoteJSON is the wire shape. The lifecycle travels as deleted_at only.
type quoteJSON struct {
	ID              int64      `json:"id"`
	Content         string     `json:"content"`
	Author          string     `json:"author"`
	Length          int        `json:"length"`
	PopularityCount int        `json:"popularity_count"`
	UserID          int64      `json:"user_id,omitempty"`
	User            *User      `json:"user,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at"`
}

func (q Quote) MarshalJSON() ([]byte, error) {
	if q.Lifecycle.IsPurged() {
		return nil, ErrPurgedQuote
	}
	w := quoteJSON{
		ID:              q.ID,
		Content:         q.Content,
		Author:          q.Author,
		Length:          q.Length,
		PopularityCount: q.PopularityCount,
		UserID:          q.UserID,
		User:            q.User,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
	if at, ok := q.Lifecycle.DeletedAt(); ok {
		w.DeletedAt = &at
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts both a bare quote object and the {"quote": {...}}
// wrapper used by the public listing.
func (q *Quote) UnmarshalJSON(b []byte) error {
	var wrapped struct {
		Quote *quoteJSON `json:"quote"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}

	w := wrapped.Quote
	if w == nil {
		w = &quoteJSON{}
		if err := json.Unmarshal(b, w); err != nil {
			return err
		}
	}

	*q = Quote{
		ID:              w.ID,
		Content:         w.Content,
		Author:          w.Author,
		Length:          w.Length,
		PopularityCount: w.PopularityCount,
		UserID:          w.UserID,
		User:            w.User,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
		Lifecycle:       Active(),
	}
	if w.DeletedAt != nil {
		q.Lifecycle = DeletedAt(*w.DeletedAt)
	}
	return nil
}
