package model

import (
	"strings"

	"github.com/google/uuid"
)

// Pool names one of the two lists a card can live in.
type Pool string

const (
	PoolActive  Pool = "active"
	PoolRemoved Pool = "removed"
)

// Card is the domain model for one reorderable entry.
// Treat it as a value: pool flags are set by ForPool, never in place.
type Card struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Badge      string `json:"badge,omitempty"`
	Deletable  bool   `json:"deletable"`
	Insertable bool   `json:"insertable"`
}

// NewCard builds an active card with a fresh id.
func NewCard(title, badge string) Card {
	return ForPool(Card{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
		Badge: strings.TrimSpace(badge),
	}, PoolActive)
}

// Key is the identity used by ordered lists.
func Key(c Card) string { return c.ID }

// ForPool returns a copy of c with the flags for pool p.
func ForPool(c Card, p Pool) Card {
	c.Deletable = p == PoolActive
	c.Insertable = p == PoolRemoved
	return c
}

// Pool reports which pool the flags describe.
func (c Card) Pool() Pool {
	if c.Insertable && !c.Deletable {
		return PoolRemoved
	}
	return PoolActive
}
