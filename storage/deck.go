// Package storage keeps deck documents on disk, in PostgreSQL or in SQLite.
// Every store holds whole documents keyed by the deck's meta name.
package storage

import (
	"fmt"

	"magecards/deck"
	"magecards/domain"
)

// encodeForStore validates the name and serializes d.
func encodeForStore(d deck.Deck) ([]byte, error) {
	if !deck.ValidName(d.Meta.Name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDeckName, d.Meta.Name)
	}
	return deck.Marshal(d)
}
