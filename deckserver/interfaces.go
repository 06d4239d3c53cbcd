package deckserver

import (
	"context"
	"time"

	"magecards/deck"
)

type DeckRepo interface {
	ListDecks(ctx context.Context) ([]string, error)
	GetDeck(ctx context.Context, name string) (deck.Deck, error)
	CreateDeck(ctx context.Context, d deck.Deck) error
	SaveDeck(ctx context.Context, d deck.Deck) error
	DeleteDeck(ctx context.Context, name string) error
	Ping(ctx context.Context) error
}

type PasswordHasher interface {
	Compare(hash, password string) (bool, error)
}

type TokenManager interface {
	Generate(editor string, now time.Time) (string, error)
	Verify(token string) (string, error)
}
