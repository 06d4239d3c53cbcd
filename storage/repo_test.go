package storage_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magecards/deck"
	"magecards/domain"
)

type deckRepo interface {
	ListDecks(ctx context.Context) ([]string, error)
	GetDeck(ctx context.Context, name string) (deck.Deck, error)
	CreateDeck(ctx context.Context, d deck.Deck) error
	SaveDeck(ctx context.Context, d deck.Deck) error
	DeleteDeck(ctx context.Context, name string) error
}

func sampleDeck(name string) deck.Deck {
	d := deck.New(name, "Sample "+name, "pl")
	d.Meta.Tags = []string{"test"}
	d.Cards.White = []deck.WhiteCard{
		deck.NewWhiteCard("w-1", "kot"),
		deck.NewWhiteCard("w-2", "pies"),
	}
	d.Cards.Black = []deck.BlackCard{
		deck.NewBlackCard("b-1", "Kto zjadł ____?"),
		deck.NewBlackCard("b-2", "<M> i <B> to para."),
	}
	return d
}

// exerciseRepo runs the behaviour every deck store must share.
func exerciseRepo(t *testing.T, repo deckRepo) {
	ctx := context.Background()

	t.Run("CreateDeck", func(t *testing.T) {
		err := repo.CreateDeck(ctx, sampleDeck("base"))
		assert.NoError(t, err)
	})

	t.Run("CreateDeck_Duplicate", func(t *testing.T) {
		err := repo.CreateDeck(ctx, sampleDeck("base"))
		assert.ErrorIs(t, err, domain.ErrDuplicateDeck)
	})

	t.Run("CreateDeck_InvalidName", func(t *testing.T) {
		err := repo.CreateDeck(ctx, sampleDeck("../escape"))
		assert.ErrorIs(t, err, domain.ErrInvalidDeckName)
	})

	t.Run("GetDeck", func(t *testing.T) {
		got, err := repo.GetDeck(ctx, "base")
		require.NoError(t, err)
		if diff := cmp.Diff(sampleDeck("base"), got); diff != "" {
			t.Errorf("stored deck differs (-want +got):\n%s", diff)
		}
		assert.Equal(t, 2, got.Cards.Black[1].Pick)
	})

	t.Run("GetDeck_NotFound", func(t *testing.T) {
		_, err := repo.GetDeck(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrDeckNotFound)
	})

	t.Run("SaveDeck_Replaces", func(t *testing.T) {
		d := sampleDeck("base")
		d.Meta.DisplayName = "Renamed"
		d.Cards.White = d.Cards.White[:1]
		require.NoError(t, repo.SaveDeck(ctx, d))

		got, err := repo.GetDeck(ctx, "base")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Meta.DisplayName)
		assert.Len(t, got.Cards.White, 1)
	})

	t.Run("SaveDeck_Creates", func(t *testing.T) {
		require.NoError(t, repo.SaveDeck(ctx, sampleDeck("alpha")))

		names, err := repo.ListDecks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "base"}, names)
	})

	t.Run("DeleteDeck", func(t *testing.T) {
		require.NoError(t, repo.DeleteDeck(ctx, "alpha"))

		_, err := repo.GetDeck(ctx, "alpha")
		assert.ErrorIs(t, err, domain.ErrDeckNotFound)
	})

	t.Run("DeleteDeck_NotFound", func(t *testing.T) {
		err := repo.DeleteDeck(ctx, "alpha")
		assert.ErrorIs(t, err, domain.ErrDeckNotFound)
	})
}
