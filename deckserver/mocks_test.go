package deckserver_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"magecards/deck"
)

type MockDeckRepo struct {
	mock.Mock
}

func (m *MockDeckRepo) ListDecks(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockDeckRepo) GetDeck(ctx context.Context, name string) (deck.Deck, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(deck.Deck), args.Error(1)
}

func (m *MockDeckRepo) CreateDeck(ctx context.Context, d deck.Deck) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeckRepo) SaveDeck(ctx context.Context, d deck.Deck) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeckRepo) DeleteDeck(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockDeckRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Compare(hash, password string) (bool, error) {
	args := m.Called(hash, password)
	return args.Bool(0), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(editor string, now time.Time) (string, error) {
	args := m.Called(editor, now)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type seqIdGen struct{ n int }

func (g *seqIdGen) Generate(prefix string) string {
	g.n++
	return prefix + string(rune('0'+g.n))
}
