package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"magecards/deck"
	"magecards/domain"
)

const (
	deckExt  = ".json"
	whiteExt = ".white"
	blackExt = ".black"
)

// FSRepo keeps each deck as <name>.json in one directory. Legacy
// <name>.white / <name>.black pairs without a JSON twin are listed too and
// imported on read, with ids numbered by line so every read agrees.
type FSRepo struct {
	dir string
	mu  sync.RWMutex
}

func NewFSRepo(dir string) (*FSRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return &FSRepo{dir: dir}, nil
}

func (r *FSRepo) Ping(ctx context.Context) error {
	_, err := os.Stat(r.dir)
	return err
}

func (r *FSRepo) ListDecks(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != deckExt && ext != whiteExt && ext != blackExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if deck.ValidName(name) && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

func (r *FSRepo) GetDeck(ctx context.Context, name string) (deck.Deck, error) {
	if !deck.ValidName(name) {
		return deck.Deck{}, domain.ErrDeckNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, err := os.Open(r.path(name, deckExt))
	if err == nil {
		defer f.Close()
		return deck.Load(f)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return deck.Deck{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return r.importLegacy(name)
}

func (r *FSRepo) importLegacy(name string) (deck.Deck, error) {
	white, errW := r.readOptional(name, whiteExt)
	black, errB := r.readOptional(name, blackExt)
	if err := errors.Join(errW, errB); err != nil {
		return deck.Deck{}, err
	}
	if white == nil && black == nil {
		return deck.Deck{}, domain.ErrDeckNotFound
	}
	return deck.ImportLegacy(name, white, black, deck.NewSequenceGenerator(name))
}

// readOptional returns nil when the file does not exist.
func (r *FSRepo) readOptional(name, ext string) (io.Reader, error) {
	data, err := os.ReadFile(r.path(name, ext))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return bytes.NewReader(data), nil
}

func (r *FSRepo) CreateDeck(ctx context.Context, d deck.Deck) error {
	document, err := encodeForStore(d)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path(d.Meta.Name, deckExt), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return domain.ErrDuplicateDeck
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	defer f.Close()
	if _, err := f.Write(document); err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return nil
}

// SaveDeck writes through a temp file so readers never see half a deck.
func (r *FSRepo) SaveDeck(ctx context.Context, d deck.Deck) error {
	document, err := encodeForStore(d)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, d.Meta.Name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	if err := os.Rename(tmp.Name(), r.path(d.Meta.Name, deckExt)); err != nil {
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return nil
}

func (r *FSRepo) DeleteDeck(ctx context.Context, name string) error {
	if !deck.ValidName(name) {
		return domain.ErrDeckNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := false
	for _, ext := range []string{deckExt, whiteExt, blackExt} {
		err := os.Remove(r.path(name, ext))
		switch {
		case err == nil:
			removed = true
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}
	if !removed {
		return domain.ErrDeckNotFound
	}
	return nil
}

func (r *FSRepo) path(name, ext string) string {
	return filepath.Join(r.dir, name+ext)
}
