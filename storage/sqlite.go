package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"magecards/deck"
	"magecards/domain"
	"magecards/migrations"
)

// SQLiteRepo is a single-file deck store for running without a database
// server.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens (or creates) the database at path and migrates it.
// ":memory:" gives a private in-memory store.
func NewSQLiteRepo(ctx context.Context, path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one connection, so ":memory:" is a single database
	db.SetMaxOpenConns(1)

	if _, err := migrations.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepo) ListDecks(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM decks ORDER BY name")
	if err != nil {
		return nil, wrapSQLiteError(err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapSQLiteError(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSQLiteError(err)
	}
	return names, nil
}

func (r *SQLiteRepo) GetDeck(ctx context.Context, name string) (deck.Deck, error) {
	var document string
	err := r.db.QueryRowContext(ctx, "SELECT document FROM decks WHERE name = ?", name).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return deck.Deck{}, domain.ErrDeckNotFound
		}
		return deck.Deck{}, wrapSQLiteError(err)
	}
	return deck.Unmarshal([]byte(document))
}

func (r *SQLiteRepo) CreateDeck(ctx context.Context, d deck.Deck) error {
	document, err := encodeForStore(d)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO decks(name, display_name, language, document) VALUES(?, ?, ?, ?)",
		d.Meta.Name, d.Meta.DisplayName, d.Meta.Language, string(document))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return domain.ErrDuplicateDeck
		}
		return wrapSQLiteError(err)
	}
	return nil
}

func (r *SQLiteRepo) SaveDeck(ctx context.Context, d deck.Deck) error {
	document, err := encodeForStore(d)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO decks(name, display_name, language, document) VALUES(?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			display_name = excluded.display_name,
			language = excluded.language,
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP`,
		d.Meta.Name, d.Meta.DisplayName, d.Meta.Language, string(document))
	if err != nil {
		return wrapSQLiteError(err)
	}
	return nil
}

func (r *SQLiteRepo) DeleteDeck(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM decks WHERE name = ?", name)
	if err != nil {
		return wrapSQLiteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapSQLiteError(err)
	}
	if n == 0 {
		return domain.ErrDeckNotFound
	}
	return nil
}

func wrapSQLiteError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
}
