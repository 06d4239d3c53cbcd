package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"magecards/deck"
	"magecards/domain"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresRepo{pool: pool}, nil
}

func (r *PostgresRepo) Close() {
	r.pool.Close()
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresRepo) ListDecks(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT name FROM decks ORDER BY name")
	if err != nil {
		return nil, wrapPgError(err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapPgError(err)
	}
	return names, nil
}

func (r *PostgresRepo) GetDeck(ctx context.Context, name string) (deck.Deck, error) {
	var document []byte
	row := r.pool.QueryRow(ctx, "SELECT document FROM decks WHERE name = $1", name)
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deck.Deck{}, domain.ErrDeckNotFound
		}
		return deck.Deck{}, wrapPgError(err)
	}
	return deck.Unmarshal(document)
}

// CreateDeck stores a new deck and fails with ErrDuplicateDeck when the name
// is taken.
func (r *PostgresRepo) CreateDeck(ctx context.Context, d deck.Deck) error {
	document, err := encodeForStore(d)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		"INSERT INTO decks(name, display_name, language, document) VALUES($1, $2, $3, $4)",
		d.Meta.Name, d.Meta.DisplayName, d.Meta.Language, document)
	if err != nil {
		var pgErr *pgconn.PgError
		// "23505" is the PostgreSQL error code for unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateDeck
		}
		return wrapPgError(err)
	}
	return nil
}

// SaveDeck creates or replaces the deck named d.Meta.Name.
func (r *PostgresRepo) SaveDeck(ctx context.Context, d deck.Deck) error {
	document, err := encodeForStore(d)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO decks(name, display_name, language, document) VALUES($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			language = EXCLUDED.language,
			document = EXCLUDED.document,
			updated_at = now()`,
		d.Meta.Name, d.Meta.DisplayName, d.Meta.Language, document)
	if err != nil {
		return wrapPgError(err)
	}
	return nil
}

func (r *PostgresRepo) DeleteDeck(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM decks WHERE name = $1", name)
	if err != nil {
		return wrapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeckNotFound
	}
	return nil
}

func wrapPgError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
}
