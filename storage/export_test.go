package storage

import "github.com/jackc/pgx/v5/pgxpool"

// Pool exposes the connection pool so tests can inspect rows directly.
func (r *PostgresRepo) Pool() *pgxpool.Pool {
	return r.pool
}
