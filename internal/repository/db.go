package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// queryTimeout bounds every single store operation so a stalled
// database surfaces as an error instead of hanging the request.
const queryTimeout = 5 * time.Second

// DB is the subset of *pgxpool.Pool the repositories use. Satisfied by
// pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
