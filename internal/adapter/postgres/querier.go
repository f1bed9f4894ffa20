package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier runs statements. *pgxpool.Pool, pgx.Tx and pgxmock pools satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner starts transactions.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

// QuerierFromCtx returns the transaction bound to ctx by TxManager, or db.
// Repositories call it on every statement so that service-level
// transactions span several repositories.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx := txFromCtx(ctx); tx != nil {
		return tx
	}
	return db
}

// InTx reports whether ctx is bound to a transaction.
func InTx(ctx context.Context) bool {
	return txFromCtx(ctx) != nil
}

func txFromCtx(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}
