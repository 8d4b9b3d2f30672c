package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder configured for PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// LockKey takes a transaction-scoped advisory lock on namespace:key. The lock is
// released on commit or rollback. Outside a transaction it is released as soon as
// the statement finishes, so callers run it inside TxManager.RunInTx.
func LockKey(ctx context.Context, q Querier, namespace, key string) error {
	_, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", namespace+":"+key)
	if err != nil {
		return fmt.Errorf("advisory lock %s: %w", namespace, err)
	}
	return nil
}

// Get builds b and scans exactly one row into dst. No rows yields pgx.ErrNoRows.
func Get(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, query, args...)
}

// Select builds b and scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

// Exec builds b, executes it and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count builds b, which must select a single count column, and returns it.
func Count(ctx context.Context, q Querier, b sq.Sqlizer) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Locker takes advisory locks through the transaction carried by ctx.
type Locker struct {
	db Querier
}

// NewLocker creates a Locker that falls back to db outside a transaction.
func NewLocker(db Querier) *Locker {
	return &Locker{db: db}
}

// Lock blocks until the namespace:key lock is held by the current transaction.
func (l *Locker) Lock(ctx context.Context, namespace, key string) error {
	return LockKey(ctx, QuerierFromCtx(ctx, l.db), namespace, key)
}
