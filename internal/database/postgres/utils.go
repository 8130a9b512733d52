package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// scanInt reads a single int64 column, mapping a missing row to zero
func scanInt(ctx context.Context, q querier, sql string, args ...any) (int64, error) {
	var v int64
	err := q.QueryRow(ctx, sql, args...).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return v, err
}

// guardedUpdate runs a conditional UPDATE ... RETURNING of one int64. When no
// row matched it falls back to current and reports ok=false.
func guardedUpdate(ctx context.Context, q querier, update, current string, args ...any) (int64, bool, error) {
	var v int64
	err := q.QueryRow(ctx, update, args...).Scan(&v)
	if err == nil {
		return v, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, err
	}

	v, err = scanInt(ctx, q, current, args[:len(args)-1]...)
	return v, false, err
}

func dbErr(op, userID string, err error) error {
	return fmt.Errorf("%w: failed to %s for user %s: %v", domain.ErrDatabaseError, op, userID, err)
}

func checkIDs(userID, itemID string) error {
	if userID == "" {
		return errUserID()
	}
	if itemID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgItemIDEmpty)
	}
	return nil
}

func errUserID() error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidUserID, ErrMsgUserIDEmpty)
}
