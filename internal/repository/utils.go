package repository

import (
	"context"

	"github.com/osse101/FichasBot_Go/internal/logger"
)

// ErrMsgTxClosed is the driver message for rolling back a finished transaction
const ErrMsgTxClosed = "tx is closed"

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if err.Error() != ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
