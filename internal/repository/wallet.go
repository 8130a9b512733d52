package repository

import "context"

// Wallet is the real-currency balance that chips exchange into
type Wallet interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	Debit(ctx context.Context, userID string, amount int64) (balance int64, ok bool, err error)
}
