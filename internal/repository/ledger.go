package repository

import (
	"context"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// Chips is chip-balance persistence. Debits are conditional: when ok is
// false nothing was written and balance is the unchanged current value.
type Chips interface {
	GetChips(ctx context.Context, userID string) (int64, error)
	AddChips(ctx context.Context, userID string, amount int64) (int64, error)
	DebitChips(ctx context.Context, userID string, amount int64) (balance int64, ok bool, err error)
}

// CasinoStats persists the per-user casino aggregate together with the
// chip movements that produce it, so each bet phase is one atomic write.
type CasinoStats interface {
	// GetStats returns the zero value when the user has never bet
	GetStats(ctx context.Context, userID string) (*domain.CasinoStats, error)

	// PlaceBet debits amount if the balance covers it and upserts stats:
	// gamesPlayed+1 and totalBets+amount, or a new record of
	// {1, amount, 0, amount} when none exists.
	PlaceBet(ctx context.Context, userID string, amount int64) (balance int64, ok bool, err error)

	// SettleWin adds win to both winnings and the chip balance
	SettleWin(ctx context.Context, userID string, win int64) (balance int64, err error)

	// SettleLoss adds bet to losses and returns the untouched balance
	SettleLoss(ctx context.Context, userID string, bet int64) (balance int64, err error)
}

// Items persists owned items. Entries that were used keep their lastUsed
// stamp even at quantity zero so effect windows stay queryable.
type Items interface {
	GetItems(ctx context.Context, userID string) (map[string]*domain.InventoryItem, error)
	// GetItem returns nil without error when the user has no entry
	GetItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error)
	AddItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error)
	RemoveItem(ctx context.Context, userID, itemID string, quantity int64) (remaining int64, ok bool, err error)
	// UseItem requires quantity >= 1, stamps lastUsed and decrements when consume is set
	UseItem(ctx context.Context, userID, itemID string, usedAtMs int64, consume bool) (remaining int64, ok bool, err error)
	// PurchaseItem debits cost chips and grants quantity items in one step
	PurchaseItem(ctx context.Context, userID, itemID string, quantity, cost int64) (balance int64, ok bool, err error)
}

// Ledger is the full per-user inventory store
type Ledger interface {
	Chips
	CasinoStats
	Items
	Ping(ctx context.Context) error
}
