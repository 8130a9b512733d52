package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/repository"
)

// Store is the PostgreSQL-backed ledger and wallet
type Store interface {
	repository.Ledger
	repository.Wallet
}

// LedgerRepository implements the ledger for PostgreSQL
type LedgerRepository struct {
	pool *pgxpool.Pool
}

var _ Store = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) (*LedgerRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPoolNil)
	}
	return &LedgerRepository{pool: pool}, nil
}

func (r *LedgerRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *LedgerRepository) GetChips(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	bal, err := scanInt(ctx, r.pool, qGetChips, userID)
	if err != nil {
		return 0, dbErr("get chips", userID, err)
	}
	return bal, nil
}

func (r *LedgerRepository) AddChips(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	var bal int64
	if err := r.pool.QueryRow(ctx, qAddChips, userID, amount).Scan(&bal); err != nil {
		return 0, dbErr("add chips", userID, err)
	}
	return bal, nil
}

func (r *LedgerRepository) DebitChips(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	if userID == "" {
		return 0, false, errUserID()
	}
	bal, ok, err := guardedUpdate(ctx, r.pool, qDebitChips, qGetChips, userID, amount)
	if err != nil {
		return 0, false, dbErr("debit chips", userID, err)
	}
	return bal, ok, nil
}

func (r *LedgerRepository) GetStats(ctx context.Context, userID string) (*domain.CasinoStats, error) {
	if userID == "" {
		return nil, errUserID()
	}

	stats := &domain.CasinoStats{}
	err := r.pool.QueryRow(ctx, qGetStats, userID).
		Scan(&stats.GamesPlayed, &stats.TotalBets, &stats.Winnings, &stats.Losses)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, dbErr("get stats", userID, err)
	}
	return stats, nil
}

func (r *LedgerRepository) PlaceBet(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	if userID == "" {
		return 0, false, errUserID()
	}

	var (
		bal int64
		ok  bool
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		bal, ok, err = guardedUpdate(ctx, tx, qDebitChips, qGetChips, userID, amount)
		if err != nil || !ok {
			return err
		}
		_, err = tx.Exec(ctx, qRecordBet, userID, amount)
		return err
	})
	if err != nil {
		return 0, false, dbErr("place bet", userID, err)
	}
	return bal, ok, nil
}

func (r *LedgerRepository) SettleWin(ctx context.Context, userID string, win int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}

	var bal int64
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, qAddWinnings, userID, win); err != nil {
			return err
		}
		return tx.QueryRow(ctx, qAddChips, userID, win).Scan(&bal)
	})
	if err != nil {
		return 0, dbErr("settle win", userID, err)
	}
	return bal, nil
}

func (r *LedgerRepository) SettleLoss(ctx context.Context, userID string, bet int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}

	var bal int64
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, qAddLosses, userID, bet); err != nil {
			return err
		}
		var err error
		bal, err = scanInt(ctx, tx, qGetChips, userID)
		return err
	})
	if err != nil {
		return 0, dbErr("settle loss", userID, err)
	}
	return bal, nil
}

func (r *LedgerRepository) GetItems(ctx context.Context, userID string) (map[string]*domain.InventoryItem, error) {
	if userID == "" {
		return nil, errUserID()
	}

	rows, err := r.pool.Query(ctx, qGetItems, userID)
	if err != nil {
		return nil, dbErr("list items", userID, err)
	}
	defer rows.Close()

	items := make(map[string]*domain.InventoryItem)
	for rows.Next() {
		item := &domain.InventoryItem{}
		if err := rows.Scan(&item.ItemID, &item.Quantity, &item.LastUsed); err != nil {
			return nil, dbErr("scan item", userID, err)
		}
		items[item.ItemID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list items", userID, err)
	}
	return items, nil
}

func (r *LedgerRepository) GetItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return nil, err
	}

	item := &domain.InventoryItem{}
	err := r.pool.QueryRow(ctx, qGetItem, userID, itemID).Scan(&item.ItemID, &item.Quantity, &item.LastUsed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbErr("get item", userID, err)
	}
	return item, nil
}

func (r *LedgerRepository) AddItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, err
	}
	var qty int64
	if err := r.pool.QueryRow(ctx, qAddItem, userID, itemID, quantity).Scan(&qty); err != nil {
		return 0, dbErr("add item", userID, err)
	}
	return qty, nil
}

func (r *LedgerRepository) RemoveItem(ctx context.Context, userID, itemID string, quantity int64) (int64, bool, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, false, err
	}

	var (
		remaining int64
		ok        bool
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var lastUsed *int64
		err := tx.QueryRow(ctx, qRemoveItem, userID, itemID, quantity).Scan(&remaining, &lastUsed)
		if errors.Is(err, pgx.ErrNoRows) {
			remaining, err = scanInt(ctx, tx, qItemQuantity, userID, itemID)
			return err
		}
		if err != nil {
			return err
		}
		ok = true
		if remaining == 0 && lastUsed == nil {
			_, err = tx.Exec(ctx, qDeleteEmptyItem, userID, itemID)
		}
		return err
	})
	if err != nil {
		return 0, false, dbErr("remove item", userID, err)
	}
	return remaining, ok, nil
}

func (r *LedgerRepository) UseItem(ctx context.Context, userID, itemID string, usedAtMs int64, consume bool) (int64, bool, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, false, err
	}

	var dec int64
	if consume {
		dec = 1
	}

	var remaining int64
	err := r.pool.QueryRow(ctx, qUseItem, userID, itemID, usedAtMs, dec).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		current, err := scanInt(ctx, r.pool, qItemQuantity, userID, itemID)
		if err != nil {
			return 0, false, dbErr("use item", userID, err)
		}
		return current, false, nil
	}
	if err != nil {
		return 0, false, dbErr("use item", userID, err)
	}
	return remaining, true, nil
}

func (r *LedgerRepository) PurchaseItem(ctx context.Context, userID, itemID string, quantity, cost int64) (int64, bool, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, false, err
	}

	var (
		bal int64
		ok  bool
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		bal, ok, err = guardedUpdate(ctx, tx, qDebitChips, qGetChips, userID, cost)
		if err != nil || !ok {
			return err
		}
		_, err = tx.Exec(ctx, qAddItem, userID, itemID, quantity)
		return err
	})
	if err != nil {
		return 0, false, dbErr("purchase item", userID, err)
	}
	return bal, ok, nil
}

func (r *LedgerRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	bal, err := scanInt(ctx, r.pool, qGetBalance, userID)
	if err != nil {
		return 0, dbErr("get balance", userID, err)
	}
	return bal, nil
}

func (r *LedgerRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	var bal int64
	if err := r.pool.QueryRow(ctx, qCredit, userID, amount).Scan(&bal); err != nil {
		return 0, dbErr("credit wallet", userID, err)
	}
	return bal, nil
}

func (r *LedgerRepository) Debit(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	if userID == "" {
		return 0, false, errUserID()
	}
	bal, ok, err := guardedUpdate(ctx, r.pool, qDebit, qGetBalance, userID, amount)
	if err != nil {
		return 0, false, dbErr("debit wallet", userID, err)
	}
	return bal, ok, nil
}

// inTx runs fn in a transaction, committing only when fn succeeds
func (r *LedgerRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}
