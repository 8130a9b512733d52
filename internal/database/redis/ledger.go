package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/repository"
)

// Config contains configuration for the Redis ledger
type Config struct {
	Client Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgConfigNil)
	}
	if cfg.Client == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgClientNil)
	}
	return nil
}

type ledger struct {
	client Client
}

var (
	_ repository.Ledger = (*ledger)(nil)
	_ repository.Wallet = (*ledger)(nil)
)

// Store is the Redis-backed ledger and wallet
type Store interface {
	repository.Ledger
	repository.Wallet
}

// NewStore creates a Redis-backed ledger
func NewStore(cfg *Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ledger{client: cfg.Client}, nil
}

func (l *ledger) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *ledger) GetChips(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	return l.getInt(ctx, inventoryKey(userID), fieldChips)
}

func (l *ledger) AddChips(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	bal, err := l.client.HIncrBy(ctx, inventoryKey(userID), fieldChips, amount).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to add chips for user %s: %w", userID, err)
	}
	return bal, nil
}

func (l *ledger) DebitChips(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	if userID == "" {
		return 0, false, errUserID()
	}
	return l.runConditional(ctx, conditionalDebitScript, []string{inventoryKey(userID)}, fieldChips, amount)
}

func (l *ledger) GetStats(ctx context.Context, userID string) (*domain.CasinoStats, error) {
	if userID == "" {
		return nil, errUserID()
	}

	fields, err := l.client.HGetAll(ctx, statsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %s: %w", userID, err)
	}

	stats := &domain.CasinoStats{}
	targets := map[string]*int64{
		fieldGamesPlayed: &stats.GamesPlayed,
		fieldTotalBets:   &stats.TotalBets,
		fieldWinnings:    &stats.Winnings,
		fieldLosses:      &stats.Losses,
	}
	for field, dst := range targets {
		if raw, ok := fields[field]; ok {
			if *dst, err = strconv.ParseInt(raw, 10, 64); err != nil {
				return nil, fmt.Errorf("failed to parse stats field %s: %w", field, err)
			}
		}
	}

	return stats, nil
}

func (l *ledger) PlaceBet(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	if userID == "" {
		return 0, false, errUserID()
	}
	return l.runConditional(ctx, placeBetScript, []string{inventoryKey(userID), statsKey(userID)}, amount)
}

func (l *ledger) SettleWin(ctx context.Context, userID string, win int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}

	var balance *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey(userID), fieldWinnings, win)
		balance = pipe.HIncrBy(ctx, inventoryKey(userID), fieldChips, win)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to settle win for user %s: %w", userID, err)
	}
	return balance.Val(), nil
}

func (l *ledger) SettleLoss(ctx context.Context, userID string, bet int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}

	var balance *goredis.StringCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey(userID), fieldLosses, bet)
		balance = pipe.HGet(ctx, inventoryKey(userID), fieldChips)
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return 0, fmt.Errorf("failed to settle loss for user %s: %w", userID, err)
	}
	return parseIntOrZero(balance.Val())
}

func (l *ledger) GetItems(ctx context.Context, userID string) (map[string]*domain.InventoryItem, error) {
	if userID == "" {
		return nil, errUserID()
	}

	ids, err := l.client.SMembers(ctx, itemIndexKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list items for user %s: %w", userID, err)
	}

	cmds := make(map[string]*goredis.MapStringStringCmd, len(ids))
	_, err = l.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, id := range ids {
			cmds[id] = pipe.HGetAll(ctx, itemKey(userID, id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load items for user %s: %w", userID, err)
	}

	items := make(map[string]*domain.InventoryItem, len(ids))
	for id, cmd := range cmds {
		item, err := decodeItem(id, cmd.Val())
		if err != nil {
			return nil, err
		}
		if item != nil {
			items[id] = item
		}
	}
	return items, nil
}

func (l *ledger) GetItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return nil, err
	}

	fields, err := l.client.HGetAll(ctx, itemKey(userID, itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s for user %s: %w", itemID, userID, err)
	}
	return decodeItem(itemID, fields)
}

func (l *ledger) AddItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, err
	}

	var qty *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		qty = pipe.HIncrBy(ctx, itemKey(userID, itemID), fieldQuantity, quantity)
		pipe.SAdd(ctx, itemIndexKey(userID), itemID)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add item %s for user %s: %w", itemID, userID, err)
	}
	return qty.Val(), nil
}

func (l *ledger) RemoveItem(ctx context.Context, userID, itemID string, quantity int64) (int64, bool, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, false, err
	}
	keys := []string{itemKey(userID, itemID), itemIndexKey(userID)}
	return l.runConditional(ctx, removeItemScript, keys, itemID, quantity)
}

func (l *ledger) UseItem(ctx context.Context, userID, itemID string, usedAtMs int64, consume bool) (int64, bool, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, false, err
	}
	flag := "0"
	if consume {
		flag = "1"
	}
	return l.runConditional(ctx, useItemScript, []string{itemKey(userID, itemID)}, usedAtMs, flag)
}

func (l *ledger) PurchaseItem(ctx context.Context, userID, itemID string, quantity, cost int64) (int64, bool, error) {
	if err := checkIDs(userID, itemID); err != nil {
		return 0, false, err
	}
	keys := []string{inventoryKey(userID), itemKey(userID, itemID), itemIndexKey(userID)}
	return l.runConditional(ctx, purchaseItemScript, keys, itemID, quantity, cost)
}

func (l *ledger) GetBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	return l.getInt(ctx, walletKey(userID), fieldBalance)
}

func (l *ledger) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, errUserID()
	}
	bal, err := l.client.HIncrBy(ctx, walletKey(userID), fieldBalance, amount).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to credit wallet for user %s: %w", userID, err)
	}
	return bal, nil
}

func (l *ledger) Debit(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	if userID == "" {
		return 0, false, errUserID()
	}
	return l.runConditional(ctx, conditionalDebitScript, []string{walletKey(userID)}, fieldBalance, amount)
}

func (l *ledger) getInt(ctx context.Context, key, field string) (int64, error) {
	raw, err := l.client.HGet(ctx, key, field).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s %s: %w", key, field, err)
	}
	return parseIntOrZero(raw)
}

func (l *ledger) runConditional(ctx context.Context, script *goredis.Script, keys []string, args ...interface{}) (int64, bool, error) {
	res, err := script.Run(ctx, l.client, keys, args...).Int64Slice()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("%w: %s", domain.ErrDatabaseError, ErrMsgBadScriptRes)
	}
	return res[1], res[0] == 1, nil
}

func decodeItem(itemID string, fields map[string]string) (*domain.InventoryItem, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	qty, err := parseIntOrZero(fields[fieldQuantity])
	if err != nil {
		return nil, fmt.Errorf("failed to parse quantity of %s: %w", itemID, err)
	}

	item := &domain.InventoryItem{ItemID: itemID, Quantity: qty}
	if raw, ok := fields[fieldLastUsed]; ok {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse lastUsed of %s: %w", itemID, err)
		}
		item.LastUsed = &ts
	}
	return item, nil
}

func parseIntOrZero(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
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
