package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/FichasBot_Go/internal/catalog"
	"github.com/osse101/FichasBot_Go/internal/concurrency"
	"github.com/osse101/FichasBot_Go/internal/cooldown"
	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/logger"
	"github.com/osse101/FichasBot_Go/internal/metrics"
	"github.com/osse101/FichasBot_Go/internal/repository"
)

// Repository is the slice of the ledger the inventory needs
type Repository interface {
	repository.Chips
	repository.Items
}

// Service defines the inventory ledger operations
type Service interface {
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	GetChips(ctx context.Context, userID string) (int64, error)
	AddItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error)
	RemoveItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error)
	HasItem(ctx context.Context, userID, itemID string, quantity int64) (bool, error)
	UseItem(ctx context.Context, userID, itemID string) (*domain.ItemUse, error)
	CooldownRemaining(ctx context.Context, userID, itemID string) (time.Duration, error)
	IsEffectActive(ctx context.Context, userID, itemID string) (bool, error)
	ActiveEffects(ctx context.Context, userID string) ([]domain.ItemUse, error)
	BuyItem(ctx context.Context, userID, itemID string, quantity int64) (*domain.Purchase, error)
}

type service struct {
	repo     Repository
	catalog  catalog.Catalog
	cooldown cooldown.Checker
	locks    *concurrency.LockManager
}

// NewService creates a new inventory service
func NewService(repo Repository, cat catalog.Catalog, checker cooldown.Checker, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:     repo,
		catalog:  cat,
		cooldown: checker,
		locks:    locks,
	}
}

func (s *service) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	chips, err := s.repo.GetChips(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chips: %w", err)
	}
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return &domain.Inventory{UserID: userID, Chips: chips, Items: items}, nil
}

func (s *service) GetChips(ctx context.Context, userID string) (int64, error) {
	return s.repo.GetChips(ctx, userID)
}

// AddItem grants quantity of a catalog item and returns the new quantity
func (s *service) AddItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if !s.catalog.ItemExists(itemID) {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	qty, err := s.repo.AddItem(ctx, userID, itemID, quantity)
	if err != nil {
		return 0, fmt.Errorf("failed to add item: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgItemAdded, "user_id", userID, "item", itemID, "quantity", quantity, "total", qty)
	return qty, nil
}

// RemoveItem takes quantity away, failing without change when fewer are held
func (s *service) RemoveItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	remaining, ok, err := s.repo.RemoveItem(ctx, userID, itemID, quantity)
	if err != nil {
		return 0, fmt.Errorf("failed to remove item: %w", err)
	}
	if !ok {
		return remaining, fmt.Errorf(ErrFmtQuantityHeld, domain.ErrInsufficientQuantity, remaining, quantity)
	}

	logger.FromContext(ctx).Info(LogMsgItemRemoved, "user_id", userID, "item", itemID, "quantity", quantity, "remaining", remaining)
	return remaining, nil
}

// HasItem reports whether the user holds at least quantity (1 when zero)
func (s *service) HasItem(ctx context.Context, userID, itemID string, quantity int64) (bool, error) {
	if quantity <= 0 {
		quantity = DefaultHasQuantity
	}
	entry, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to get item: %w", err)
	}
	return entry != nil && entry.Quantity >= quantity, nil
}

// UseItem activates an owned item: it checks the cooldown, stamps lastUsed
// and consumes one unit when the item is consumable.
func (s *service) UseItem(ctx context.Context, userID, itemID string) (*domain.ItemUse, error) {
	log := logger.FromContext(ctx)

	item, err := s.catalog.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if !item.HasEffect() && !item.Consumable {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotUsable, itemID)
	}

	var use *domain.ItemUse
	err = s.locks.WithLock(concurrency.Key(userID, itemID), func() error {
		entry, err := s.repo.GetItem(ctx, userID, itemID)
		if err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}
		if entry == nil || entry.Quantity < 1 {
			return fmt.Errorf(ErrFmtQuantityHeld, domain.ErrInsufficientQuantity, quantityOf(entry), 1)
		}

		if err := s.cooldown.Check(item.Name, entry.LastUsed, item.Cooldown()); err != nil {
			log.Info(LogMsgItemOnCooldown, "user_id", userID, "item", itemID, "error", err)
			return err
		}

		now := s.cooldown.NowMs()
		remaining, ok, err := s.repo.UseItem(ctx, userID, itemID, now, item.Consumable)
		if err != nil {
			return fmt.Errorf("failed to use item: %w", err)
		}
		if !ok {
			return fmt.Errorf(ErrFmtQuantityHeld, domain.ErrInsufficientQuantity, remaining, 1)
		}

		use = &domain.ItemUse{
			ItemID:          itemID,
			Effect:          string(item.Effect),
			UsedAt:          now,
			RemainingAmount: remaining,
		}
		if item.HasEffect() && item.DurationMs > 0 {
			use.ActiveUntil = now + item.DurationMs
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsUsed.WithLabelValues(itemID).Inc()
	log.Info(LogMsgItemUsed, "user_id", userID, "item", itemID, "remaining", use.RemainingAmount)
	return use, nil
}

// CooldownRemaining returns how long until the user may use itemID again
func (s *service) CooldownRemaining(ctx context.Context, userID, itemID string) (time.Duration, error) {
	item, err := s.catalog.GetItemByID(itemID)
	if err != nil {
		return 0, err
	}
	entry, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to get item: %w", err)
	}
	if entry == nil {
		return 0, nil
	}
	return s.cooldown.Remaining(entry.LastUsed, item.Cooldown()), nil
}

// IsEffectActive reports whether the effect of the user's last use of itemID is still running
func (s *service) IsEffectActive(ctx context.Context, userID, itemID string) (bool, error) {
	item, err := s.catalog.GetItemByID(itemID)
	if err != nil {
		return false, err
	}
	if !item.HasEffect() {
		return false, nil
	}
	entry, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to get item: %w", err)
	}
	if entry == nil {
		return false, nil
	}
	return s.cooldown.IsEffectActive(entry.LastUsed, item.Duration()), nil
}

// ActiveEffects lists the user's currently running item effects
func (s *service) ActiveEffects(ctx context.Context, userID string) ([]domain.ItemUse, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	active := make([]domain.ItemUse, 0)
	for id, entry := range items {
		item, err := s.catalog.GetItemByID(id)
		if err != nil || !item.HasEffect() || entry.LastUsed == nil {
			continue
		}
		if s.cooldown.IsEffectActive(entry.LastUsed, item.Duration()) {
			active = append(active, domain.ItemUse{
				ItemID:          id,
				Effect:          string(item.Effect),
				UsedAt:          *entry.LastUsed,
				ActiveUntil:     *entry.LastUsed + item.DurationMs,
				RemainingAmount: entry.Quantity,
			})
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ItemID < active[j].ItemID })
	return active, nil
}

// BuyItem pays price*quantity in chips for a buyable catalog item
func (s *service) BuyItem(ctx context.Context, userID, itemID string, quantity int64) (*domain.Purchase, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	item, err := s.catalog.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if !item.Buyable {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotBuyable, itemID)
	}

	cost := item.Price * quantity
	balance, ok, err := s.repo.PurchaseItem(ctx, userID, itemID, quantity, cost)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase item: %w", err)
	}
	if !ok {
		logger.FromContext(ctx).Info(LogMsgPurchaseRejected, "user_id", userID, "item", itemID, "cost", cost, "balance", balance)
		return nil, fmt.Errorf(ErrFmtChipsHeld, domain.ErrInsufficientFunds, balance, cost)
	}

	metrics.ItemsBought.WithLabelValues(itemID).Add(float64(quantity))
	logger.FromContext(ctx).Info(LogMsgItemBought, "user_id", userID, "item", itemID, "quantity", quantity, "cost", cost)

	return &domain.Purchase{
		ItemID:      itemID,
		Quantity:    quantity,
		TotalCost:   cost,
		ChipBalance: balance,
	}, nil
}

func quantityOf(entry *domain.InventoryItem) int64 {
	if entry == nil {
		return 0
	}
	return entry.Quantity
}
