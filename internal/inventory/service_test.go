package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FichasBot_Go/internal/catalog"
	"github.com/osse101/FichasBot_Go/internal/concurrency"
	"github.com/osse101/FichasBot_Go/internal/cooldown"
	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/testutils"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	svc   Service
	repo  Repository
	clock *fakeClock
}

func setup(t *testing.T) fixture {
	t.Helper()

	store, _ := testutils.CreateTestStore(t)
	cat, err := catalog.LoadDefault("")
	require.NoError(t, err)

	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	svc := NewService(store, cat, cooldown.NewChecker(cooldown.Config{}, clock), concurrency.NewLockManager())

	return fixture{svc: svc, repo: store, clock: clock}
}

func TestAddItem(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	qty, err := f.svc.AddItem(ctx, "u1", "energetico", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), qty)

	qty, err = f.svc.AddItem(ctx, "u1", "energetico", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), qty)

	_, err = f.svc.AddItem(ctx, "u1", "espada_lendaria", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.svc.AddItem(ctx, "u1", "energetico", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRemoveItem(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "u1", "picareta", 2)
	require.NoError(t, err)

	_, err = f.svc.RemoveItem(ctx, "u1", "picareta", 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	remaining, err := f.svc.RemoveItem(ctx, "u1", "picareta", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)

	has, err := f.svc.HasItem(ctx, "u1", "picareta", 0)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHasItem(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	has, err := f.svc.HasItem(ctx, "u1", "vara_pesca", 1)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = f.svc.AddItem(ctx, "u1", "vara_pesca", 2)
	require.NoError(t, err)

	has, err = f.svc.HasItem(ctx, "u1", "vara_pesca", 2)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = f.svc.HasItem(ctx, "u1", "vara_pesca", 3)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUseItem_ConsumesAndStartsCooldown(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "u1", "energetico", 2)
	require.NoError(t, err)

	use, err := f.svc.UseItem(ctx, "u1", "energetico")
	require.NoError(t, err)
	assert.Equal(t, string(domain.EffectWorkBonus), use.Effect)
	assert.Equal(t, int64(1), use.RemainingAmount)
	assert.Equal(t, use.UsedAt+1_800_000, use.ActiveUntil)

	active, err := f.svc.IsEffectActive(ctx, "u1", "energetico")
	require.NoError(t, err)
	assert.True(t, active)

	_, err = f.svc.UseItem(ctx, "u1", "energetico")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)
	var cd cooldown.ErrOnCooldown
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, 2*time.Hour, cd.Remaining)

	remaining, err := f.svc.CooldownRemaining(ctx, "u1", "energetico")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, remaining)

	f.clock.Advance(30 * time.Minute)
	active, err = f.svc.IsEffectActive(ctx, "u1", "energetico")
	require.NoError(t, err)
	assert.False(t, active, "effect window end is exclusive")

	f.clock.Advance(90 * time.Minute)
	use, err = f.svc.UseItem(ctx, "u1", "energetico")
	require.NoError(t, err)
	assert.Equal(t, int64(0), use.RemainingAmount)

	// used entry survives at zero so the effect is still queryable
	active, err = f.svc.IsEffectActive(ctx, "u1", "energetico")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestUseItem_Rejections(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.UseItem(ctx, "u1", "energetico")
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	_, err = f.svc.UseItem(ctx, "u1", "nao_existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.svc.AddItem(ctx, "u1", "trofeu_ouro", 1)
	require.NoError(t, err)
	_, err = f.svc.UseItem(ctx, "u1", "trofeu_ouro")
	assert.ErrorIs(t, err, domain.ErrItemNotUsable)
}

func TestUseItem_DevModeBypassesCooldown(t *testing.T) {
	store, _ := testutils.CreateTestStore(t)
	cat, err := catalog.LoadDefault("")
	require.NoError(t, err)
	svc := NewService(store, cat, cooldown.NewChecker(cooldown.Config{DevMode: true}, nil), nil)
	ctx := context.Background()

	_, err = svc.AddItem(ctx, "u1", "energetico", 2)
	require.NoError(t, err)

	_, err = svc.UseItem(ctx, "u1", "energetico")
	require.NoError(t, err)
	_, err = svc.UseItem(ctx, "u1", "energetico")
	require.NoError(t, err)
}

func TestUseItem_ConcurrentUsesAreSerialized(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "u1", "amuleto_sorte", 5)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.UseItem(ctx, "u1", "amuleto_sorte"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "only one use may pass the cooldown check")
	has, err := f.svc.HasItem(ctx, "u1", "amuleto_sorte", 4)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestActiveEffects(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "u1", "amuleto_sorte", 1)
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, "u1", "picareta", 1)
	require.NoError(t, err)
	_, err = f.svc.UseItem(ctx, "u1", "amuleto_sorte")
	require.NoError(t, err)

	effects, err := f.svc.ActiveEffects(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.Equal(t, string(domain.EffectCasinoLuck), effects[0].Effect)

	f.clock.Advance(time.Hour)
	effects, err = f.svc.ActiveEffects(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, effects)
}

func TestActiveEffects_SortedByItemID(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, id := range []string{"livro_sabedoria", "amuleto_sorte", "energetico"} {
		_, err := f.svc.AddItem(ctx, "u1", id, 2)
		require.NoError(t, err)
		_, err = f.svc.UseItem(ctx, "u1", id)
		require.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		effects, err := f.svc.ActiveEffects(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, effects, 3)
		assert.Equal(t, "amuleto_sorte", effects[0].ItemID)
		assert.Equal(t, "energetico", effects[1].ItemID)
		assert.Equal(t, "livro_sabedoria", effects[2].ItemID)
	}
}

func TestBuyItem(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.repo.AddChips(ctx, "u1", 2000)
	require.NoError(t, err)

	_, err = f.svc.BuyItem(ctx, "u1", "picareta", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	chips, err := f.svc.GetChips(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), chips)

	purchase, err := f.svc.BuyItem(ctx, "u1", "picareta", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), purchase.TotalCost)
	assert.Equal(t, int64(800), purchase.ChipBalance)

	_, err = f.svc.BuyItem(ctx, "u1", "diamante_raro", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotBuyable)

	_, err = f.svc.BuyItem(ctx, "u1", "picareta", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	inv, err := f.svc.GetInventory(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(800), inv.Chips)
	require.Contains(t, inv.Items, "picareta")
	assert.Equal(t, int64(1), inv.Items["picareta"].Quantity)
}
