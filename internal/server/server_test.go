package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FichasBot_Go/internal/casino"
	"github.com/osse101/FichasBot_Go/internal/catalog"
	"github.com/osse101/FichasBot_Go/internal/concurrency"
	"github.com/osse101/FichasBot_Go/internal/cooldown"
	"github.com/osse101/FichasBot_Go/internal/economy"
	"github.com/osse101/FichasBot_Go/internal/flavor"
	"github.com/osse101/FichasBot_Go/internal/inventory"
	"github.com/osse101/FichasBot_Go/internal/testutils"
)

const testAPIKey = "test-key"

// newTestRouter wires the real services over miniredis. Every rng draw
// returns the highest value, so slots always land three sevens.
func newTestRouter(t *testing.T) (http.Handler, func(userID string, chips int64)) {
	t.Helper()

	store, _ := testutils.CreateTestStore(t)
	cat, err := catalog.LoadDefault("")
	require.NoError(t, err)

	rng := func(n int) int { return n - 1 }
	engine, err := casino.NewEngine(casino.DefaultPaytable(), rng)
	require.NoError(t, err)

	wallet := economy.NewService(store)
	gen := flavor.NewGeneratorWithClient(flavor.Config{}, nil, rng)
	casinoSvc, err := casino.NewService(casino.Config{
		ChipValue:     casino.DefaultChipValue,
		ExchangeFee:   casino.DefaultExchangeFee,
		StatsCacheTTL: time.Minute,
	}, store, wallet, engine, gen)
	require.NoError(t, err)

	invSvc := inventory.NewService(store, cat, cooldown.NewChecker(cooldown.Config{}, nil), concurrency.NewLockManager())

	router := NewRouter(Config{APIKey: testAPIKey}, Services{
		Store:     store,
		Casino:    casinoSvc,
		Inventory: invSvc,
		Economy:   wallet,
		Catalog:   cat,
		Flavor:    gen,
	})

	fund := func(userID string, chips int64) {
		_, err := store.AddChips(context.Background(), userID, chips)
		require.NoError(t, err)
	}
	return router, fund
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestRouter_BetLifecycle(t *testing.T) {
	h, fund := newTestRouter(t)
	fund("u1", 50)

	rec, body := do(t, h, http.MethodPost, "/api/v1/casino/bet", `{"user_id":"u1","amount":100,"game":"blackjack"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["accepted"])
	assert.Equal(t, float64(50), body["chip_balance"])

	rec, body = do(t, h, http.MethodPost, "/api/v1/casino/bet", `{"user_id":"u1","amount":50,"game":"blackjack"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["accepted"])
	assert.Equal(t, float64(0), body["chip_balance"])

	rec, body = do(t, h, http.MethodGet, "/api/v1/casino/stats?user_id=u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["gamesPlayed"])
	assert.Equal(t, float64(50), body["totalBets"])

	rec, body = do(t, h, http.MethodPost, "/api/v1/casino/result", `{"user_id":"u1","bet_amount":50,"win_amount":100,"game":"blackjack"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(100), body["balance"])
}

func TestRouter_ExchangeCreditsWallet(t *testing.T) {
	h, fund := newTestRouter(t)
	fund("u1", 10)

	rec, body := do(t, h, http.MethodPost, "/api/v1/casino/exchange", `{"user_id":"u1","chips":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(90), body["amount"])
	assert.Equal(t, float64(10), body["fee"])

	_, body = do(t, h, http.MethodGet, "/api/v1/wallet?user_id=u1", "")
	assert.Equal(t, float64(90), body["balance"])

	_, body = do(t, h, http.MethodGet, "/api/v1/casino/chips?user_id=u1", "")
	assert.Equal(t, float64(0), body["balance"])
}

func TestRouter_SlotsJackpot(t *testing.T) {
	h, fund := newTestRouter(t)
	fund("u1", 100)

	rec, body := do(t, h, http.MethodPost, "/api/v1/casino/slots", `{"user_id":"u1","bet":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	result := body["result"].(map[string]interface{})
	assert.Equal(t, casino.LabelJackpot, result["win_type"])
	assert.Equal(t, float64(250), body["payout"])
	assert.Equal(t, float64(340), body["chip_balance"])
	assert.NotEmpty(t, body["message"])
}

func TestRouter_BlackjackPush(t *testing.T) {
	h, fund := newTestRouter(t)
	fund("u1", 100)

	rec, body := do(t, h, http.MethodPost, "/api/v1/casino/blackjack", `{"user_id":"u1","bet":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	round := body["blackjack"].(map[string]interface{})
	assert.Equal(t, "push", round["outcome"])
	assert.Equal(t, float64(10), body["payout"])
	assert.Equal(t, float64(100), body["chip_balance"])
	assert.Equal(t, false, body["won"])
}

func TestRouter_BuyAndUseItem(t *testing.T) {
	h, fund := newTestRouter(t)
	fund("u1", 2000)

	rec, body := do(t, h, http.MethodPost, "/api/v1/inventory/item/buy", `{"user_id":"u1","item_id":"energetico","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(400), body["chip_balance"])

	rec, _ = do(t, h, http.MethodPost, "/api/v1/inventory/item/use", `{"user_id":"u1","item_id":"energetico"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, h, http.MethodGet, "/api/v1/inventory/item/status?user_id=u1&item_id=energetico", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["effect_active"])
	assert.Greater(t, body["cooldown_remaining_ms"], float64(0))

	rec, _ = do(t, h, http.MethodPost, "/api/v1/inventory/item/use", `{"user_id":"u1","item_id":"energetico"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_PublicAndProtected(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
