package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FichasBot_Go/internal/casino"
	"github.com/osse101/FichasBot_Go/internal/domain"
)

type MockCasinoService struct {
	mock.Mock
}

func (m *MockCasinoService) RegisterBet(ctx context.Context, userID string, amount int64, game string) (bool, error) {
	args := m.Called(ctx, userID, amount, game)
	return args.Bool(0), args.Error(1)
}

func (m *MockCasinoService) PlaceBet(ctx context.Context, userID string, amount int64, game string) (int64, bool, error) {
	args := m.Called(ctx, userID, amount, game)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockCasinoService) RegisterResult(ctx context.Context, userID string, betAmount, winAmount int64, game string) (int64, error) {
	args := m.Called(ctx, userID, betAmount, winAmount, game)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCasinoService) ExchangeChipsForMoney(ctx context.Context, userID string, chips int64) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, userID, chips)
	res, _ := args.Get(0).(*domain.ExchangeResult)
	return res, args.Error(1)
}

func (m *MockCasinoService) BuyChips(ctx context.Context, userID string, chips int64) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, userID, chips)
	res, _ := args.Get(0).(*domain.ExchangeResult)
	return res, args.Error(1)
}

func (m *MockCasinoService) GetStats(ctx context.Context, userID string) (*domain.CasinoStats, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*domain.CasinoStats)
	return res, args.Error(1)
}

func (m *MockCasinoService) GetChips(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCasinoService) PlaySlots(ctx context.Context, userID string, bet int64) (*domain.SlotsPlay, error) {
	args := m.Called(ctx, userID, bet)
	res, _ := args.Get(0).(*domain.SlotsPlay)
	return res, args.Error(1)
}

func (m *MockCasinoService) PlayRoulette(ctx context.Context, userID string, bet int64, selection casino.RouletteBet) (*domain.GamePlay, error) {
	args := m.Called(ctx, userID, bet, selection)
	res, _ := args.Get(0).(*domain.GamePlay)
	return res, args.Error(1)
}

func (m *MockCasinoService) PlayDice(ctx context.Context, userID string, bet int64, guess string) (*domain.GamePlay, error) {
	args := m.Called(ctx, userID, bet, guess)
	res, _ := args.Get(0).(*domain.GamePlay)
	return res, args.Error(1)
}

func (m *MockCasinoService) PlayBlackjack(ctx context.Context, userID string, bet int64) (*domain.GamePlay, error) {
	args := m.Called(ctx, userID, bet)
	res, _ := args.Get(0).(*domain.GamePlay)
	return res, args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*domain.Inventory)
	return res, args.Error(1)
}

func (m *MockInventoryService) GetChips(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryService) AddItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryService) RemoveItem(ctx context.Context, userID, itemID string, quantity int64) (int64, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryService) HasItem(ctx context.Context, userID, itemID string, quantity int64) (bool, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryService) UseItem(ctx context.Context, userID, itemID string) (*domain.ItemUse, error) {
	args := m.Called(ctx, userID, itemID)
	res, _ := args.Get(0).(*domain.ItemUse)
	return res, args.Error(1)
}

func (m *MockInventoryService) CooldownRemaining(ctx context.Context, userID, itemID string) (time.Duration, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockInventoryService) IsEffectActive(ctx context.Context, userID, itemID string) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryService) ActiveEffects(ctx context.Context, userID string) ([]domain.ItemUse, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]domain.ItemUse)
	return res, args.Error(1)
}

func (m *MockInventoryService) BuyItem(ctx context.Context, userID, itemID string, quantity int64) (*domain.Purchase, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	res, _ := args.Get(0).(*domain.Purchase)
	return res, args.Error(1)
}

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Balance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockFlavor struct {
	mock.Mock
}

func (m *MockFlavor) Generate(ctx context.Context, category string, amount int64, won bool, extra ...string) string {
	args := m.Called(ctx, category, amount, won, extra)
	return args.String(0)
}
