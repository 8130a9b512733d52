package economy

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockWallet implements repository.Wallet for testing
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWallet) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWallet) Debit(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}
