package economy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

func TestCredit(t *testing.T) {
	// ARRANGE
	wallet := new(MockWallet)
	svc := NewService(wallet)
	ctx := context.Background()
	wallet.On("Credit", ctx, "u1", int64(90)).Return(int64(190), nil)

	// ACT
	bal, err := svc.Credit(ctx, "u1", 90)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, int64(190), bal)
	wallet.AssertExpectations(t)
}

func TestCredit_StoreFailureIsCurrencyCreditError(t *testing.T) {
	wallet := new(MockWallet)
	svc := NewService(wallet)
	ctx := context.Background()
	wallet.On("Credit", ctx, "u1", int64(5)).Return(int64(0), errors.New("connection reset"))

	_, err := svc.Credit(ctx, "u1", 5)

	assert.ErrorIs(t, err, domain.ErrCurrencyCredit)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestCredit_KeepsStoreErrorInChain(t *testing.T) {
	wallet := new(MockWallet)
	svc := NewService(wallet)
	ctx := context.Background()
	storeErr := fmt.Errorf("%w: write failed", domain.ErrDatabaseError)
	wallet.On("Credit", ctx, "u1", int64(5)).Return(int64(0), storeErr)

	_, err := svc.Credit(ctx, "u1", 5)

	assert.ErrorIs(t, err, domain.ErrCurrencyCredit)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestCredit_RejectsNonPositive(t *testing.T) {
	wallet := new(MockWallet)
	svc := NewService(wallet)

	_, err := svc.Credit(context.Background(), "u1", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	wallet.AssertNumberOfCalls(t, "Credit", 0)
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name    string
		ok      bool
		balance int64
		wantErr error
	}{
		{name: "covered", ok: true, balance: 10},
		{name: "short", ok: false, balance: 40, wantErr: domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := new(MockWallet)
			svc := NewService(wallet)
			ctx := context.Background()
			wallet.On("Debit", ctx, "u1", int64(50)).Return(tt.balance, tt.ok, nil)

			bal, err := svc.Debit(ctx, "u1", 50)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.balance, bal)
		})
	}
}

func TestBalance(t *testing.T) {
	wallet := new(MockWallet)
	svc := NewService(wallet)
	ctx := context.Background()
	wallet.On("GetBalance", ctx, "u1").Return(int64(77), nil)

	bal, err := svc.Balance(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(77), bal)
}
