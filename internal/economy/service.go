// Package economy is the real-currency ledger chips exchange into
package economy

import (
	"context"
	"fmt"

	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/logger"
	"github.com/osse101/FichasBot_Go/internal/repository"
)

// Service defines the currency ledger operations
type Service interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
}

type service struct {
	wallet repository.Wallet
}

// NewService creates a new economy service
func NewService(wallet repository.Wallet) Service {
	return &service{wallet: wallet}
}

func (s *service) Balance(ctx context.Context, userID string) (int64, error) {
	bal, err := s.wallet.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return bal, nil
}

// Credit adds amount and returns the new balance
func (s *service) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	bal, err := s.wallet.Credit(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrCurrencyCredit, err)
	}
	logger.FromContext(ctx).Info(LogMsgCredited, "user_id", userID, "amount", amount, "balance", bal)
	return bal, nil
}

// Debit removes amount, returning ErrInsufficientFunds without change when the balance is short
func (s *service) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	bal, ok, err := s.wallet.Debit(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}
	if !ok {
		logger.FromContext(ctx).Info(LogMsgDebitRejected, "user_id", userID, "amount", amount, "balance", bal)
		return bal, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, bal, amount)
	}
	logger.FromContext(ctx).Info(LogMsgDebited, "user_id", userID, "amount", amount, "balance", bal)
	return bal, nil
}
