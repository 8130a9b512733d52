package casino

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"

	"github.com/osse101/FichasBot_Go/internal/domain"
	"github.com/osse101/FichasBot_Go/internal/logger"
	"github.com/osse101/FichasBot_Go/internal/metrics"
	"github.com/osse101/FichasBot_Go/internal/repository"
)

// Repository is the slice of the ledger the casino needs
type Repository interface {
	repository.Chips
	repository.CasinoStats
}

// CurrencyLedger is the real-currency balance chips exchange into
type CurrencyLedger interface {
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
}

// FlavorGenerator decorates results. Implementations never fail.
type FlavorGenerator interface {
	Generate(ctx context.Context, category string, amount int64, won bool, extra ...string) string
}

// Config holds casino economy settings
type Config struct {
	ChipValue      int64
	ExchangeFee    float64
	MaxBet         int64 // 0 disables the limit
	StatsCacheSize int
	StatsCacheTTL  time.Duration
}

// Validate validates the Config
func (c Config) Validate() error {
	if c.ChipValue <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidChipValue)
	}
	if c.ExchangeFee < 0 || c.ExchangeFee >= 1 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidRate)
	}
	return nil
}

// Service defines the casino betting lifecycle and game rounds
type Service interface {
	RegisterBet(ctx context.Context, userID string, amount int64, game string) (bool, error)
	PlaceBet(ctx context.Context, userID string, amount int64, game string) (int64, bool, error)
	RegisterResult(ctx context.Context, userID string, betAmount, winAmount int64, game string) (int64, error)
	ExchangeChipsForMoney(ctx context.Context, userID string, chips int64) (*domain.ExchangeResult, error)
	BuyChips(ctx context.Context, userID string, chips int64) (*domain.ExchangeResult, error)
	GetStats(ctx context.Context, userID string) (*domain.CasinoStats, error)
	GetChips(ctx context.Context, userID string) (int64, error)

	PlaySlots(ctx context.Context, userID string, bet int64) (*domain.SlotsPlay, error)
	PlayRoulette(ctx context.Context, userID string, bet int64, selection RouletteBet) (*domain.GamePlay, error)
	PlayDice(ctx context.Context, userID string, bet int64, guess string) (*domain.GamePlay, error)
	PlayBlackjack(ctx context.Context, userID string, bet int64) (*domain.GamePlay, error)
}

type service struct {
	cfg      Config
	feeRate  decimal.Decimal
	repo     Repository
	currency CurrencyLedger
	engine   *Engine
	flavor   FlavorGenerator
	stats    *expirable.LRU[string, domain.CasinoStats]
}

// NewService creates a new casino service
func NewService(cfg Config, repo Repository, currency CurrencyLedger, engine *Engine, flavor FlavorGenerator) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.StatsCacheSize <= 0 {
		cfg.StatsCacheSize = DefaultStatsCacheSize
	}

	return &service{
		cfg:      cfg,
		feeRate:  decimal.NewFromFloat(cfg.ExchangeFee),
		repo:     repo,
		currency: currency,
		engine:   engine,
		flavor:   flavor,
		stats:    expirable.NewLRU[string, domain.CasinoStats](cfg.StatsCacheSize, nil, cfg.StatsCacheTTL),
	}, nil
}

// RegisterBet debits amount and records the bet in the user's stats as one
// atomic store step. It returns false without any change when the balance
// does not cover amount.
func (s *service) RegisterBet(ctx context.Context, userID string, amount int64, game string) (bool, error) {
	_, ok, err := s.PlaceBet(ctx, userID, amount, game)
	return ok, err
}

// PlaceBet is RegisterBet that also returns the chip balance read in the same
// store step: the balance after the debit, or the uncovering balance.
func (s *service) PlaceBet(ctx context.Context, userID string, amount int64, game string) (int64, bool, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 || amount > domain.MaxChipAmount {
		return 0, false, domain.ErrInvalidAmount
	}
	if !domain.IsValidGame(game) {
		return 0, false, fmt.Errorf("%w: %q", domain.ErrInvalidGame, game)
	}
	if s.cfg.MaxBet > 0 && amount > s.cfg.MaxBet {
		return 0, false, fmt.Errorf("%w: %s (%d)", domain.ErrInvalidAmount, ErrMsgBetAboveMax, s.cfg.MaxBet)
	}

	balance, ok, err := s.repo.PlaceBet(ctx, userID, amount)
	if err != nil {
		log.Error("Failed to place bet", "user_id", userID, "game", game, "error", err)
		return 0, false, fmt.Errorf("failed to place bet: %w", err)
	}
	if !ok {
		metrics.BetsRejected.WithLabelValues(game).Inc()
		log.Info(LogMsgBetRejected, "user_id", userID, "game", game, "amount", amount, "balance", balance)
		return balance, false, nil
	}

	s.stats.Remove(userID)
	metrics.BetsPlaced.WithLabelValues(game).Inc()
	metrics.ChipsWagered.WithLabelValues(game).Add(float64(amount))
	log.Info(LogMsgBetPlaced, "user_id", userID, "game", game, "amount", amount, "balance", balance)
	return balance, true, nil
}

// RegisterResult settles a bet already placed with RegisterBet. A positive
// winAmount is credited; otherwise betAmount is recorded as lost.
func (s *service) RegisterResult(ctx context.Context, userID string, betAmount, winAmount int64, game string) (int64, error) {
	log := logger.FromContext(ctx)

	var (
		balance int64
		err     error
	)
	if winAmount > 0 {
		balance, err = s.repo.SettleWin(ctx, userID, winAmount)
	} else {
		balance, err = s.repo.SettleLoss(ctx, userID, betAmount)
	}
	s.stats.Remove(userID)
	if err != nil {
		log.Error("Failed to settle bet", "user_id", userID, "game", game, "error", err)
		return 0, fmt.Errorf("failed to settle bet: %w", err)
	}

	if winAmount > 0 {
		metrics.ChipsPaidOut.WithLabelValues(game).Add(float64(winAmount))
	}
	log.Info(LogMsgResultSettled, "user_id", userID, "game", game, "bet", betAmount, "win", winAmount, "balance", balance)
	return balance, nil
}

// ExchangeChipsForMoney converts chips to currency at ChipValue per chip minus
// the fee. If the currency credit fails the chips are re-credited.
func (s *service) ExchangeChipsForMoney(ctx context.Context, userID string, chips int64) (*domain.ExchangeResult, error) {
	log := logger.FromContext(ctx)

	if _, ok := chipsCost(chips, s.cfg.ChipValue); !ok {
		return nil, domain.ErrInvalidAmount
	}

	base, fee, amount := exchangeQuote(chips, s.cfg.ChipValue, s.feeRate)
	result := &domain.ExchangeResult{Chips: chips, BaseValue: base, Fee: fee, Amount: amount}

	balance, ok, err := s.repo.DebitChips(ctx, userID, chips)
	if err != nil {
		metrics.Exchanges.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to debit chips: %w", err)
	}
	result.ChipBalance = balance
	if !ok {
		metrics.Exchanges.WithLabelValues(metrics.OutcomeInsufficient).Inc()
		log.Info(LogMsgExchangeRejected, "user_id", userID, "chips", chips, "balance", balance)
		result.Message = MsgInsufficientChips
		return result, nil
	}

	if _, err := s.currency.Credit(ctx, userID, amount); err != nil {
		log.Error(LogMsgCreditFailed, "user_id", userID, "chips", chips, "error", err)
		restored, rerr := s.repo.AddChips(ctx, userID, chips)
		if rerr != nil {
			metrics.Exchanges.WithLabelValues(metrics.OutcomeError).Inc()
			log.Error(LogMsgCompensationFailed, "user_id", userID, "chips", chips, "error", rerr)
			return nil, fmt.Errorf("%w (re-credit failed: %v)", asCreditError(err), rerr)
		}
		metrics.Exchanges.WithLabelValues(metrics.OutcomeCompensated).Inc()
		result.ChipBalance = restored
		return result, asCreditError(err)
	}

	result.Success = true
	if s.flavor != nil {
		result.Message = s.flavor.Generate(ctx, FlavorCategoryExchange, amount, true)
	}
	metrics.Exchanges.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.ExchangeAmount.Add(float64(amount))
	metrics.ExchangeFees.Add(float64(fee))
	log.Info(LogMsgExchangeCompleted, "user_id", userID, "chips", chips, "amount", amount, "fee", fee)
	return result, nil
}

// BuyChips converts currency to chips at ChipValue per chip with no fee. If
// the chip grant fails the currency is refunded.
func (s *service) BuyChips(ctx context.Context, userID string, chips int64) (*domain.ExchangeResult, error) {
	log := logger.FromContext(ctx)

	cost, ok := chipsCost(chips, s.cfg.ChipValue)
	if !ok {
		return nil, domain.ErrInvalidAmount
	}
	result := &domain.ExchangeResult{Chips: chips, BaseValue: cost, Amount: cost}

	if _, err := s.currency.Debit(ctx, userID, cost); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			result.Message = MsgInsufficientFunds
			if result.ChipBalance, err = s.repo.GetChips(ctx, userID); err != nil {
				return nil, fmt.Errorf("failed to get chips: %w", err)
			}
			return result, nil
		}
		return nil, fmt.Errorf("failed to debit currency: %w", err)
	}

	balance, err := s.repo.AddChips(ctx, userID, chips)
	if err != nil {
		log.Error(LogMsgChipGrantFailed, "user_id", userID, "chips", chips, "error", err)
		if _, rerr := s.currency.Credit(ctx, userID, cost); rerr != nil {
			log.Error(LogMsgRefundFailed, "user_id", userID, "amount", cost, "error", rerr)
		}
		return nil, fmt.Errorf("failed to add chips: %w", err)
	}

	result.Success = true
	result.ChipBalance = balance
	log.Info(LogMsgChipsBought, "user_id", userID, "chips", chips, "cost", cost)
	return result, nil
}

// GetStats returns the user's casino aggregate, served from a short-lived cache
func (s *service) GetStats(ctx context.Context, userID string) (*domain.CasinoStats, error) {
	if cached, ok := s.stats.Get(userID); ok {
		return &cached, nil
	}
	stats, err := s.repo.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	s.stats.Add(userID, *stats)
	return stats, nil
}

func (s *service) GetChips(ctx context.Context, userID string) (int64, error) {
	return s.repo.GetChips(ctx, userID)
}

// PlaySlots runs a full slots round
func (s *service) PlaySlots(ctx context.Context, userID string, bet int64) (*domain.SlotsPlay, error) {
	if err := s.placeOrFail(ctx, userID, bet, domain.GameSlots); err != nil {
		return nil, err
	}

	result := s.engine.SpinSlots()
	win := payout(bet, result.Multiplier)

	balance, err := s.RegisterResult(ctx, userID, bet, win, domain.GameSlots)
	if err != nil {
		return nil, err
	}

	return &domain.SlotsPlay{
		UserID:      userID,
		BetAmount:   bet,
		Result:      result,
		Payout:      win,
		ChipBalance: balance,
		Message:     s.describe(ctx, domain.GameSlots, bet, win, result.WinType),
	}, nil
}

// PlayRoulette runs a full roulette round on one selection
func (s *service) PlayRoulette(ctx context.Context, userID string, bet int64, selection RouletteBet) (*domain.GamePlay, error) {
	if err := selection.Validate(); err != nil {
		return nil, err
	}
	if err := s.placeOrFail(ctx, userID, bet, domain.GameRoulette); err != nil {
		return nil, err
	}

	outcome := s.engine.SpinRoulette()
	multiplier, err := EvaluateRouletteBet(outcome, selection)
	if err != nil {
		return nil, err
	}

	play, err := s.settle(ctx, userID, bet, payout(bet, multiplier), domain.GameRoulette, outcome.Color)
	if err != nil {
		return nil, err
	}
	play.Roulette = &outcome
	return play, nil
}

// PlayDice runs a full dice round on a high/low/seven guess
func (s *service) PlayDice(ctx context.Context, userID string, bet int64, guess string) (*domain.GamePlay, error) {
	if _, err := EvaluateDiceGuess(domain.DiceResult{}, guess); err != nil {
		return nil, err
	}
	if err := s.placeOrFail(ctx, userID, bet, domain.GameDice); err != nil {
		return nil, err
	}

	roll := s.engine.RollDice()
	multiplier, err := EvaluateDiceGuess(roll, guess)
	if err != nil {
		return nil, err
	}

	play, err := s.settle(ctx, userID, bet, payout(bet, multiplier), domain.GameDice, guess)
	if err != nil {
		return nil, err
	}
	play.Dice = &roll
	return play, nil
}

// PlayBlackjack runs a single-shot blackjack round. A push returns the stake.
func (s *service) PlayBlackjack(ctx context.Context, userID string, bet int64) (*domain.GamePlay, error) {
	if err := s.placeOrFail(ctx, userID, bet, domain.GameBlackjack); err != nil {
		return nil, err
	}

	round := s.engine.DealBlackjack()
	play, err := s.settle(ctx, userID, bet, BlackjackPayout(bet, round.Outcome), domain.GameBlackjack, string(round.Outcome))
	if err != nil {
		return nil, err
	}
	play.Won = round.Outcome == domain.BlackjackWin || round.Outcome == domain.BlackjackNatural
	play.Blackjack = &round
	return play, nil
}

func (s *service) placeOrFail(ctx context.Context, userID string, bet int64, game string) error {
	ok, err := s.RegisterBet(ctx, userID, bet, game)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, MsgInsufficientChips)
	}
	return nil
}

func (s *service) settle(ctx context.Context, userID string, bet, win int64, game, detail string) (*domain.GamePlay, error) {
	balance, err := s.RegisterResult(ctx, userID, bet, win, game)
	if err != nil {
		return nil, err
	}
	return &domain.GamePlay{
		BetID:       uuid.NewString(),
		UserID:      userID,
		Game:        game,
		BetAmount:   bet,
		Payout:      win,
		ChipBalance: balance,
		Won:         win > 0,
		Message:     s.describe(ctx, game, bet, win, detail),
	}, nil
}

func (s *service) describe(ctx context.Context, game string, bet, win int64, detail string) string {
	if s.flavor == nil {
		return ""
	}
	if win > 0 {
		return s.flavor.Generate(ctx, game, win, true, detail)
	}
	return s.flavor.Generate(ctx, game, bet, false, detail)
}

func asCreditError(err error) error {
	if errors.Is(err, domain.ErrCurrencyCredit) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrCurrencyCredit, err)
}
