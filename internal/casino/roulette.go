package casino

import (
	"fmt"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// European single-zero layout
var redNumbers = map[int]struct{}{1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {}, 19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {}}

// Roulette bet types
const (
	BetStraight = "straight"
	BetRed      = "red"
	BetBlack    = "black"
	BetEven     = "even"
	BetOdd      = "odd"
	BetLow      = "low"
	BetHigh     = "high"
	BetDozen    = "dozen"
	BetColumn   = "column"
)

const lowMax = 18

// RouletteBet is a wager selection. Number holds the straight-up number or
// the dozen/column index.
type RouletteBet struct {
	Type   string `json:"type" validate:"required,oneof=straight red black even odd low high dozen column"`
	Number int    `json:"number" validate:"min=0,max=36"`
}

// Validate checks that Number fits the bet type
func (b RouletteBet) Validate() error {
	switch b.Type {
	case BetStraight:
		if b.Number < 0 || b.Number > rouletteMaxNumber {
			return fmt.Errorf("%w: straight number %d", domain.ErrInvalidBetOption, b.Number)
		}
	case BetDozen, BetColumn:
		if b.Number < 1 || b.Number > rouletteColumnCount {
			return fmt.Errorf("%w: %s %d", domain.ErrInvalidBetOption, b.Type, b.Number)
		}
	case BetRed, BetBlack, BetEven, BetOdd, BetLow, BetHigh:
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidBetOption, b.Type)
	}
	return nil
}

// SpinRoulette draws a number in [0,36] uniformly
func (e *Engine) SpinRoulette() domain.RouletteResult {
	return RouletteOutcome(e.rng(rouletteSlots))
}

// RouletteOutcome derives color, parity, dozen and column for n
func RouletteOutcome(n int) domain.RouletteResult {
	if n == 0 {
		return domain.RouletteResult{Number: 0, Color: domain.ColorGreen, Parity: domain.ParityNone}
	}

	result := domain.RouletteResult{Number: n, Color: domain.ColorBlack, Parity: domain.ParityOdd}
	if _, ok := redNumbers[n]; ok {
		result.Color = domain.ColorRed
	}
	if n%2 == 0 {
		result.Parity = domain.ParityEven
	}

	dozen := (n-1)/rouletteDozenSize + 1
	column := n % rouletteColumnCount
	if column == 0 {
		column = rouletteColumnCount
	}
	result.Dozen = &dozen
	result.Column = &column
	return result
}

// EvaluateRouletteBet returns the total returned per unit bet, 0 on a loss.
// Zero loses every bet except a straight-up on zero.
func EvaluateRouletteBet(result domain.RouletteResult, bet RouletteBet) (float64, error) {
	if err := bet.Validate(); err != nil {
		return 0, err
	}

	var won bool
	switch bet.Type {
	case BetStraight:
		if result.Number == bet.Number {
			return RouletteStraightMultiplier, nil
		}
		return 0, nil
	case BetRed:
		won = result.Color == domain.ColorRed
	case BetBlack:
		won = result.Color == domain.ColorBlack
	case BetEven:
		won = result.Parity == domain.ParityEven
	case BetOdd:
		won = result.Parity == domain.ParityOdd
	case BetLow:
		won = result.Number >= 1 && result.Number <= lowMax
	case BetHigh:
		won = result.Number > lowMax
	case BetDozen:
		if result.Dozen != nil && *result.Dozen == bet.Number {
			return RouletteDozenMultiplier, nil
		}
		return 0, nil
	case BetColumn:
		if result.Column != nil && *result.Column == bet.Number {
			return RouletteDozenMultiplier, nil
		}
		return 0, nil
	}

	if won {
		return RouletteEvenMoneyMultiplier, nil
	}
	return 0, nil
}
