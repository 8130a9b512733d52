package casino

import (
	"fmt"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// RollDice rolls two independent six-sided dice
func (e *Engine) RollDice() domain.DiceResult {
	d1 := e.rng(dieFaces) + 1
	d2 := e.rng(dieFaces) + 1
	return domain.DiceResult{Die1: d1, Die2: d2, Total: d1 + d2}
}

// EvaluateDiceGuess returns the total returned per unit bet for guess
func EvaluateDiceGuess(result domain.DiceResult, guess string) (float64, error) {
	switch guess {
	case DiceGuessHigh:
		if result.Total >= DiceHighMin {
			return DiceEvenMoneyMultiplier, nil
		}
	case DiceGuessLow:
		if result.Total <= DiceLowMax {
			return DiceEvenMoneyMultiplier, nil
		}
	case DiceGuessSeven:
		if result.Total == DiceSeven {
			return DiceSevenMultiplier, nil
		}
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidBetOption, guess)
	}
	return 0, nil
}
