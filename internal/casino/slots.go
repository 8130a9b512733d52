package casino

import (
	"fmt"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// WeightedSymbol is a reel symbol and its relative draw weight
type WeightedSymbol struct {
	Symbol string `json:"symbol"`
	Weight int    `json:"weight"`
}

// Tier is a slot payout class
type Tier struct {
	Multiplier float64 `json:"multiplier"`
	Label      string  `json:"label"`
}

// Paytable configures the slot machine. The classification cascade is fixed;
// only symbols, weights, multipliers and labels vary.
type Paytable struct {
	Symbols     []WeightedSymbol `json:"symbols"`
	TopSymbol   string           `json:"top_symbol"`
	SuperSymbol string           `json:"super_symbol"`
	Minimum     Tier             `json:"minimum"`
	Small       Tier             `json:"small"`
	Medium      Tier             `json:"medium"`
	Large       Tier             `json:"large"`
	Super       Tier             `json:"super"`
	Jackpot     Tier             `json:"jackpot"`
}

// DefaultPaytable returns the standard seven-symbol machine
func DefaultPaytable() Paytable {
	return Paytable{
		Symbols: []WeightedSymbol{
			{Symbol: SymbolCherry, Weight: 30},
			{Symbol: SymbolLemon, Weight: 25},
			{Symbol: SymbolOrange, Weight: 20},
			{Symbol: SymbolGrape, Weight: 15},
			{Symbol: SymbolBell, Weight: 5},
			{Symbol: SymbolDiamond, Weight: 3},
			{Symbol: SymbolSeven, Weight: 2},
		},
		TopSymbol:   SymbolSeven,
		SuperSymbol: SymbolDiamond,
		Minimum:     Tier{Multiplier: DefaultMinimumMultiplier, Label: LabelMinimum},
		Small:       Tier{Multiplier: DefaultSmallMultiplier, Label: LabelSmall},
		Medium:      Tier{Multiplier: DefaultMediumMultiplier, Label: LabelMedium},
		Large:       Tier{Multiplier: DefaultLargeMultiplier, Label: LabelLarge},
		Super:       Tier{Multiplier: DefaultSuperMultiplier, Label: LabelSuper},
		Jackpot:     Tier{Multiplier: DefaultJackpotMultiplier, Label: LabelJackpot},
	}
}

// Validate checks that weights are positive and the tier symbols are on the reels
func (p Paytable) Validate() error {
	if len(p.Symbols) == 0 {
		return fmt.Errorf("%w: %s: no symbols", domain.ErrInvalidInput, ErrMsgInvalidPaytable)
	}
	seen := make(map[string]bool, len(p.Symbols))
	for _, s := range p.Symbols {
		if s.Weight <= 0 {
			return fmt.Errorf("%w: %s: symbol %s has weight %d", domain.ErrInvalidInput, ErrMsgInvalidPaytable, s.Symbol, s.Weight)
		}
		if seen[s.Symbol] {
			return fmt.Errorf("%w: %s: duplicate symbol %s", domain.ErrInvalidInput, ErrMsgInvalidPaytable, s.Symbol)
		}
		seen[s.Symbol] = true
	}
	if !seen[p.TopSymbol] || !seen[p.SuperSymbol] || p.TopSymbol == p.SuperSymbol {
		return fmt.Errorf("%w: %s: tier symbols must be distinct reel symbols", domain.ErrInvalidInput, ErrMsgInvalidPaytable)
	}
	for _, t := range []Tier{p.Minimum, p.Small, p.Medium, p.Large, p.Super, p.Jackpot} {
		if t.Multiplier < 0 {
			return fmt.Errorf("%w: %s: negative multiplier", domain.ErrInvalidInput, ErrMsgInvalidPaytable)
		}
	}
	return nil
}

// DrawSymbol picks one reel symbol by walking cumulative weights
func (e *Engine) DrawSymbol() string {
	r := e.rng(e.total)
	cumulative := 0
	for _, s := range e.symbols {
		cumulative += s.Weight
		if r < cumulative {
			return s.Symbol
		}
	}
	return e.symbols[len(e.symbols)-1].Symbol
}

// SpinSlots draws three independent reels and classifies them
func (e *Engine) SpinSlots() domain.SlotsResult {
	var reels [3]string
	for i := range reels {
		reels[i] = e.DrawSymbol()
	}
	return EvaluateSlots(reels, e.paytable)
}

// EvaluateSlots applies the payout cascade: three of a kind, then a pair,
// then any top-tier symbol, then loss.
func EvaluateSlots(reels [3]string, p Paytable) domain.SlotsResult {
	result := domain.SlotsResult{Reels: reels, WinType: LabelLoss}
	a, b, c := reels[0], reels[1], reels[2]

	var tier *Tier
	switch {
	case a == b && b == c:
		switch a {
		case p.TopSymbol:
			tier = &p.Jackpot
		case p.SuperSymbol:
			tier = &p.Super
		default:
			tier = &p.Large
		}
	case a == b || b == c || a == c:
		pair := c
		if a == b || a == c {
			pair = a
		}
		if pair == p.TopSymbol {
			tier = &p.Medium
		} else {
			tier = &p.Small
		}
	case a == p.TopSymbol || b == p.TopSymbol || c == p.TopSymbol:
		tier = &p.Minimum
	}

	if tier != nil {
		result.Multiplier = tier.Multiplier
		result.WinType = tier.Label
	}
	return result
}
