package casino

import (
	"github.com/osse101/FichasBot_Go/internal/utils"
)

// Engine produces randomized game outcomes. It holds no per-game state and is
// safe for concurrent use as long as its rng is.
type Engine struct {
	rng      func(int) int // returns [0,n); injectable for testing
	paytable Paytable
	symbols  []WeightedSymbol
	total    int
}

// NewEngine creates an engine over the given paytable and rng. A nil rng uses
// a crypto-backed source.
func NewEngine(paytable Paytable, rng func(int) int) (*Engine, error) {
	if err := paytable.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.SecureIntn
	}

	total := 0
	for _, s := range paytable.Symbols {
		total += s.Weight
	}

	return &Engine{
		rng:      rng,
		paytable: paytable,
		symbols:  paytable.Symbols,
		total:    total,
	}, nil
}

// Paytable returns the engine's slot configuration
func (e *Engine) Paytable() Paytable {
	return e.paytable
}
