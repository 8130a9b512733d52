package domain

// Game identifiers recorded with bets
const (
	GameBlackjack = "blackjack"
	GameSlots     = "slots"
	GameRoulette  = "roulette"
	GameDice      = "dice"
)

// MaxChipAmount bounds any single bet or chip transfer so chip and currency
// arithmetic stays well inside int64
const MaxChipAmount int64 = 1_000_000_000_000

// ValidGames lists the games that may place bets
var ValidGames = []string{GameBlackjack, GameSlots, GameRoulette, GameDice}

// IsValidGame reports whether game is a known casino game
func IsValidGame(game string) bool {
	for _, g := range ValidGames {
		if g == game {
			return true
		}
	}
	return false
}

// Roulette colors
const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorBlack = "black"
)

// Parity values. Zero has none.
const (
	ParityNone = ""
	ParityEven = "even"
	ParityOdd  = "odd"
)

// RouletteResult is a wheel outcome. Dozen and Column are nil for zero.
type RouletteResult struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	Parity string `json:"parity,omitempty"`
	Dozen  *int   `json:"dozen"`
	Column *int   `json:"column"`
}

// DiceResult is a two-die roll
type DiceResult struct {
	Die1  int `json:"die1"`
	Die2  int `json:"die2"`
	Total int `json:"total"`
}

// ExchangeResult reports a chip to currency conversion
type ExchangeResult struct {
	Success     bool   `json:"success"`
	Chips       int64  `json:"chips"`
	BaseValue   int64  `json:"base_value"`
	Fee         int64  `json:"fee"`
	Amount      int64  `json:"amount"`
	ChipBalance int64  `json:"chip_balance"`
	Message     string `json:"message,omitempty"`
}

// BetRecord is the input to a settle call, carried between phases by callers
type BetRecord struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
	Game   string `json:"game"`
}

// GamePlay is a settled non-slots round
type GamePlay struct {
	BetID       string          `json:"bet_id"`
	UserID      string          `json:"user_id"`
	Game        string          `json:"game"`
	BetAmount   int64           `json:"bet_amount"`
	Payout      int64           `json:"payout"`
	ChipBalance int64           `json:"chip_balance"`
	Won         bool            `json:"won"`
	Roulette    *RouletteResult `json:"roulette,omitempty"`
	Dice        *DiceResult     `json:"dice,omitempty"`
	Blackjack   *BlackjackRound `json:"blackjack,omitempty"`
	Message     string          `json:"message"`
}
