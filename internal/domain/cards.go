package domain

// Suit symbols in canonical deck order
const (
	SuitHearts   = "♥"
	SuitDiamonds = "♦"
	SuitClubs    = "♣"
	SuitSpades   = "♠"
)

// Rank labels
const (
	RankAce   = "A"
	RankJack  = "J"
	RankQueen = "Q"
	RankKing  = "K"
)

// Suits and Ranks fix the enumeration order of a fresh deck
var (
	Suits = []string{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}
	Ranks = []string{RankAce, "2", "3", "4", "5", "6", "7", "8", "9", "10", RankJack, RankQueen, RankKing}
)

// Card is a playing card. Value is the blackjack value with aces at 11.
type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == RankAce
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// BlackjackOutcome is the settlement class of a finished hand
type BlackjackOutcome string

const (
	BlackjackLose    BlackjackOutcome = "lose"
	BlackjackPush    BlackjackOutcome = "push"
	BlackjackWin     BlackjackOutcome = "win"
	BlackjackNatural BlackjackOutcome = "blackjack"
)

// BlackjackRound is a dealt and finished single-shot hand
type BlackjackRound struct {
	Player      []Card           `json:"player"`
	Dealer      []Card           `json:"dealer"`
	PlayerScore int              `json:"player_score"`
	DealerScore int              `json:"dealer_score"`
	Outcome     BlackjackOutcome `json:"outcome"`
}
