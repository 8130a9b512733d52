package casino

import (
	"github.com/osse101/FichasBot_Go/internal/domain"
)

// CalculateBlackjackScore sums a hand counting aces as 11, then softens aces
// to 1 one at a time while the total is over 21.
func CalculateBlackjackScore(hand []domain.Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += rankValue(c.Rank)
		if c.IsAce() {
			aces++
		}
	}

	for total > BlackjackTarget && aces > 0 {
		total -= aceSoftenAmount
		aces--
	}
	return total
}

// IsNaturalBlackjack reports a two-card 21
func IsNaturalBlackjack(hand []domain.Card) bool {
	return len(hand) == naturalHandSize && CalculateBlackjackScore(hand) == BlackjackTarget
}

// DealerPlay draws from deck until the dealer reaches 17. It returns the
// final hand and the undealt remainder of the deck.
func DealerPlay(hand, deck []domain.Card) ([]domain.Card, []domain.Card) {
	for CalculateBlackjackScore(hand) < DealerStandsAt && len(deck) > 0 {
		hand = append(hand, deck[0])
		deck = deck[1:]
	}
	return hand, deck
}

// DealBlackjack plays a single-shot round from a fresh deck. Cards alternate
// player, dealer, player, dealer. Without a natural the player draws to 17
// like the dealer, and the dealer only draws when the player has not busted.
func (e *Engine) DealBlackjack() domain.BlackjackRound {
	deck := e.GenerateShuffledDeck()
	player := []domain.Card{deck[0], deck[2]}
	dealer := []domain.Card{deck[1], deck[3]}
	deck = deck[naturalHandSize*2:]

	if !IsNaturalBlackjack(player) {
		player, deck = DealerPlay(player, deck)
	}
	if CalculateBlackjackScore(player) <= BlackjackTarget && !IsNaturalBlackjack(player) {
		dealer, _ = DealerPlay(dealer, deck)
	}

	return domain.BlackjackRound{
		Player:      player,
		Dealer:      dealer,
		PlayerScore: CalculateBlackjackScore(player),
		DealerScore: CalculateBlackjackScore(dealer),
		Outcome:     ResolveBlackjack(player, dealer),
	}
}

// ResolveBlackjack classifies a finished round
func ResolveBlackjack(player, dealer []domain.Card) domain.BlackjackOutcome {
	playerScore := CalculateBlackjackScore(player)
	dealerScore := CalculateBlackjackScore(dealer)
	playerNatural := IsNaturalBlackjack(player)
	dealerNatural := IsNaturalBlackjack(dealer)

	switch {
	case playerScore > BlackjackTarget:
		return domain.BlackjackLose
	case playerNatural && dealerNatural:
		return domain.BlackjackPush
	case playerNatural:
		return domain.BlackjackNatural
	case dealerNatural:
		return domain.BlackjackLose
	case dealerScore > BlackjackTarget || playerScore > dealerScore:
		return domain.BlackjackWin
	case playerScore == dealerScore:
		return domain.BlackjackPush
	default:
		return domain.BlackjackLose
	}
}

// BlackjackMultiplier returns the total returned per unit bet for outcome
func BlackjackMultiplier(outcome domain.BlackjackOutcome) float64 {
	switch outcome {
	case domain.BlackjackNatural:
		return BlackjackNaturalMultiplier
	case domain.BlackjackWin:
		return BlackjackWinMultiplier
	case domain.BlackjackPush:
		return BlackjackPushMultiplier
	default:
		return 0
	}
}

// BlackjackPayout returns the chips returned for bet, rounded down
func BlackjackPayout(bet int64, outcome domain.BlackjackOutcome) int64 {
	return payout(bet, BlackjackMultiplier(outcome))
}
