package casino

import (
	"strconv"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// NewDeck returns the 52 cards in canonical suit-major order
func NewDeck() []domain.Card {
	deck := make([]domain.Card, 0, deckSize)
	for _, suit := range domain.Suits {
		for _, rank := range domain.Ranks {
			deck = append(deck, domain.Card{Suit: suit, Rank: rank, Value: rankValue(rank)})
		}
	}
	return deck
}

// Shuffle permutes cards in place with Fisher-Yates, walking down from the
// last index and drawing j from [0, i] inclusive.
func Shuffle(cards []domain.Card, rng func(int) int) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// GenerateShuffledDeck returns a fresh shuffled deck
func (e *Engine) GenerateShuffledDeck() []domain.Card {
	deck := NewDeck()
	Shuffle(deck, e.rng)
	return deck
}

func rankValue(rank string) int {
	switch rank {
	case domain.RankAce:
		return aceFullValue
	case domain.RankJack, domain.RankQueen, domain.RankKing:
		return faceCardValue
	}
	v, err := strconv.Atoi(rank)
	if err != nil {
		return 0
	}
	return v
}
