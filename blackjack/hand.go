package blackjack

import "github.com/lazharichir/blackjack/cards"

// Hand is an ordered collection of cards belonging to one participant. The
// total is always derived from the cards, never cached.
type Hand []cards.Card

// Total returns the best blackjack total for the hand. Every ace counts as 11
// unless that would bust the hand, in which case aces are reinterpreted as 1
// one at a time until the total is 21 or less, or no aces remain.
func (h Hand) Total() int {
	total := 0
	aces := 0
	for _, card := range h {
		total += card.Value
		if card.Rank == cards.Ace {
			aces++
		}
	}

	for aces > 0 && total > 21 {
		total -= 10
		aces--
	}

	return total
}

// IsBust reports whether the hand total exceeds 21.
func (h Hand) IsBust() bool {
	return h.Total() > 21
}

// IsBlackjack reports a natural: exactly two cards totaling 21.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Total() == 21
}

func (h Hand) String() string {
	return cards.Stack(h).String()
}
