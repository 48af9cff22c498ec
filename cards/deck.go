package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned by Draw when no cards remain.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered set of cards for a single round. It is shuffled once at
// construction and only shrinks afterwards; cards are never put back.
type Deck struct {
	cards Stack
}

// NewDeck builds a deck as the product of suits and ranks, assigns each card
// its blackjack value, and shuffles it using the given source. A nil source
// falls back to a time-seeded one; tests pass a fixed seed to make the draw
// order reproducible.
func NewDeck(suits []Suit, ranks []Rank, source rand.Source) (*Deck, error) {
	if len(suits) == 0 {
		return nil, errors.New("deck needs at least one suit")
	}
	if len(ranks) == 0 {
		return nil, errors.New("deck needs at least one rank")
	}

	deck := &Deck{cards: make(Stack, 0, len(suits)*len(ranks))}
	for _, suit := range suits {
		for _, rank := range ranks {
			value, ok := RankValue(rank)
			if !ok {
				return nil, fmt.Errorf("unknown rank: %s", rank)
			}
			deck.cards.AddCard(Card{Suit: suit, Rank: rank, Value: value})
		}
	}

	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	r := rand.New(source)
	r.Shuffle(len(deck.cards), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})

	return deck, nil
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
