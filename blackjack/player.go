package blackjack

import (
	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// PlayerHand is one player's hand for the round: the cards, the bet riding on
// them, and the action state. A hand is Active until it busts or stands; both
// are terminal and no further actions are accepted.
//
// Splitting produces a second PlayerHand linked via SplitHand. The split
// child shares its parent's name but has its own ID, and cannot itself split
// or double down.
type PlayerHand struct {
	ID   string
	Name string

	bet       int
	hand      Hand
	bust      bool
	stand     bool
	split     *PlayerHand
	fromSplit bool

	table *Table
}

func newPlayerHand(name string, bet int, table *Table) *PlayerHand {
	return &PlayerHand{
		ID:    uuid.NewString(),
		Name:  name,
		bet:   bet,
		table: table,
	}
}

// Bet returns the amount riding on this hand. Doubling down doubles it in
// place; a split hand carries its own copy of the original bet.
func (p *PlayerHand) Bet() int { return p.bet }

// Hand returns a copy of the cards dealt to this hand so far. Mutating the
// returned slice does not touch the hand itself.
func (p *PlayerHand) Hand() Hand {
	hand := make(Hand, len(p.hand))
	copy(hand, p.hand)
	return hand
}

// Total returns the hand's best blackjack total.
func (p *PlayerHand) Total() int { return p.hand.Total() }

// IsBust reports whether the hand went over 21.
func (p *PlayerHand) IsBust() bool { return p.bust }

// IsStanding reports whether the hand stood.
func (p *PlayerHand) IsStanding() bool { return p.stand }

// IsDone reports whether the hand is terminal (bust or standing).
func (p *PlayerHand) IsDone() bool { return p.bust || p.stand }

// SplitHand returns the sibling hand produced by PlaySplit, or nil.
func (p *PlayerHand) SplitHand() *PlayerHand { return p.split }

// FromSplit reports whether this hand is itself the product of a split.
func (p *PlayerHand) FromSplit() bool { return p.fromSplit }

// receive adds a card and refreshes the terminal flags. A hand that reaches
// exactly 21 stands automatically since there is nothing left to decide.
func (p *PlayerHand) receive(card cards.Card) {
	p.hand = append(p.hand, card)
	switch total := p.hand.Total(); {
	case total > 21:
		p.bust = true
	case total == 21:
		p.stand = true
	}
}

func (p *PlayerHand) status() string {
	switch {
	case p.bust:
		return "bust"
	case p.stand:
		return "standing"
	default:
		return "active"
	}
}

// PlayHit draws one card from the table's deck into the hand. The hand busts
// if the new total exceeds 21 and stands automatically on exactly 21.
func (p *PlayerHand) PlayHit() (cards.Card, error) {
	if p.IsDone() {
		return cards.Card{}, &InvalidActionError{Player: p.Name, Action: "hit", Reason: "hand is already " + p.status()}
	}

	card, err := p.table.deck.Draw()
	if err != nil {
		return cards.Card{}, err
	}

	p.receive(card)
	p.table.emitEvent(events.PlayerHit{
		TableID: p.table.ID,
		HandID:  p.ID,
		Player:  p.Name,
		Card:    card,
		Total:   p.Total(),
		Bust:    p.bust,
	})

	return card, nil
}

// PlayStand stops further dealing to this hand.
func (p *PlayerHand) PlayStand() error {
	if p.IsDone() {
		return &InvalidActionError{Player: p.Name, Action: "stand", Reason: "hand is already " + p.status()}
	}

	p.stand = true
	p.table.emitEvent(events.PlayerStood{
		TableID: p.table.ID,
		HandID:  p.ID,
		Player:  p.Name,
		Total:   p.Total(),
	})

	return nil
}

// CanDoubleDown reports whether doubling down is allowed: it must be the
// hand's very first decision (exactly the two dealt cards, still active), and
// neither side of a split may double.
func (p *PlayerHand) CanDoubleDown() bool {
	return len(p.hand) == 2 && !p.IsDone() && p.split == nil && !p.fromSplit
}

// PlayDoubleDown doubles the bet in place and draws exactly one card. The
// hand always ends terminal: standing, or bust if the card pushed it over 21.
func (p *PlayerHand) PlayDoubleDown() (cards.Card, error) {
	if !p.CanDoubleDown() {
		return cards.Card{}, &InvalidActionError{Player: p.Name, Action: "double down", Reason: "only allowed as the first decision on a two-card hand"}
	}

	card, err := p.table.deck.Draw()
	if err != nil {
		return cards.Card{}, err
	}

	p.bet *= 2
	p.receive(card)
	if !p.IsDone() {
		p.stand = true
	}

	p.table.emitEvent(events.PlayerDoubledDown{
		TableID: p.table.ID,
		HandID:  p.ID,
		Player:  p.Name,
		Bet:     p.bet,
		Card:    card,
		Total:   p.Total(),
		Bust:    p.bust,
	})

	return card, nil
}

// CanSplit reports whether splitting is allowed: a two-card pair of equal
// rank on an active hand that is not itself the product of a split.
func (p *PlayerHand) CanSplit() bool {
	return len(p.hand) == 2 && !p.IsDone() &&
		p.split == nil && !p.fromSplit &&
		p.hand[0].Rank == p.hand[1].Rank
}

// PlaySplit moves the second card into a new sibling hand carrying the same
// name and bet, then deals one fresh card to each of the two hands. The
// sibling is linked via SplitHand and returned; it plays independently from
// here on but can never split again.
func (p *PlayerHand) PlaySplit() (*PlayerHand, error) {
	if !p.CanSplit() {
		return nil, &InvalidActionError{Player: p.Name, Action: "split", Reason: "only allowed on an active two-card pair, once"}
	}

	// Both fresh cards must be available before any state moves.
	if p.table.deck.Remaining() < 2 {
		return nil, cards.ErrEmptyDeck
	}

	sibling := newPlayerHand(p.Name, p.bet, p.table)
	sibling.fromSplit = true
	sibling.hand = Hand{p.hand[1]}
	p.hand = p.hand[:1]
	p.split = sibling

	p.table.emitEvent(events.PlayerSplit{
		TableID:     p.table.ID,
		HandID:      p.ID,
		SplitHandID: sibling.ID,
		Player:      p.Name,
	})

	for _, hand := range []*PlayerHand{p, sibling} {
		card, err := p.table.deck.Draw()
		if err != nil {
			return nil, err
		}
		hand.receive(card)
		p.table.emitEvent(events.CardDealt{TableID: p.table.ID, HandID: hand.ID, Card: card})
	}

	return sibling, nil
}

// Result classifies this hand against the dealer. It returns
// ResultUndetermined until both this hand and the dealer are terminal.
// A two-card 21 only counts as blackjack when the hand was never split.
func (p *PlayerHand) Result() Result {
	dealer := p.table.dealer
	if !p.IsDone() || !dealer.IsDone() {
		return ResultUndetermined
	}

	switch {
	case p.bust:
		return ResultPlayerBust
	case dealer.IsBust():
		return ResultDealerBust
	case p.hand.IsBlackjack() && p.split == nil && !p.fromSplit:
		return ResultBlackjack
	case p.Total() > dealer.Total():
		return ResultWin
	case p.Total() == dealer.Total():
		return ResultPush
	default:
		return ResultLose
	}
}
