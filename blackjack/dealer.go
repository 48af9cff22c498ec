package blackjack

import (
	"fmt"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Dealer owns the house hand. It deals the initial cards for the round and
// then plays itself with the fixed house policy once every player hand is
// terminal.
type Dealer struct {
	Name string

	hand  Hand
	bust  bool
	stand bool

	table *Table
}

// Hand returns a copy of the dealer's cards. Before Play, only the upcard is
// meant to be shown to players; masking the hole card is the caller's
// presentation concern.
func (d *Dealer) Hand() Hand {
	hand := make(Hand, len(d.hand))
	copy(hand, d.hand)
	return hand
}

// Total returns the dealer's best blackjack total.
func (d *Dealer) Total() int { return d.hand.Total() }

// IsBust reports whether the dealer went over 21.
func (d *Dealer) IsBust() bool { return d.bust }

// IsStanding reports whether the dealer finished at 21 or under.
func (d *Dealer) IsStanding() bool { return d.stand }

// IsDone reports whether the dealer has finished playing.
func (d *Dealer) IsDone() bool { return d.bust || d.stand }

// Upcard returns the dealer's first, face-up card. The second return is
// false before the initial deal.
func (d *Dealer) Upcard() (cards.Card, bool) {
	if len(d.hand) == 0 {
		return cards.Card{}, false
	}
	return d.hand[0], true
}

// DealInitial deals the opening two cards to every seated hand and to the
// dealer itself: the dealer's upcard first, then one round to the players,
// a second round, then the dealer's hole card. Split hands never receive
// initial cards; they are dealt at split time.
func (d *Dealer) DealInitial() error {
	if len(d.hand) > 0 {
		return &InvalidActionError{Player: d.Name, Action: "deal", Reason: "cards have already been dealt"}
	}

	// The whole deal must be available up front so it cannot stop halfway.
	needed := 2*len(d.table.players) + 2
	if remaining := d.table.deck.Remaining(); remaining < needed {
		return fmt.Errorf("initial deal needs %d cards, %d remaining: %w", needed, remaining, cards.ErrEmptyDeck)
	}

	if err := d.receiveFromDeck(); err != nil {
		return err
	}
	for round := 0; round < 2; round++ {
		for _, player := range d.table.players {
			card, err := d.table.deck.Draw()
			if err != nil {
				return err
			}
			player.receive(card)
			d.table.emitEvent(events.CardDealt{TableID: d.table.ID, HandID: player.ID, Card: card})
		}
	}
	return d.receiveFromDeck()
}

func (d *Dealer) receiveFromDeck() error {
	card, err := d.table.deck.Draw()
	if err != nil {
		return err
	}
	d.hand = append(d.hand, card)
	d.table.emitEvent(events.CardDealt{TableID: d.table.ID, Card: card})
	return nil
}

// Play runs the fixed house policy: hit while the total is under 17, then
// stand. 17 is a flat threshold; the dealer stands on soft 17 as well. Play
// fails if any player hand, split children included, is still active.
func (d *Dealer) Play() error {
	if len(d.hand) == 0 {
		return &InvalidActionError{Player: d.Name, Action: "play", Reason: "cards have not been dealt yet"}
	}
	if d.IsDone() {
		return &InvalidActionError{Player: d.Name, Action: "play", Reason: "dealer has already played"}
	}
	if unfinished := d.remainingHand(); unfinished != nil {
		return &InvalidActionError{Player: d.Name, Action: "play", Reason: unfinished.Name + " still has a hand to play"}
	}

	for d.hand.Total() < 17 {
		card, err := d.table.deck.Draw()
		if err != nil {
			return err
		}
		d.hand = append(d.hand, card)
		d.table.emitEvent(events.CardDealt{TableID: d.table.ID, Card: card})
	}

	if d.hand.Total() > 21 {
		d.bust = true
	} else {
		d.stand = true
	}

	d.table.emitEvent(events.DealerPlayed{
		TableID: d.table.ID,
		Dealer:  d.Name,
		Total:   d.Total(),
		Bust:    d.bust,
	})

	return nil
}

// remainingHand returns a player hand that has not finished playing, split
// children included, or nil when everyone is done.
func (d *Dealer) remainingHand() *PlayerHand {
	for _, player := range d.table.players {
		if !player.IsDone() {
			return player
		}
		if player.split != nil && !player.split.IsDone() {
			return player.split
		}
	}
	return nil
}
