package events

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/sanity-io/litter"
)

type EventHandler func(event Event)

type Event interface {
	Name() string
}

// Debug is an EventHandler that pretty-dumps every event, useful while
// wiring up a caller's interaction loop.
func Debug(event Event) {
	litter.D(event)
}

// Dealing Events

type CardDealt struct {
	TableID string
	HandID  string // empty when the card went to the dealer
	Card    cards.Card
}

func (c CardDealt) Name() string { return "CARD_DEALT" }

// Player Action Events

type PlayerHit struct {
	TableID string
	HandID  string
	Player  string
	Card    cards.Card
	Total   int
	Bust    bool
}

func (p PlayerHit) Name() string { return "PLAYER_HIT" }

type PlayerStood struct {
	TableID string
	HandID  string
	Player  string
	Total   int
}

func (p PlayerStood) Name() string { return "PLAYER_STOOD" }

type PlayerDoubledDown struct {
	TableID string
	HandID  string
	Player  string
	Bet     int // the doubled bet
	Card    cards.Card
	Total   int
	Bust    bool
}

func (p PlayerDoubledDown) Name() string { return "PLAYER_DOUBLED_DOWN" }

type PlayerSplit struct {
	TableID     string
	HandID      string
	SplitHandID string
	Player      string
}

func (p PlayerSplit) Name() string { return "PLAYER_SPLIT" }

// Dealer Events

type DealerPlayed struct {
	TableID string
	Dealer  string
	Total   int
	Bust    bool
}

func (d DealerPlayed) Name() string { return "DEALER_PLAYED" }
