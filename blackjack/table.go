package blackjack

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// MaxSeats caps one table at five players: a single 52-card deck comfortably
// covers that many hands plus splits.
const MaxSeats = 5

// DefaultDealerName names the dealer when no option overrides it.
const DefaultDealerName = "Dealer"

// Seat is one player's entry at table construction.
type Seat struct {
	Name string
	Bet  int
}

type tableConfig struct {
	dealerName string
	suits      []cards.Suit
	ranks      []cards.Rank
	source     rand.Source
}

// Option customizes table construction.
type Option func(*tableConfig)

// WithDealerName overrides the dealer's display name.
func WithDealerName(name string) Option {
	return func(cfg *tableConfig) { cfg.dealerName = name }
}

// WithSuits replaces the standard four suits.
func WithSuits(suits ...cards.Suit) Option {
	return func(cfg *tableConfig) { cfg.suits = suits }
}

// WithRanks replaces the standard thirteen ranks. Every rank must map to a
// known blackjack value.
func WithRanks(ranks ...cards.Rank) Option {
	return func(cfg *tableConfig) { cfg.ranks = ranks }
}

// WithRandSource seeds the deck shuffle, making the draw order reproducible.
func WithRandSource(source rand.Source) Option {
	return func(cfg *tableConfig) { cfg.source = source }
}

// Table models one in-progress round: it exclusively owns the deck, the
// dealer, and the player hands in seat order. The table does not sequence
// turns between players; that is the caller's job.
type Table struct {
	ID string

	deck    *cards.Deck
	dealer  *Dealer
	players []*PlayerHand

	// events
	events        []events.Event
	eventHandlers []events.EventHandler
}

// NewTable builds the deck, the dealer, and one PlayerHand per seat, in seat
// order. It returns a ConfigurationError for an empty or oversized seat list,
// a non-positive bet, or a malformed suit/rank set.
func NewTable(seats []Seat, opts ...Option) (*Table, error) {
	cfg := tableConfig{
		dealerName: DefaultDealerName,
		suits:      cards.DefaultSuits,
		ranks:      cards.DefaultRanks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(seats) == 0 {
		return nil, &ConfigurationError{Reason: "at least one player is required"}
	}
	if len(seats) > MaxSeats {
		return nil, configErrorf("at most %d players per table, got %d", MaxSeats, len(seats))
	}
	for _, seat := range seats {
		if seat.Bet <= 0 {
			return nil, configErrorf("player %q needs a positive bet, got %d", seat.Name, seat.Bet)
		}
	}

	deck, err := cards.NewDeck(cfg.suits, cfg.ranks, cfg.source)
	if err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}

	table := &Table{
		ID:   uuid.NewString(),
		deck: deck,
	}
	for _, seat := range seats {
		table.players = append(table.players, newPlayerHand(seat.Name, seat.Bet, table))
	}
	table.dealer = &Dealer{Name: cfg.dealerName, table: table}

	return table, nil
}

// Players returns the player hands in their original seat order. Split
// children hang off their parent via SplitHand and are not spliced in here.
func (t *Table) Players() []*PlayerHand { return t.players }

// Dealer returns the house hand.
func (t *Table) Dealer() *Dealer { return t.dealer }

// Deck returns the round's deck.
func (t *Table) Deck() *cards.Deck { return t.deck }

// Events returns everything emitted this round, in order.
func (t *Table) Events() []events.Event { return t.events }

// RegisterEventHandler registers a callback invoked synchronously for every
// event the round emits.
func (t *Table) RegisterEventHandler(handler events.EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

func (t *Table) emitEvent(event events.Event) {
	t.events = append(t.events, event)
	for _, handler := range t.eventHandlers {
		handler(event)
	}
}
