package blackjack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/cards"
)

// newTestTable builds a one-seat table with a seeded deck.
func newTestTable(t *testing.T, seats ...Seat) *Table {
	t.Helper()
	if len(seats) == 0 {
		seats = []Seat{{Name: "Alice", Bet: 100}}
	}
	table, err := NewTable(seats, WithRandSource(rand.NewSource(1)))
	require.NoError(t, err)
	return table
}

// setHand puts a specific hand on a player and clears the terminal flags.
func setHand(p *PlayerHand, hand Hand) {
	p.hand = hand
	p.bust = false
	p.stand = false
}

func setDealerHand(d *Dealer, hand Hand) {
	d.hand = hand
	d.bust = false
	d.stand = false
}

func TestPlayerHand_PlayHit(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "10s", "5h"))

	card, err := player.PlayHit()
	require.NoError(t, err)

	assert.Len(t, player.Hand(), 3)
	assert.True(t, player.Hand()[2].Equals(card), "the drawn card should land in the hand")
	assert.Equal(t, player.Total() > 21, player.IsBust())
	if player.Total() == 21 {
		assert.True(t, player.IsStanding(), "reaching 21 should stand automatically")
	}
}

func TestPlayerHand_PlayHit_AfterStand(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "10s", "7h"))

	require.NoError(t, player.PlayStand())

	_, err := player.PlayHit()
	var actionErr *InvalidActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "Alice", actionErr.Player)
	assert.Equal(t, "hit", actionErr.Action)
}

func TestPlayerHand_PlayHit_AfterBust(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "Ks", "Qh"))
	player.bust = true

	_, err := player.PlayHit()
	var actionErr *InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
}

func TestPlayerHand_PlayStand(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "10s", "8h"))

	require.NoError(t, player.PlayStand())
	assert.True(t, player.IsStanding())
	assert.True(t, player.IsDone())

	// Standing twice is not a valid action
	err := player.PlayStand()
	var actionErr *InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
}

func TestPlayerHand_PlayDoubleDown(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "5s", "6h"))

	require.True(t, player.CanDoubleDown())

	card, err := player.PlayDoubleDown()
	require.NoError(t, err)

	assert.Equal(t, 200, player.Bet(), "double down should double the bet in place")
	assert.Len(t, player.Hand(), 3, "double down draws exactly one card")
	assert.True(t, player.Hand()[2].Equals(card))
	assert.True(t, player.IsDone(), "double down always ends the hand's turn")
	assert.Equal(t, player.Total() > 21, player.IsBust())
}

func TestPlayerHand_CanDoubleDown(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]

	// Eligible: two cards, still active
	setHand(player, handOf(t, "5s", "6h"))
	assert.True(t, player.CanDoubleDown())

	// Not after a hit
	setHand(player, handOf(t, "5s", "6h", "2d"))
	assert.False(t, player.CanDoubleDown())

	// Not once standing
	setHand(player, handOf(t, "5s", "6h"))
	require.NoError(t, player.PlayStand())
	assert.False(t, player.CanDoubleDown())

	_, err := player.PlayDoubleDown()
	var actionErr *InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
}

func TestPlayerHand_CanSplit(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]

	setHand(player, handOf(t, "8s", "8h"))
	assert.True(t, player.CanSplit(), "a pair of equal rank should be splittable")

	setHand(player, handOf(t, "7s", "8h"))
	assert.False(t, player.CanSplit(), "mixed ranks are not splittable")

	setHand(player, handOf(t, "8s", "8h", "3d"))
	assert.False(t, player.CanSplit(), "a three-card hand is not splittable")

	setHand(player, handOf(t, "Ks", "10h"))
	assert.False(t, player.CanSplit(), "equal value is not enough, ranks must match")
}

func TestPlayerHand_PlaySplit(t *testing.T) {
	table := newTestTable(t, Seat{Name: "Bob", Bet: 50})
	player := table.Players()[0]
	pair := handOf(t, "8s", "8h")
	eight1, eight2 := pair[0], pair[1]
	setHand(player, pair)

	sibling, err := player.PlaySplit()
	require.NoError(t, err)
	require.NotNil(t, sibling)

	assert.Same(t, sibling, player.SplitHand())
	assert.Equal(t, player.Name, sibling.Name)
	assert.NotEqual(t, player.ID, sibling.ID)
	assert.Equal(t, 50, sibling.Bet(), "the sibling carries its own copy of the bet")

	// The second card moved over, and each hand got one fresh card
	require.Len(t, player.Hand(), 2)
	require.Len(t, sibling.Hand(), 2)
	assert.True(t, player.Hand()[0].Equals(eight1))
	assert.True(t, sibling.Hand()[0].Equals(eight2))

	assert.True(t, sibling.FromSplit())
	assert.False(t, sibling.CanSplit(), "a split hand can never split again")
	assert.False(t, sibling.CanDoubleDown(), "a split hand cannot double down")
	assert.False(t, player.CanSplit(), "the parent cannot split a second time")

	_, err = player.PlaySplit()
	var actionErr *InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
}

func TestPlayerHand_PlaySplit_DeckExhausted(t *testing.T) {
	table := newTestTable(t)
	for table.Deck().Remaining() > 1 {
		_, err := table.Deck().Draw()
		require.NoError(t, err)
	}

	player := table.Players()[0]
	setHand(player, handOf(t, "8s", "8h"))
	require.True(t, player.CanSplit())

	// One remaining card cannot feed two split hands
	_, err := player.PlaySplit()
	require.ErrorIs(t, err, cards.ErrEmptyDeck)

	// The split did not partially apply
	assert.Len(t, player.Hand(), 2)
	assert.Nil(t, player.SplitHand())
	assert.True(t, player.CanSplit())
	assert.Equal(t, 1, table.Deck().Remaining())
}

func TestPlayerHand_HandIsACopy(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "10s", "7h"))

	leaked := player.Hand()
	leaked[0] = handOf(t, "As")[0]
	leaked = append(leaked, handOf(t, "Ah")[0])

	assert.Len(t, leaked, 3)
	assert.Equal(t, 17, player.Total(), "mutating the returned hand must not change the hand's state")
	assert.Len(t, player.Hand(), 2)
}

func TestPlayerHand_PlaySplit_Ineligible(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "7s", "8h"))

	_, err := player.PlaySplit()
	var actionErr *InvalidActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "split", actionErr.Action)
}

func TestPlayerHand_Result(t *testing.T) {
	tests := []struct {
		name       string
		player     []string
		playerBust bool
		dealer     []string
		dealerBust bool
		want       Result
		code       int
	}{
		{"dealer busts", []string{"10s", "8h"}, false, []string{"Ks", "Qh", "5d"}, true, ResultDealerBust, 3},
		{"player under dealer", []string{"10s", "8h"}, false, []string{"10d", "Kc"}, false, ResultLose, -1},
		{"natural beats a 19", []string{"As", "Kh"}, false, []string{"10d", "9c"}, false, ResultBlackjack, 1},
		{"equal totals push", []string{"10s", "Kh"}, false, []string{"10d", "Qc"}, false, ResultPush, 0},
		{"player over dealer", []string{"10s", "9h"}, false, []string{"10d", "8c"}, false, ResultWin, 2},
		{"player bust loses even to a dealer bust", []string{"Ks", "Qh", "3d"}, true, []string{"Kd", "Qc", "5c"}, true, ResultPlayerBust, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTestTable(t)
			player := table.Players()[0]

			setHand(player, handOf(t, tt.player...))
			if tt.playerBust {
				player.bust = true
			} else {
				player.stand = true
			}

			setDealerHand(table.Dealer(), handOf(t, tt.dealer...))
			if tt.dealerBust {
				table.Dealer().bust = true
			} else {
				table.Dealer().stand = true
			}

			result := player.Result()
			assert.Equal(t, tt.want, result)

			code, ok := result.Code()
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestPlayerHand_Result_Undetermined(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]

	// Dealer has not finished playing yet
	setHand(player, handOf(t, "10s", "8h"))
	player.stand = true
	assert.Equal(t, ResultUndetermined, player.Result())

	// Player has not finished either
	setHand(player, handOf(t, "10s", "5h"))
	setDealerHand(table.Dealer(), handOf(t, "10d", "9c"))
	table.Dealer().stand = true
	assert.Equal(t, ResultUndetermined, player.Result())

	_, ok := ResultUndetermined.Code()
	assert.False(t, ok, "undetermined has no payout code")
}

func TestPlayerHand_Result_SplitHandIsNoBlackjack(t *testing.T) {
	table := newTestTable(t)
	player := table.Players()[0]
	setHand(player, handOf(t, "As", "As"))

	sibling, err := player.PlaySplit()
	require.NoError(t, err)

	// Force a two-card 21 on the split child
	setHand(sibling, handOf(t, "Ah", "Kd"))
	sibling.stand = true
	if !player.IsDone() {
		require.NoError(t, player.PlayStand())
	}

	setDealerHand(table.Dealer(), handOf(t, "10d", "9c"))
	table.Dealer().stand = true

	assert.Equal(t, ResultWin, sibling.Result(), "a split 21 wins but is no natural")
}

func TestInvalidActionError_Message(t *testing.T) {
	err := &InvalidActionError{Player: "Alice", Action: "hit", Reason: "hand is already bust"}
	assert.Equal(t, "Alice cannot play hit: hand is already bust", err.Error())
}
