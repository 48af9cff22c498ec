package blackjack

// Result classifies a player hand's outcome against the dealer.
type Result int

const (
	// ResultUndetermined means one of the two sides has not finished playing
	// yet. It is a precondition sentinel, not a failure.
	ResultUndetermined Result = iota
	ResultPlayerBust
	ResultLose
	ResultPush
	ResultBlackjack
	ResultWin
	ResultDealerBust
)

func (r Result) String() string {
	switch r {
	case ResultPlayerBust:
		return "player bust"
	case ResultLose:
		return "lose"
	case ResultPush:
		return "push"
	case ResultBlackjack:
		return "blackjack"
	case ResultWin:
		return "win"
	case ResultDealerBust:
		return "dealer bust"
	default:
		return "undetermined"
	}
}

// Code returns the signed payout code for a determined result: negative
// loses the bet, zero pushes, positive wins. The second return is false for
// ResultUndetermined, which has no code.
//
//	-2 player bust, -1 lose, 0 push, 1 blackjack, 2 win, 3 dealer bust
func (r Result) Code() (int, bool) {
	switch r {
	case ResultPlayerBust:
		return -2, true
	case ResultLose:
		return -1, true
	case ResultPush:
		return 0, true
	case ResultBlackjack:
		return 1, true
	case ResultWin:
		return 2, true
	case ResultDealerBust:
		return 3, true
	default:
		return 0, false
	}
}

// Wins reports whether the result pays the player.
func (r Result) Wins() bool {
	code, ok := r.Code()
	return ok && code > 0
}
