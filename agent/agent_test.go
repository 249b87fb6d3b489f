package agent

import (
	"testing"

	"yacht/game"
	"yacht/searcher"

	"github.com/stretchr/testify/require"
)

func TestAgentOnAward(t *testing.T) {
	t.Run("settles both ledgers and pools", func(t *testing.T) {
		a := New()
		myBid := a.OnRoll(1, hand(t, "66655"), hand(t, "11223"))
		oppBid := game.Bid{Group: myBid.Group, Amount: myBid.Amount + 1}

		a.OnAward(hand(t, "11223"), hand(t, "66655"), myBid, oppBid, game.B)

		s := a.Session()
		require.Equal(t, myBid.Amount, s.Me.Ledger(), "Losing the named group pays the bid back")
		require.Equal(t, -oppBid.Amount, s.Opp.Ledger(), "Winning costs the opponent its bid")
		require.ElementsMatch(t, dice("11223"), s.Me.Pool())
		require.ElementsMatch(t, dice("66655"), s.Opp.Pool())
		require.Equal(t, oppBid.Amount, s.OppBids[1], "Opponent bid should be recorded")
		require.Equal(t, myBid, s.LastBid)
	})
}

func TestAgentPlacement(t *testing.T) {
	t.Run("applies its own placement", func(t *testing.T) {
		a := New()
		a.OnRoll(1, hand(t, "12345"), hand(t, "66666"))
		a.OnAward(hand(t, "12345"), hand(t, "66666"), game.Bid{Group: game.A}, game.Bid{Group: game.B}, game.A)
		a.OnRoll(2, hand(t, "23456"), hand(t, "11111"))
		a.OnAward(hand(t, "23456"), hand(t, "11111"), game.Bid{Group: game.A}, game.Bid{Group: game.B}, game.A)

		put, err := a.OnRequestPlacement()

		require.NoError(t, err)
		s := a.Session()
		require.True(t, s.Me.Filled(put.Category))
		require.Equal(t, 5, s.Me.PoolSize())
		require.Equal(t, game.Score(put.Category, put.Hand), a.TotalScore(game.Me))
	})

	t.Run("mirrors the opponent", func(t *testing.T) {
		a := New()
		a.OnRoll(1, hand(t, "12345"), hand(t, "66666"))
		a.OnAward(hand(t, "12345"), hand(t, "66666"), game.Bid{Group: game.A}, game.Bid{Group: game.B}, game.A)
		a.OnRoll(2, hand(t, "12345"), hand(t, "66666"))
		a.OnAward(hand(t, "12345"), hand(t, "66666"), game.Bid{Group: game.A}, game.Bid{Group: game.B}, game.A)

		err := a.OnOpponentPlacement(game.DicePut{Category: game.Yacht, Hand: hand(t, "66666")})
		require.NoError(t, err)
		require.Equal(t, 50000, a.TotalScore(game.Opponent))

		err = a.OnOpponentPlacement(game.DicePut{Category: game.Yacht, Hand: hand(t, "66666")})
		require.ErrorIs(t, err, game.ErrCategoryFilled, "A category cannot be scored twice")

		err = a.OnOpponentPlacement(game.DicePut{Category: game.One, Hand: hand(t, "11111")})
		require.ErrorIs(t, err, game.ErrDiceNotInPool, "The opponent holds no ones")
	})
}

func TestAgentMetrics(t *testing.T) {
	t.Run("records every decision", func(t *testing.T) {
		a := New(WithEstimator(searcher.NewEstimator(searcher.WithMetrics())))
		a.OnRoll(1, hand(t, "12345"), hand(t, "66666"))
		a.OnAward(hand(t, "12345"), hand(t, "66666"), game.Bid{Group: game.A}, game.Bid{Group: game.B}, game.A)
		a.OnRoll(2, hand(t, "23456"), hand(t, "11111"))
		a.OnAward(hand(t, "23456"), hand(t, "11111"), game.Bid{Group: game.A}, game.Bid{Group: game.B}, game.A)
		_, err := a.OnRequestPlacement()
		require.NoError(t, err)

		metrics := a.Metrics()

		require.Len(t, metrics, 3)
		require.Equal(t, BidDecision, metrics[0].Kind)
		require.Equal(t, PutDecision, metrics[2].Kind)
		require.Equal(t, 2, metrics[2].Round)
		require.Positive(t, metrics[2].Candidates, "Placement should search candidates")
	})
}

func TestAgentDeterminism(t *testing.T) {
	t.Run("same seed same decisions", func(t *testing.T) {
		play := func() []game.Bid {
			a := New(WithSeed(42))
			var bids []game.Bid
			for round, groups := range [][2]string{{"12345", "54321"}, {"33333", "33333"}} {
				bids = append(bids, a.OnRoll(round+1, hand(t, groups[0]), hand(t, groups[1])))
			}
			return bids
		}

		require.Equal(t, play(), play())
	})
}
