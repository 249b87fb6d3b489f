package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestStandardRulesResolve(t *testing.T) {
	t.Run("different groups are both granted", func(t *testing.T) {
		r := NewStandardRules()

		first, second := r.Resolve(Bid{Group: A, Amount: 10}, Bid{Group: B, Amount: 99})

		require.Equal(t, A, first)
		require.Equal(t, B, second)
	})

	t.Run("higher bid takes a contested group", func(t *testing.T) {
		r := NewStandardRules()

		first, second := r.Resolve(Bid{Group: B, Amount: 100}, Bid{Group: B, Amount: 101})

		require.Equal(t, A, first, "Lower bidder gets the other group")
		require.Equal(t, B, second, "Higher bidder gets the contested group")
	})

	t.Run("tie breaks are configurable", func(t *testing.T) {
		bid := Bid{Group: A, Amount: 500}

		first, _ := (&StandardRules{TieBreak: TieFirst}).Resolve(bid, bid)
		require.Equal(t, A, first, "TieFirst favours the first bidder")

		first, _ = (&StandardRules{TieBreak: TieSecond}).Resolve(bid, bid)
		require.Equal(t, B, first, "TieSecond favours the second bidder")

		r := &StandardRules{TieBreak: TieRandom, Rand: rand.New(rand.NewSource(1))}
		first, second := r.Resolve(bid, bid)
		require.NotEqual(t, first, second, "Groups should always be split")
	})
}

func TestSettlementIsSymmetric(t *testing.T) {
	t.Run("winner pays and loser is paid", func(t *testing.T) {
		r := NewStandardRules()
		me, opp := NewState(), NewState()
		myBid := Bid{Group: A, Amount: 3000}
		oppBid := Bid{Group: A, Amount: 1000}

		mine, theirs := r.Resolve(myBid, oppBid)
		me.ApplyBid(myBid, mine)
		opp.ApplyBid(oppBid, theirs)

		require.Equal(t, -3000, me.Ledger())
		require.Equal(t, 1000, opp.Ledger())
	})

	t.Run("zero bids leave ledgers alone", func(t *testing.T) {
		r := NewStandardRules()
		me, opp := NewState(), NewState()
		bid := Bid{Group: B}

		mine, theirs := r.Resolve(bid, bid)
		me.ApplyBid(bid, mine)
		opp.ApplyBid(bid, theirs)

		require.Zero(t, me.Ledger())
		require.Zero(t, opp.Ledger())
	})
}

func TestSchedule(t *testing.T) {
	r := NewStandardRules()
	rolls, places := 0, 0
	for round := 1; round <= r.Rounds(); round++ {
		if r.Rolls(round) {
			rolls++
		}
		if r.Places(round) {
			places++
		}
	}

	require.Equal(t, NUM_CATEGORIES, rolls, "One award per category")
	require.Equal(t, NUM_CATEGORIES, places, "One placement per category")
	require.False(t, r.Places(1), "Nothing to place in the first round")
	require.False(t, r.Rolls(r.Rounds()), "Nothing is rolled in the last round")
}

func TestClampBid(t *testing.T) {
	r := NewStandardRules()

	require.Equal(t, 0, ClampBid(r, -5))
	require.Equal(t, 4200, ClampBid(r, 4200))
	require.Equal(t, MAX_BID, ClampBid(r, MAX_BID+1))
}
