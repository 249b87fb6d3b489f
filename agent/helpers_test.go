package agent

import (
	"slices"
	"testing"

	"yacht/game"
	"yacht/searcher"

	"github.com/stretchr/testify/require"
)

func hand(t *testing.T, s string) game.Hand {
	t.Helper()
	h, err := game.ParseHand(s)
	require.NoError(t, err)
	return h
}

func dice(s string) []game.Die {
	pool := make([]game.Die, len(s))
	for i, r := range s {
		pool[i] = game.Die(r - '0')
	}
	return pool
}

// fill scores every category except keep with five ones, leaving the pool empty.
func fill(t *testing.T, st *game.State, keep ...game.Category) {
	t.Helper()
	ones := game.NewHand(1, 1, 1, 1, 1)
	for _, c := range game.Categories {
		if slices.Contains(keep, c) {
			continue
		}
		st.AddDice(ones)
		require.NoError(t, st.Place(game.DicePut{Category: c, Hand: ones}))
	}
}

func isSubset(pool []game.Die, h game.Hand) bool {
	for _, d := range h {
		i := slices.Index(pool, d)
		if i < 0 {
			return false
		}
		pool = slices.Delete(slices.Clone(pool), i, i+1)
	}
	return true
}

func newSession() *game.Session {
	return game.NewSession(game.NewStandardRules())
}

func newEstimator() *searcher.Estimator {
	return searcher.NewEstimator(searcher.WithSeed(1))
}
