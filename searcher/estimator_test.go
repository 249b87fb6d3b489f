package searcher

import (
	"testing"
	"time"

	"yacht/game"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func dice(s string) []game.Die {
	pool := make([]game.Die, len(s))
	for i, r := range s {
		pool[i] = game.Die(r - '0')
	}
	return pool
}

func randomPool(rng *rand.Rand, n int) []game.Die {
	pool := make([]game.Die, n)
	for i := range pool {
		pool[i] = game.Die(rng.Intn(game.FACES) + 1)
	}
	return pool
}

// bruteForce scores every index combination of five dice.
func bruteForce(pool []game.Die, open []game.Category) int {
	best := 0
	n := len(pool)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						h := game.Hand{pool[a], pool[b], pool[c], pool[d], pool[e]}
						for _, cat := range open {
							best = max(best, game.Score(cat, h))
						}
					}
				}
			}
		}
	}
	return best
}

func isSubset(pool []game.Die, h game.Hand) bool {
	counts := countPool(pool)
	for _, d := range h {
		if d == 0 {
			continue
		}
		counts[d]--
		if counts[d] < 0 {
			return false
		}
	}
	return true
}

func TestEstimatorBest(t *testing.T) {
	t.Run("picks the maximum scoring category", func(t *testing.T) {
		e := NewEstimator()

		got := e.Best(dice("11122"), []game.Category{game.One, game.Choice})

		require.Equal(t, game.Choice, got.Category, "Choice scores 7000 against 3000 for ones")
		require.Equal(t, 7000, got.Score)
	})

	t.Run("exhaustive search matches brute force", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		e := NewEstimator()
		for i := 0; i < 20; i++ {
			pool := randomPool(rng, 10)

			got := e.Best(pool, game.Categories)

			require.Equal(t, bruteForce(pool, game.Categories), got.Score, "pool %v", pool)
			require.True(t, isSubset(pool, got.Hand), "Hand %v should come from pool %v", got.Hand, pool)
		}
	})

	t.Run("short pools are padded", func(t *testing.T) {
		e := NewEstimator()

		got := e.Best(dice("666"), []game.Category{game.Six, game.Yacht})

		require.Equal(t, game.Six, got.Category)
		require.Equal(t, 18000, got.Score)
	})

	t.Run("no open categories", func(t *testing.T) {
		e := NewEstimator()

		require.Equal(t, Candidate{}, e.Best(dice("12345"), nil))
	})

	t.Run("single category", func(t *testing.T) {
		e := NewEstimator()

		got := e.BestFor(dice("1234566543"), game.LargeStraight)

		require.Equal(t, 30000, got.Score)
	})
}

func TestEstimatorSampling(t *testing.T) {
	t.Run("sampling never beats exhaustive search", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 10; i++ {
			pool := randomPool(rng, 15)
			sampled := NewEstimator(WithSamples(20), WithSeed(uint64(i)))
			full := NewEstimator(WithExhaustiveLimit(5000))

			got := sampled.Best(pool, game.Categories)
			want := full.Best(pool, game.Categories)

			require.LessOrEqual(t, got.Score, want.Score, "pool %v", pool)
			require.True(t, isSubset(pool, got.Hand), "Sampled hand %v should come from pool %v", got.Hand, pool)
		}
	})

	t.Run("a larger budget never does worse", func(t *testing.T) {
		pool := dice("112233445566123")
		open := []game.Category{game.Choice, game.FullHouse, game.SmallStraight}

		prev := -1
		for _, budget := range []int{1, 5, 25, 125, 625} {
			e := NewEstimator(WithSamples(budget), WithSeed(3))

			got := e.Best(pool, open).Score

			require.GreaterOrEqual(t, got, prev, "budget %d should not lose to a smaller budget", budget)
			prev = got
		}
	})

	t.Run("seeds cover the obvious hands", func(t *testing.T) {
		pool := dice("666661234512345")
		e := NewEstimator(WithSamples(1), WithSeed(5))

		got := e.Best(pool, []game.Category{game.Yacht, game.LargeStraight})

		require.Equal(t, 50000, got.Score, "The yacht seed should be found without sampling")
	})

	t.Run("deadline stops the search with a valid answer", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		pool := randomPool(rng, 30)
		e := NewEstimator(WithSamples(1_000_000), WithDuration(time.Nanosecond), WithMetrics())

		e.Start()
		got := e.Best(pool, game.Categories)
		metric := e.Complete()

		require.True(t, isSubset(pool, got.Hand), "Hand should come from the pool")
		require.True(t, metric.Truncated, "Search should report truncation")
		require.True(t, metric.Sampled, "A 30 dice pool is sampled")
		require.Less(t, metric.Candidates, int64(1_000_000), "Search should stop early")
	})
}

func TestEstimatorWalk(t *testing.T) {
	t.Run("distinct hands are visited once", func(t *testing.T) {
		e := NewEstimator()
		seen := map[game.Hand]int{}

		e.Walk(dice("1111122222"), nil, func(h game.Hand) bool {
			seen[h.Sorted()]++
			return true
		})

		require.Len(t, seen, 6, "Five dice from five ones and five twos form six multisets")
		for h, n := range seen {
			require.Equal(t, 1, n, "hand %v visited more than once", h)
		}
	})

	t.Run("visit can stop the walk", func(t *testing.T) {
		e := NewEstimator()
		visits := 0

		e.Walk(dice("1234561234"), nil, func(h game.Hand) bool {
			visits++
			return visits < 3
		})

		require.Equal(t, 3, visits)
	})
}

func TestEstimatorBestAssignment(t *testing.T) {
	t.Run("splits ten dice exactly", func(t *testing.T) {
		e := NewEstimator()
		open := []game.Category{game.LargeStraight, game.Yacht}

		got, ok := e.BestAssignment(dice("6162636465"), open)

		require.True(t, ok)
		require.Equal(t, 80000, got.Total)
		want := []game.DicePut{
			{Category: game.LargeStraight, Hand: game.Hand{1, 2, 3, 4, 5}},
			{Category: game.Yacht, Hand: game.Hand{6, 6, 6, 6, 6}},
		}
		sorted := make([]game.DicePut, len(got.Puts))
		for i, put := range got.Puts {
			sorted[i] = game.DicePut{Category: put.Category, Hand: put.Hand.Sorted()}
		}
		if diff := cmp.Diff(want, sorted); diff != "" {
			t.Errorf("assignment mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, game.Yacht, got.Best().Category, "Yacht is the larger half")
	})

	t.Run("matches brute force over every split", func(t *testing.T) {
		rng := rand.New(rand.NewSource(17))
		e := NewEstimator()
		for i := 0; i < 10; i++ {
			pool := randomPool(rng, 10)
			open := []game.Category{game.Categories[rng.Intn(6)], game.Categories[6+rng.Intn(6)]}

			got, ok := e.BestAssignment(pool, open)

			require.True(t, ok)
			require.Equal(t, bruteForceSplit(pool, open[0], open[1]), got.Total, "pool %v open %v", pool, open)
		}
	})

	t.Run("counts the upper bonus when asked", func(t *testing.T) {
		e := NewEstimator()
		pool := dice("1116666666")
		open := []game.Category{game.One, game.Choice}

		plain, ok := e.BestAssignment(pool, open)
		require.True(t, ok)
		withBonus, ok := e.BestSplit(pool, open, 60000)
		require.True(t, ok)

		require.Equal(t, 33000, plain.Total)
		require.Equal(t, 33000+game.UPPER_BONUS, withBonus.Total, "Three ones take the upper section to 63000")
	})

	t.Run("refuses other shapes", func(t *testing.T) {
		e := NewEstimator(WithExactLimit(2))

		_, ok := e.BestAssignment(dice("123456"), []game.Category{game.One, game.Two})
		require.False(t, ok, "Pool must hold five dice per category")

		_, ok = e.BestAssignment(dice("123451234512345"), []game.Category{game.One, game.Two, game.Three})
		require.False(t, ok, "Three categories exceed the exact limit")

		_, ok = e.BestAssignment(nil, nil)
		require.False(t, ok)
	})
}

func bruteForceSplit(pool []game.Die, first, second game.Category) int {
	best := 0
	for mask := 0; mask < 1<<len(pool); mask++ {
		var in, out []game.Die
		for i, d := range pool {
			if mask&(1<<i) != 0 {
				in = append(in, d)
			} else {
				out = append(out, d)
			}
		}
		if len(in) != game.HAND_SIZE {
			continue
		}
		best = max(best, game.Score(first, game.NewHand(in...))+game.Score(second, game.NewHand(out...)))
	}
	return best
}
