package searcher

import (
	"yacht/game"

	"golang.org/x/exp/rand"
)

type faceCounts = [game.FACES + 1]int

func countPool(pool []game.Die) faceCounts {
	var counts faceCounts
	for _, d := range pool {
		counts[d]++
	}
	return counts
}

// enumerate visits every distinct five-dice sub-multiset of counts exactly
// once. It stops early when visit returns false and reports whether it ran
// to completion.
func enumerate(counts faceCounts, visit func(game.Hand) bool) bool {
	var hand game.Hand
	var walk func(face, filled int) bool
	walk = func(face, filled int) bool {
		if filled == game.HAND_SIZE {
			return visit(hand)
		}
		if face > game.FACES {
			return true
		}
		for k := min(counts[face], game.HAND_SIZE-filled); k >= 0; k-- {
			for i := 0; i < k; i++ {
				hand[filled+i] = game.Die(face)
			}
			if !walk(face+1, filled+k) {
				return false
			}
		}
		return true
	}
	return walk(1, 0)
}

// sample draws up to n random five-dice subsets of pool. Each draw consumes
// the same random numbers whatever n is, so a larger n extends the sequence a
// smaller n produces.
func sample(pool []game.Die, n int, rng *rand.Rand, visit func(game.Hand) bool) bool {
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for s := 0; s < n; s++ {
		var hand game.Hand
		for i := 0; i < game.HAND_SIZE; i++ {
			j := i + rng.Intn(len(idx)-i)
			idx[i], idx[j] = idx[j], idx[i]
			hand[i] = pool[idx[i]]
		}
		if !visit(hand) {
			return false
		}
	}
	return true
}

// subtract removes the dice of h from counts.
func subtract(counts faceCounts, h game.Hand) faceCounts {
	for _, d := range h {
		counts[d]--
	}
	return counts
}

func handFromCounts(counts faceCounts) game.Hand {
	var h game.Hand
	n := 0
	for face := 1; face <= game.FACES; face++ {
		for k := 0; k < counts[face] && n < game.HAND_SIZE; k++ {
			h[n] = game.Die(face)
			n++
		}
	}
	return h
}

// Leftover returns the dice of pool that h does not use.
func Leftover(pool []game.Die, h game.Hand) []game.Die {
	counts := subtract(countPool(pool), h)
	rest := make([]game.Die, 0, len(pool))
	for face := 1; face <= game.FACES; face++ {
		for k := 0; k < counts[face]; k++ {
			rest = append(rest, game.Die(face))
		}
	}
	return rest
}
