package searcher

import "yacht/game"

// Search limits

// C(10,5): every pool an agent holds after an award is searched in full.
const DEFAULT_EXHAUSTIVE_LIMIT = 252

// Hands drawn when a pool is too large to enumerate.
const DEFAULT_SAMPLES = 300

// Largest number of open categories split exactly in the endgame.
const DEFAULT_EXACT_LIMIT = 3

// Deadline is checked once per this many candidates.
const DEADLINE_STRIDE = 32

const DEFAULT_SEED = 1

// Passed as the upper subtotal to ignore the bonus.
const NO_BONUS = -1

// Candidate is a hand scored against one category.
type Candidate struct {
	Category game.Category
	Hand     game.Hand
	Score    int
}

func (c Candidate) Put() game.DicePut {
	return game.DicePut{Category: c.Category, Hand: c.Hand}
}

// Assignment splits a pool into one hand per open category.
type Assignment struct {
	Puts  []game.DicePut
	Total int
}

// Best returns the highest scoring put of the assignment.
func (a Assignment) Best() game.DicePut {
	best, bestScore := a.Puts[0], -1
	for _, put := range a.Puts {
		if s := game.Score(put.Category, put.Hand); s > bestScore {
			best, bestScore = put, s
		}
	}
	return best
}
