package agent

import (
	"math"

	"yacht/game"
)

// DeferralPolicy prices filling a category now with a score below what it
// could still reach in the placements that remain.
type DeferralPolicy struct {
	Par    [game.NUM_CATEGORIES]int     // typical score once the category is made
	Chance [game.NUM_CATEGORIES]float64 // chance of making it in one placement
	Weight float64
}

// Complete reports whether score already makes c. Choice is always made.
func (p DeferralPolicy) Complete(c game.Category, score int) bool {
	switch {
	case c == game.Choice:
		return true
	case c.IsUpper():
		return score >= 3*int(c.Face())*1000
	}
	return score > 0
}

// Expected is the score c is likely to reach with left more placements.
func (p DeferralPolicy) Expected(c game.Category, left int) float64 {
	if left <= 0 {
		return 0
	}
	miss := math.Pow(1-p.Chance[c], float64(left))
	return float64(p.Par[c]) * (1 - miss)
}

// Cost is what filling c with score gives up. It is zero once score makes
// the category or no placement is left to wait for.
func (p DeferralPolicy) Cost(c game.Category, score int, left int) float64 {
	if left <= 0 || p.Complete(c, score) {
		return 0
	}
	return p.Weight * max(0, p.Expected(c, left)-float64(score))
}

// sacrificeOrder ranks categories to give up first when values tie.
var sacrificeOrder = map[game.Category]int{
	game.Yacht:         0,
	game.LargeStraight: 1,
	game.FourOfAKind:   2,
	game.SmallStraight: 3,
	game.FullHouse:     4,
	game.One:           5,
	game.Two:           6,
}

func sacrificeRank(c game.Category) int {
	if rank, ok := sacrificeOrder[c]; ok {
		return rank
	}
	return len(sacrificeOrder) + int(c)
}
