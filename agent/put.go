package agent

import (
	"fmt"
	"math"

	"yacht/game"
	"yacht/searcher"

	"github.com/rs/zerolog/log"
)

// Placer chooses which five dice to commit and where.
type Placer struct {
	estimator *searcher.Estimator
	weights   PlaceWeights
	policy    DeferralPolicy
}

func NewPlacer(estimator *searcher.Estimator, weights PlaceWeights, policy DeferralPolicy) *Placer {
	return &Placer{
		estimator: estimator,
		weights:   weights,
		policy:    policy,
	}
}

// Put selects a placement for the session's own pool. It does not apply it.
func (p *Placer) Put(s *game.Session) (game.DicePut, error) {
	pool := s.Me.Pool()
	open := s.Me.Open()
	if len(open) == 0 {
		return game.DicePut{}, fmt.Errorf("put in round %d: %w", s.PlacementRound(), game.ErrCategoryFilled)
	}
	if len(pool) < game.HAND_SIZE {
		return game.DicePut{}, fmt.Errorf("put in round %d with %d dice: %w", s.PlacementRound(), len(pool), game.ErrPoolTooSmall)
	}

	if split, ok := p.estimator.BestSplit(pool, open, s.Me.Upper()); ok {
		put := split.Best()
		log.Debug().Int("round", s.PlacementRound()).Int("total", split.Total).Msgf("exact split places %s", put)
		return put, nil
	}
	return p.Choose(pool, open, s.PlacementsLeft(), s.Me.Upper()), nil
}

// Choose weighs every candidate placement by its score, what deferring the
// category would have been worth, any bonus it realises and what the kept
// dice can still make. Left is the number of placements due afterwards.
func (p *Placer) Choose(pool []game.Die, open []game.Category, left int, upper int) game.DicePut {
	var best game.DicePut
	bestValue := math.Inf(-1)

	p.estimator.Walk(pool, open, func(h game.Hand) bool {
		rest := searcher.Leftover(pool, h)
		for _, c := range open {
			score := game.Score(c, h)
			value := float64(score) + float64(searcher.Bonus(upper, c, score))
			value -= p.policy.Cost(c, score, left)
			if left > 0 {
				value += p.weights.CarryWeight * float64(p.carry(rest, open, c))
			}
			if value > bestValue || (value == bestValue && sacrificeRank(c) < sacrificeRank(best.Category)) {
				best = game.DicePut{Category: c, Hand: h}
				bestValue = value
			}
		}
		return true
	})

	log.Debug().Int("left", left).Float64("value", bestValue).Msgf("placing %s", best)
	return best
}

// carry is the best score the kept dice make in the categories still open
// after filling used.
func (p *Placer) carry(rest []game.Die, open []game.Category, used game.Category) int {
	if len(rest) == 0 {
		return 0
	}
	return p.estimator.Best(rest, without(open, used)).Score
}
