package agent

import (
	"yacht/game"
	"yacht/searcher"

	"github.com/rs/zerolog/log"
)

// Categories that are hard to make again once the opponent takes them.
var hardCategories = map[game.Category]bool{
	game.Yacht:         true,
	game.LargeStraight: true,
	game.FourOfAKind:   true,
	game.FullHouse:     true,
	game.SmallStraight: true,
}

// BidStrategist decides which group to bid for and how much to offer.
type BidStrategist struct {
	estimator *searcher.Estimator
	weights   BidWeights
}

func NewBidStrategist(estimator *searcher.Estimator, weights BidWeights) *BidStrategist {
	return &BidStrategist{
		estimator: estimator,
		weights:   weights,
	}
}

// outlook is what one side would make of each group.
type outlook struct {
	value [2]int
	best  [2]searcher.Candidate
}

func (o outlook) margin(g game.Group) int {
	return o.value[g] - o.value[g.Other()]
}

// prefers returns the group worth more and how strongly.
func (o outlook) prefers() (game.Group, int) {
	m := o.margin(game.A)
	if m >= 0 {
		return game.A, m
	}
	return game.B, -m
}

// Observe records the opponent's revealed amount for round. It is the only
// writer of the bid history.
func (b *BidStrategist) Observe(s *game.Session, round int, amount int) {
	s.OppBids[round] = amount
}

func (b *BidStrategist) Bid(s *game.Session) game.Bid {
	if bid, ok := b.finalBid(s); ok {
		return bid
	}

	self := b.outlook(s.Me, s.Groups)
	opp := b.outlook(s.Opp, s.Groups)

	var block [2]int
	for _, g := range []game.Group{game.A, game.B} {
		block[g] = b.blockValue(opp, g)
	}

	var swing [2]float64
	for _, g := range []game.Group{game.A, game.B} {
		swing[g] = float64(self.margin(g)) + b.weights.BlockWeight*float64(block[g])
	}
	group := b.pick(s, swing)
	urgent := block[group] >= b.weights.BlockThreshold

	ceiling := 0.0
	if swing[group] >= float64(b.weights.NoAdvantage) {
		ceiling = swing[group] * b.weights.BidFraction * b.gapFactor(s)
	}
	if urgent {
		ceiling = max(ceiling, float64(b.weights.BlockFloor))
	}

	oppGroup, oppMargin := opp.prefers()
	contested := oppGroup == group || urgent
	amount := 0
	switch {
	case ceiling <= 0:
	case contested:
		amount = b.calibrate(s, int(ceiling), urgent)
	case oppMargin < b.weights.HedgeMargin:
		// The opponent may still come for this group.
		if b.estimator.Rand().Intn(2) == 0 {
			amount = b.calibrate(s, int(ceiling), false)
		}
	}

	bid := game.Bid{Group: group, Amount: game.ClampBid(s.Rules, amount)}
	log.Debug().
		Int("round", s.Round).
		Float64("swing", swing[group]).
		Int("block", block[group]).
		Bool("contested", contested).
		Msgf("bidding %s", bid)
	return bid
}

// outlook values the state's pool grown by each group.
func (b *BidStrategist) outlook(st *game.State, groups [2]game.Hand) outlook {
	var o outlook
	open := st.Open()
	if len(open) == 0 {
		return o
	}
	upper := st.Upper()
	for _, g := range []game.Group{game.A, game.B} {
		pool := append(st.Pool(), groups[g].Dice()...)
		best := b.estimator.Best(pool, open)
		value := float64(best.Score + searcher.Bonus(upper, best.Category, best.Score))
		if rest := searcher.Leftover(pool, best.Hand); len(rest) > 0 && len(open) > 1 {
			value += b.weights.CarryWeight * float64(b.estimator.Best(rest, without(open, best.Category)).Score)
		}
		o.value[g] = int(value)
		o.best[g] = best
	}
	return o
}

// blockValue is how much more the opponent makes from g than from the other
// group when g hands it a hard category the other group does not.
func (b *BidStrategist) blockValue(opp outlook, g game.Group) int {
	best := opp.best[g]
	if !hardCategories[best.Category] || best.Score == 0 {
		return 0
	}
	other := opp.best[g.Other()]
	if other.Category == best.Category && other.Score >= best.Score {
		return 0
	}
	return max(0, opp.margin(g))
}

// pick takes the group with the larger swing, then the larger dice sum, then
// a coin flip.
func (b *BidStrategist) pick(s *game.Session, swing [2]float64) game.Group {
	switch {
	case swing[game.A] > swing[game.B]:
		return game.A
	case swing[game.B] > swing[game.A]:
		return game.B
	}
	sumA, sumB := s.Groups[game.A].Sum(), s.Groups[game.B].Sum()
	switch {
	case sumA > sumB:
		return game.A
	case sumB > sumA:
		return game.B
	}
	return game.Group(b.estimator.Rand().Intn(2))
}

// gapFactor bids harder when behind and softer when ahead.
func (b *BidStrategist) gapFactor(s *game.Session) float64 {
	lead := game.Lead(s.Me, s.Opp)
	factor := 1 - b.weights.GapSensitivity*lead
	return min(b.weights.MaxGapFactor, max(b.weights.MinGapFactor, factor))
}

// calibrate aims just above the opponent's lowest revealed bid, or its
// highest when blocking. A ceiling short of the target is bid as is: losing
// the group pays the amount back.
func (b *BidStrategist) calibrate(s *game.Session, ceiling int, urgent bool) int {
	target, ok := s.LowestOppBid()
	if urgent {
		target, ok = s.HighestOppBid()
	}
	if !ok {
		return ceiling
	}
	if ceiling >= target+1 {
		return target + 1
	}
	return ceiling
}

// finalBid handles the last auction, where the pool plus either group splits
// exactly into the open categories.
func (b *BidStrategist) finalBid(s *game.Session) (game.Bid, bool) {
	var totals [2]int
	for _, g := range []game.Group{game.A, game.B} {
		pool := append(s.Me.Pool(), s.Groups[g].Dice()...)
		split, ok := b.estimator.BestSplit(pool, s.Me.Open(), s.Me.Upper())
		if !ok {
			return game.Bid{}, false
		}
		totals[g] = split.Total
	}
	margin := totals[game.A] - totals[game.B]
	group := game.A
	if margin < 0 {
		group, margin = game.B, -margin
	} else if margin == 0 {
		group = b.pick(s, [2]float64{})
	}
	amount := int(float64(margin) * b.weights.FinalBidFraction)

	log.Debug().Int("round", s.Round).Int("margin", margin).Msgf("final auction for %s", group)
	return game.Bid{Group: group, Amount: game.ClampBid(s.Rules, amount)}, true
}

func without(open []game.Category, used game.Category) []game.Category {
	rest := make([]game.Category, 0, len(open))
	for _, c := range open {
		if c != used {
			rest = append(rest, c)
		}
	}
	return rest
}
