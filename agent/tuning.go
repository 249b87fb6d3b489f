package agent

import "yacht/game"

// BidWeights shape how much of a group's value is offered for it.
type BidWeights struct {
	BidFraction      float64 // share of the swing offered
	FinalBidFraction float64 // share of the exact margin offered in the last auction
	BlockWeight      float64 // weight of the opponent's gain from a group
	BlockThreshold   int     // block value that makes a bid urgent
	BlockFloor       int     // minimum urgent bid
	GapSensitivity   float64 // how much the score gap moves the bid
	MinGapFactor     float64
	MaxGapFactor     float64
	NoAdvantage      int     // swings below this are not worth paying for
	HedgeMargin      int     // opponent preferences weaker than this are uncertain
	CarryWeight      float64 // weight of the dice kept after the next placement
}

type PlaceWeights struct {
	CarryWeight float64 // weight of the best hand the leftover dice still make
}

type Tuning struct {
	Bid   BidWeights
	Place PlaceWeights
	Defer DeferralPolicy
}

// DefaultTuning counts the opponent's gain in full, offers half of a contested
// group's swing and defers pattern categories while completion is still likely.
var DefaultTuning = Tuning{
	Bid: BidWeights{
		BidFraction:      0.5,
		FinalBidFraction: 0.5,
		BlockWeight:      1.0,
		BlockThreshold:   15000,
		BlockFloor:       5001,
		GapSensitivity:   0.5,
		MinGapFactor:     0.5,
		MaxGapFactor:     1.5,
		NoAdvantage:      1000,
		HedgeMargin:      2000,
		CarryWeight:      0.5,
	},
	Place: PlaceWeights{
		CarryWeight: 0.5,
	},
	Defer: DeferralPolicy{
		Par: [game.NUM_CATEGORIES]int{
			3000, 6000, 9000, 12000, 15000, 18000,
			0, 22000, 20000, 15000, 30000, 50000,
		},
		Chance: [game.NUM_CATEGORIES]float64{
			0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
			1, 0.15, 0.3, 0.35, 0.2, 0.06,
		},
		Weight: 0.6,
	},
}
