package game

import "golang.org/x/exp/rand"

// Rules is the judge side of a match: schedule and bid resolution.
type Rules interface {
	Rounds() int
	MaxBid() int
	// Rolls reports whether two groups are revealed in round.
	Rolls(round int) bool
	// Places reports whether each agent commits a hand in round.
	Places(round int) bool
	// Resolve returns the groups awarded to the first and second bidder.
	Resolve(first, second Bid) (Group, Group)
}

type TieBreak int

const (
	TieFirst TieBreak = iota
	TieSecond
	TieRandom
)

type StandardRules struct {
	NumRounds    int
	MaxBidAmount int
	TieBreak     TieBreak
	Rand         *rand.Rand // only used by TieRandom
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		NumRounds:    ROUNDS,
		MaxBidAmount: MAX_BID,
		TieBreak:     TieFirst,
	}
}

func (sr *StandardRules) Rounds() int {
	return sr.NumRounds
}

func (sr *StandardRules) MaxBid() int {
	return sr.MaxBidAmount
}

// Groups are revealed every round but the last.
func (sr *StandardRules) Rolls(round int) bool {
	return round >= 1 && round < sr.NumRounds
}

// Nothing is held before the first award, so placing starts in round two.
func (sr *StandardRules) Places(round int) bool {
	return round >= 2 && round <= sr.NumRounds
}

// Resolve gives each bidder its named group when they differ. When both name
// the same group the higher amount takes it and the other bidder gets the
// remaining group.
func (sr *StandardRules) Resolve(first, second Bid) (Group, Group) {
	if first.Group != second.Group {
		return first.Group, second.Group
	}
	contested := first.Group
	firstWins := first.Amount > second.Amount
	if first.Amount == second.Amount {
		firstWins = sr.breakTie()
	}
	if firstWins {
		return contested, contested.Other()
	}
	return contested.Other(), contested
}

func (sr *StandardRules) breakTie() bool {
	switch sr.TieBreak {
	case TieSecond:
		return false
	case TieRandom:
		if sr.Rand == nil {
			panic("TieRandom requires a random source")
		}
		return sr.Rand.Intn(2) == 0
	}
	return true
}

// ClampBid bounds an amount to what the rules accept.
func ClampBid(r Rules, amount int) int {
	return max(0, min(amount, r.MaxBid()))
}
