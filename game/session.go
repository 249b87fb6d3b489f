package game

// Session is everything one agent knows about the game in progress. It is
// passed explicitly to every decision.
type Session struct {
	Rules   Rules
	Round   int
	Me      *State
	Opp     *State
	Groups  [2]Hand
	LastBid Bid
	OppBids map[int]int // revealed opponent amounts by round
}

func NewSession(rules Rules) *Session {
	if rules == nil {
		rules = NewStandardRules()
	}
	return &Session{
		Rules:   rules,
		Me:      NewState(),
		Opp:     NewState(),
		OppBids: make(map[int]int),
	}
}

func (s *Session) State(side Side) *State {
	if side == Opponent {
		return s.Opp
	}
	return s.Me
}

// Group returns the dice revealed for g this round.
func (s *Session) Group(g Group) Hand {
	return s.Groups[g]
}

// PlacementRound derives the current placement round from the scorecard:
// one category is filled per round, the last in the final round.
func (s *Session) PlacementRound() int {
	return s.Rules.Rounds() - len(s.Me.Open()) + 1
}

// PlacementsLeft counts placements still due after the current one.
func (s *Session) PlacementsLeft() int {
	return max(0, len(s.Me.Open())-1)
}

// LowestOppBid returns the smallest amount the opponent has revealed.
func (s *Session) LowestOppBid() (int, bool) {
	return s.oppBid(func(a, b int) bool { return a < b })
}

// HighestOppBid returns the largest amount the opponent has revealed.
func (s *Session) HighestOppBid() (int, bool) {
	return s.oppBid(func(a, b int) bool { return a > b })
}

func (s *Session) oppBid(better func(a, b int) bool) (int, bool) {
	found := false
	best := 0
	for _, amount := range s.OppBids {
		if !found || better(amount, best) {
			best = amount
			found = true
		}
	}
	return best, found
}
