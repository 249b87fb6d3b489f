package agent

import (
	"fmt"

	"yacht/game"
	"yacht/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(a *Agent)

type DecisionKind string

const (
	BidDecision DecisionKind = "bid"
	PutDecision DecisionKind = "put"
)

// DecisionMetric is the search effort behind one bid or placement.
type DecisionMetric struct {
	Round int
	Kind  DecisionKind
	searcher.SearchMetric
}

// Agent plays one side of a game. It keeps the session and answers the
// judge's requests one at a time.
type Agent struct {
	rules     game.Rules
	tuning    Tuning
	seed      uint64
	estimator *searcher.Estimator
	session   *game.Session
	bidder    *BidStrategist
	placer    *Placer
	metrics   []DecisionMetric
}

// WithEstimator replaces the default estimator. WithSeed is then ignored.
func WithEstimator(estimator *searcher.Estimator) Option {
	return func(a *Agent) {
		if estimator != nil {
			a.estimator = estimator
		}
	}
}

func WithTuning(tuning Tuning) Option {
	return func(a *Agent) {
		a.tuning = tuning
	}
}

func WithRules(rules game.Rules) Option {
	return func(a *Agent) {
		if rules != nil {
			a.rules = rules
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.seed = seed
	}
}

// New returns an agent with an empty session.
func New(options ...Option) *Agent {
	a := &Agent{ // Default values
		rules:  game.NewStandardRules(),
		tuning: DefaultTuning,
		seed:   searcher.DEFAULT_SEED,
	}
	for _, option := range options {
		option(a)
	}
	if a.estimator == nil {
		a.estimator = searcher.NewEstimator(searcher.WithSeed(a.seed))
	}
	a.session = game.NewSession(a.rules)
	a.bidder = NewBidStrategist(a.estimator, a.tuning.Bid)
	a.placer = NewPlacer(a.estimator, a.tuning.Place, a.tuning.Defer)
	return a
}

// OnRoll records the revealed groups and returns this agent's bid.
func (a *Agent) OnRoll(round int, groupA, groupB game.Hand) game.Bid {
	s := a.session
	s.Round = round
	s.Groups = [2]game.Hand{groupA, groupB}

	a.estimator.Start()
	bid := a.bidder.Bid(s)
	a.record(round, BidDecision)

	s.LastBid = bid
	return bid
}

// OnAward applies the judge's resolution to both sides.
func (a *Agent) OnAward(mine, theirs game.Hand, myBid, oppBid game.Bid, myGroup game.Group) {
	s := a.session
	s.Me.AddDice(mine)
	s.Opp.AddDice(theirs)
	s.Me.ApplyBid(myBid, myGroup)
	s.Opp.ApplyBid(oppBid, myGroup.Other())
	a.bidder.Observe(s, s.Round, oppBid.Amount)

	log.Debug().
		Int("round", s.Round).
		Str("group", myGroup.String()).
		Int("ledger", s.Me.Ledger()).
		Msgf("awarded %s", mine)
}

// OnRequestPlacement selects a placement and applies it to this agent's
// state before returning it.
func (a *Agent) OnRequestPlacement() (game.DicePut, error) {
	s := a.session
	round := s.PlacementRound()

	a.estimator.Start()
	put, err := a.placer.Put(s)
	if err != nil {
		return game.DicePut{}, err
	}
	a.record(round, PutDecision)

	if err := s.Me.Place(put); err != nil {
		return game.DicePut{}, fmt.Errorf("apply own placement: %w", err)
	}
	return put, nil
}

// OnOpponentPlacement mirrors the opponent's placement.
func (a *Agent) OnOpponentPlacement(put game.DicePut) error {
	if err := a.session.Opp.Place(put); err != nil {
		return fmt.Errorf("apply opponent placement: %w", err)
	}
	return nil
}

func (a *Agent) TotalScore(side game.Side) int {
	return a.session.State(side).Total()
}

// Session exposes the agent's view of the game for drivers and tests.
func (a *Agent) Session() *game.Session {
	return a.session
}

// Metrics returns the search metrics of every decision so far.
func (a *Agent) Metrics() []DecisionMetric {
	return a.metrics
}

func (a *Agent) record(round int, kind DecisionKind) {
	metric := a.estimator.Complete()
	a.metrics = append(a.metrics, DecisionMetric{Round: round, Kind: kind, SearchMetric: metric})
}
