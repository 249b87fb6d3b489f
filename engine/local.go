package engine

import (
	"fmt"
	"time"

	"yacht/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(l *Local)

// Local runs a match between two in-process players and keeps the
// authoritative copy of both states.
type Local struct {
	players [2]Player
	rules   game.Rules
	rng     *rand.Rand
	states  [2]*game.State
}

func WithRules(rules game.Rules) Option {
	return func(l *Local) {
		if rules != nil {
			l.rules = rules
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(l *Local) {
		if rng != nil {
			l.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(l *Local) {
		l.rng = rand.New(rand.NewSource(seed))
	}
}

func NewLocal(players [2]Player, options ...Option) *Local {
	if players[0] == nil || players[1] == nil {
		panic("a match needs two players")
	}
	l := &Local{ // Default values
		players: players,
		rules:   game.NewStandardRules(),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		states:  [2]*game.State{game.NewState(), game.NewState()},
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Run plays every round. A placement the authoritative state rejects ends the
// match with an error naming the offending player.
func (l *Local) Run() (Result, error) {
	result := Result{
		ID:        uuid.New(),
		Winner:    -1,
		StartTime: time.Now(),
	}
	log.Info().Msgf("match %s starting", result.ID)

	for round := 1; round <= l.rules.Rounds(); round++ {
		record := RoundRecord{Round: round}
		if l.rules.Rolls(round) {
			l.auction(round, &record)
		}
		if l.rules.Places(round) {
			if err := l.placements(&record); err != nil {
				return result, fmt.Errorf("match %s round %d: %w", result.ID, round, err)
			}
		}
		result.Rounds = append(result.Rounds, record)
	}

	for i, st := range l.states {
		result.Scores[i] = st.Total()
	}
	switch {
	case result.Scores[0] > result.Scores[1]:
		result.Winner = 0
	case result.Scores[1] > result.Scores[0]:
		result.Winner = 1
	}
	result.Duration = time.Since(result.StartTime)

	for i, p := range l.players {
		if f, ok := p.(Finisher); ok {
			if err := f.Finish(); err != nil {
				return result, fmt.Errorf("match %s player %d: %w", result.ID, i, err)
			}
		}
	}

	log.Info().Msgf("match %s finished %d to %d in %s", result.ID, result.Scores[0], result.Scores[1], result.Duration)
	return result, nil
}

func (l *Local) auction(round int, record *RoundRecord) {
	record.Groups = [2]game.Hand{l.roll(), l.roll()}
	for i, p := range l.players {
		bid := p.OnRoll(round, record.Groups[game.A], record.Groups[game.B])
		bid.Amount = game.ClampBid(l.rules, bid.Amount)
		record.Bids[i] = bid
	}
	record.Awarded[0], record.Awarded[1] = l.rules.Resolve(record.Bids[0], record.Bids[1])

	for i, p := range l.players {
		other := 1 - i
		mine := record.Groups[record.Awarded[i]]
		theirs := record.Groups[record.Awarded[other]]
		l.states[i].AddDice(mine)
		l.states[i].ApplyBid(record.Bids[i], record.Awarded[i])
		p.OnAward(mine, theirs, record.Bids[i], record.Bids[other], record.Awarded[i])
	}

	log.Debug().
		Int("round", round).
		Str("groups", fmt.Sprintf("%s %s", record.Groups[game.A], record.Groups[game.B])).
		Str("bids", fmt.Sprintf("%s / %s", record.Bids[0], record.Bids[1])).
		Msg("auction resolved")
}

func (l *Local) placements(record *RoundRecord) error {
	var puts [2]game.DicePut
	for i, p := range l.players {
		put, err := p.OnRequestPlacement()
		if err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
		if err := l.states[i].Place(put); err != nil {
			return fmt.Errorf("player %d %w: %w", i, ErrInvalidPlacement, err)
		}
		puts[i] = put
		record.Puts[i] = &puts[i]
	}
	// Placements are revealed together once both are in.
	for i, p := range l.players {
		if err := p.OnOpponentPlacement(puts[1-i]); err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
	}
	return nil
}

func (l *Local) roll() game.Hand {
	var h game.Hand
	for i := range h {
		h[i] = game.Die(l.rng.Intn(game.FACES) + 1)
	}
	return h
}

// States returns the judge's copies of both players' states.
func (l *Local) States() [2]*game.State {
	return [2]*game.State{l.states[0].Copy(), l.states[1].Copy()}
}
