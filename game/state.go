package game

import (
	"fmt"

	"yacht/utils"
)

// State is one agent's side of the game: held dice, scorecard and bidding ledger.
type State struct {
	pool   []Die
	scores [NUM_CATEGORIES]int
	filled uint16 // bit per scored category
	ledger int
}

func NewState() *State {
	return &State{pool: make([]Die, 0, 2*HAND_SIZE)}
}

// Pool returns a copy of the held dice.
func (s *State) Pool() []Die {
	pool := make([]Die, len(s.pool))
	copy(pool, s.pool)
	return pool
}

func (s *State) PoolSize() int {
	return len(s.pool)
}

// AddDice appends an awarded group to the pool.
func (s *State) AddDice(h Hand) {
	s.pool = append(s.pool, h.Dice()...)
}

// ApplyBid settles a resolved bid: winning the named group costs the amount,
// being given the other group pays it out.
func (s *State) ApplyBid(bid Bid, awarded Group) {
	if awarded == bid.Group {
		s.ledger -= bid.Amount
	} else {
		s.ledger += bid.Amount
	}
}

// Place commits put.Hand to put.Category and removes those dice from the pool.
// On error the state is left unchanged.
func (s *State) Place(put DicePut) error {
	if !put.Category.Valid() {
		return fmt.Errorf("place %d: %w", int(put.Category), ErrUnknownCategory)
	}
	if s.Filled(put.Category) {
		return fmt.Errorf("place %s: %w", put.Category, ErrCategoryFilled)
	}
	if len(s.pool) < HAND_SIZE {
		return fmt.Errorf("place %s with %d dice: %w", put.Category, len(s.pool), ErrPoolTooSmall)
	}

	pool := s.Pool()
	for _, d := range put.Hand {
		i := utils.FindIndex(pool, d)
		if i < 0 {
			return fmt.Errorf("place %s %s from %v: %w", put.Category, put.Hand, s.pool, ErrDiceNotInPool)
		}
		pool = append(pool[:i], pool[i+1:]...)
	}

	s.pool = pool
	s.scores[put.Category] = Score(put.Category, put.Hand)
	s.filled |= 1 << put.Category
	return nil
}

func (s *State) Filled(c Category) bool {
	return s.filled&(1<<c) != 0
}

// ScoreOf returns the recorded score of c and whether c has been scored.
func (s *State) ScoreOf(c Category) (int, bool) {
	if !s.Filled(c) {
		return 0, false
	}
	return s.scores[c], true
}

// Open lists unscored categories in declaration order.
func (s *State) Open() []Category {
	open := make([]Category, 0, NUM_CATEGORIES)
	for _, c := range Categories {
		if !s.Filled(c) {
			open = append(open, c)
		}
	}
	return open
}

func (s *State) Upper() int {
	upper := 0
	for c := One; c <= Six; c++ {
		upper += s.scores[c]
	}
	return upper
}

func (s *State) Bonus() int {
	if s.Upper() >= UPPER_THRESHOLD {
		return UPPER_BONUS
	}
	return 0
}

func (s *State) Lower() int {
	lower := 0
	for c := Choice; c <= Yacht; c++ {
		lower += s.scores[c]
	}
	return lower
}

func (s *State) Ledger() int {
	return s.ledger
}

// Total is recomputed from the scorecard and ledger on every call.
func (s *State) Total() int {
	return s.Upper() + s.Bonus() + s.Lower() + s.ledger
}

func (s *State) Copy() *State {
	c := *s
	c.pool = s.Pool()
	return &c
}
