package engine

import (
	"errors"
	"time"

	"yacht/game"

	"github.com/google/uuid"
)

var ErrInvalidPlacement = errors.New("invalid placement")

// Player is one side of a match as the judge sees it.
type Player interface {
	OnRoll(round int, groupA, groupB game.Hand) game.Bid
	OnAward(mine, theirs game.Hand, myBid, oppBid game.Bid, myGroup game.Group)
	OnRequestPlacement() (game.DicePut, error)
	OnOpponentPlacement(put game.DicePut) error
	TotalScore(side game.Side) int
}

// Finisher is implemented by players that must be told the match is over.
type Finisher interface {
	Finish() error
}

type Engine interface {
	// Run plays a full match and reports the final scores
	Run() (Result, error)
}

type RoundRecord struct {
	Round   int
	Groups  [2]game.Hand
	Bids    [2]game.Bid
	Awarded [2]game.Group
	Puts    [2]*game.DicePut
}

type Result struct {
	ID        uuid.UUID
	Scores    [2]int
	Winner    int // index of the winning player, -1 on a draw
	Rounds    []RoundRecord
	StartTime time.Time
	Duration  time.Duration
}
