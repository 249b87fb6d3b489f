package communication

import (
	"context"
	"errors"
	"fmt"
	"io"

	"yacht/game"

	"github.com/rs/zerolog/log"
)

// Player is the agent surface the driver forwards commands to.
type Player interface {
	OnRoll(round int, groupA, groupB game.Hand) game.Bid
	OnAward(mine, theirs game.Hand, myBid, oppBid game.Bid, myGroup game.Group)
	OnRequestPlacement() (game.DicePut, error)
	OnOpponentPlacement(put game.DicePut) error
	TotalScore(side game.Side) int
}

// Run answers the judge until FINISH or the end of input. Any error is fatal
// to the game and returned.
func Run(ctx context.Context, comm Communicator, p Player) error {
	round := 0
	var groups [2]game.Hand
	var lastBid game.Bid

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd, err := comm.Receive()
		if errors.Is(err, io.EOF) {
			log.Warn().Msg("input closed before FINISH")
			return nil
		}
		if err != nil {
			return err
		}

		switch cmd.Kind {
		case Ready:
			err = comm.Send("OK")
		case Roll:
			round++
			groups = cmd.Groups
			lastBid = p.OnRoll(round, groups[game.A], groups[game.B])
			err = comm.Send(FormatBid(lastBid))
		case Get:
			mine, theirs := groups[cmd.Awarded], groups[cmd.Awarded.Other()]
			p.OnAward(mine, theirs, lastBid, cmd.OppBid, cmd.Awarded)
		case Score:
			var put game.DicePut
			if put, err = p.OnRequestPlacement(); err == nil {
				err = comm.Send(FormatPut(put))
			}
		case Set:
			err = p.OnOpponentPlacement(cmd.Put)
		case Finish:
			log.Info().Msgf("game finished %d to %d", p.TotalScore(game.Me), p.TotalScore(game.Opponent))
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s in round %d: %w", cmd.Kind, round, err)
		}
	}
}
