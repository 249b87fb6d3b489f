package communication

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"yacht/game"

	"github.com/rs/zerolog/log"
)

// Remote is a match seat played by an external agent over the line protocol.
// It speaks for the judge: commands go out, replies come back.
type Remote struct {
	scanner *bufio.Scanner
	writer  *bufio.Writer
	mirror  *game.Session
	ready   bool
	err     error
}

func NewRemote(r io.Reader, w io.Writer) *Remote {
	return &Remote{
		scanner: bufio.NewScanner(r),
		writer:  bufio.NewWriter(w),
		mirror:  game.NewSession(nil),
	}
}

// Err returns the first transport or protocol error, if any.
func (r *Remote) Err() error {
	return r.err
}

// OnRoll forwards the groups and returns the agent's bid. A broken connection
// bids nothing; the error surfaces at the next placement request.
func (r *Remote) OnRoll(round int, groupA, groupB game.Hand) game.Bid {
	r.mirror.Round = round
	r.mirror.Groups = [2]game.Hand{groupA, groupB}

	if !r.ready {
		reply := r.exchange("READY")
		if r.err == nil && reply != "OK" {
			r.fail(fmt.Errorf("%w: want OK, got %q", ErrMalformed, reply))
		}
		r.ready = true
	}

	reply := r.exchange(fmt.Sprintf("%s %s %s", Roll, groupA, groupB))
	if r.err != nil {
		return game.Bid{Group: game.A}
	}
	bid, err := ParseBid(reply)
	if err != nil {
		r.fail(err)
		return game.Bid{Group: game.A}
	}
	r.mirror.LastBid = bid
	return bid
}

func (r *Remote) OnAward(mine, theirs game.Hand, myBid, oppBid game.Bid, myGroup game.Group) {
	r.mirror.Me.AddDice(mine)
	r.mirror.Opp.AddDice(theirs)
	r.mirror.Me.ApplyBid(myBid, myGroup)
	r.mirror.Opp.ApplyBid(oppBid, myGroup.Other())

	r.send(fmt.Sprintf("%s %s %s %d", Get, myGroup, oppBid.Group, oppBid.Amount))
}

func (r *Remote) OnRequestPlacement() (game.DicePut, error) {
	reply := r.exchange(string(Score))
	if r.err != nil {
		return game.DicePut{}, r.err
	}
	put, err := ParsePut(reply)
	if err != nil {
		r.fail(err)
		return game.DicePut{}, err
	}
	// The judge rejects an illegal put against its own copy.
	if err := r.mirror.Me.Place(put); err != nil {
		log.Warn().Err(err).Msgf("remote agent placed %s", put)
	}
	return put, nil
}

func (r *Remote) OnOpponentPlacement(put game.DicePut) error {
	if err := r.mirror.Opp.Place(put); err != nil {
		return fmt.Errorf("mirror opponent placement: %w", err)
	}
	r.send(fmt.Sprintf("%s %s %s", Set, put.Category, put.Hand))
	return r.err
}

func (r *Remote) TotalScore(side game.Side) int {
	return r.mirror.State(side).Total()
}

// Finish tells the agent the match is over.
func (r *Remote) Finish() error {
	r.send(string(Finish))
	return r.err
}

func (r *Remote) send(line string) {
	if r.err != nil {
		return
	}
	if _, err := r.writer.WriteString(line + "\n"); err != nil {
		r.fail(fmt.Errorf("write command: %w", err))
		return
	}
	if err := r.writer.Flush(); err != nil {
		r.fail(fmt.Errorf("flush command: %w", err))
	}
}

// exchange sends a command and waits for the next non-empty reply.
func (r *Remote) exchange(line string) string {
	r.send(line)
	if r.err != nil {
		return ""
	}
	for r.scanner.Scan() {
		if reply := strings.TrimSpace(r.scanner.Text()); reply != "" {
			return reply
		}
	}
	if err := r.scanner.Err(); err != nil {
		r.fail(fmt.Errorf("read reply: %w", err))
	} else {
		r.fail(fmt.Errorf("read reply to %s: %w", line, io.ErrUnexpectedEOF))
	}
	return ""
}

func (r *Remote) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
