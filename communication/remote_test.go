package communication

import (
	"context"
	"io"
	"strings"
	"testing"

	"yacht/agent"
	"yacht/engine"
	"yacht/game"

	"github.com/stretchr/testify/require"
)

func TestParseReplies(t *testing.T) {
	bid, err := ParseBid("BID B 1200")
	require.NoError(t, err)
	require.Equal(t, game.Bid{Group: game.B, Amount: 1200}, bid)

	put, err := ParsePut("PUT FULL_HOUSE 22333")
	require.NoError(t, err)
	require.Equal(t, game.DicePut{Category: game.FullHouse, Hand: game.Hand{2, 2, 3, 3, 3}}, put)

	for _, line := range []string{"BID C 1", "BID A -5", "BID A", "PUT YAHTZEE 11111", "PUT ONE 1111", "OK"} {
		_, bidErr := ParseBid(line)
		_, putErr := ParsePut(line)
		require.ErrorIs(t, bidErr, ErrMalformed, line)
		require.ErrorIs(t, putErr, ErrMalformed, line)
	}
}

func TestRemote(t *testing.T) {
	t.Run("plays a match against an agent over the wire", func(t *testing.T) {
		toAgent, fromJudge := io.Pipe()
		toJudge, fromAgent := io.Pipe()

		far := agent.New(agent.WithSeed(2))
		done := make(chan error, 1)
		go func() {
			done <- Run(context.Background(), NewLineCommunicator(toAgent, fromAgent), far)
			fromAgent.Close()
		}()

		remote := NewRemote(toJudge, fromJudge)
		near := agent.New(agent.WithSeed(1))
		l := engine.NewLocal([2]engine.Player{near, remote}, engine.WithSeed(3))

		result, err := l.Run()

		require.NoError(t, err)
		require.NoError(t, <-done)
		require.NoError(t, remote.Err())
		require.Equal(t, result.Scores[1], far.TotalScore(game.Me))
		require.Equal(t, result.Scores[1], remote.TotalScore(game.Me))
		require.Equal(t, result.Scores[0], far.TotalScore(game.Opponent))
	})

	t.Run("a silent agent fails the placement", func(t *testing.T) {
		var out strings.Builder
		remote := NewRemote(strings.NewReader("OK\nBID A 10\n"), &out)

		bid := remote.OnRoll(1, game.Hand{1, 1, 1, 1, 1}, game.Hand{2, 2, 2, 2, 2})
		require.Equal(t, game.Bid{Group: game.A, Amount: 10}, bid)

		_, err := remote.OnRequestPlacement()

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Equal(t, "READY\nROLL 11111 22222\nSCORE\n", out.String())
	})

	t.Run("a garbled handshake is reported", func(t *testing.T) {
		remote := NewRemote(strings.NewReader("HELLO\n"), io.Discard)

		remote.OnRoll(1, game.Hand{1, 1, 1, 1, 1}, game.Hand{2, 2, 2, 2, 2})

		require.ErrorIs(t, remote.Err(), ErrMalformed)
	})
}
