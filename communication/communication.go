package communication

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"yacht/game"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformed      = errors.New("malformed command")
)

type Kind string

const (
	Ready  Kind = "READY"
	Roll   Kind = "ROLL"
	Get    Kind = "GET"
	Score  Kind = "SCORE"
	Set    Kind = "SET"
	Finish Kind = "FINISH"
)

// Command is one line from the judge, parsed.
type Command struct {
	Kind    Kind
	Groups  [2]game.Hand // ROLL
	Awarded game.Group   // GET
	OppBid  game.Bid     // GET
	Put     game.DicePut // SET
}

// Communicator abstracts the transport between the judge and an agent.
type Communicator interface {
	Receive() (Command, error)
	Send(reply string) error
}

// LineCommunicator speaks the judge's line protocol over a reader and writer.
type LineCommunicator struct {
	scanner *bufio.Scanner
	writer  *bufio.Writer
}

func NewLineCommunicator(r io.Reader, w io.Writer) *LineCommunicator {
	return &LineCommunicator{
		scanner: bufio.NewScanner(r),
		writer:  bufio.NewWriter(w),
	}
}

// Receive returns the next non-empty command, or io.EOF when input ends.
func (c *LineCommunicator) Receive() (Command, error) {
	for c.scanner.Scan() {
		line := strings.TrimSpace(c.scanner.Text())
		if line == "" {
			continue
		}
		return ParseCommand(line)
	}
	if err := c.scanner.Err(); err != nil {
		return Command{}, fmt.Errorf("read command: %w", err)
	}
	return Command{}, io.EOF
}

// Send writes one reply line and flushes it so the judge sees it at once.
func (c *LineCommunicator) Send(reply string) error {
	if _, err := c.writer.WriteString(reply + "\n"); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	if err := c.writer.Flush(); err != nil {
		return fmt.Errorf("flush reply: %w", err)
	}
	return nil
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrMalformed)
	}
	cmd := Command{Kind: Kind(fields[0])}
	args := fields[1:]

	var err error
	switch cmd.Kind {
	case Ready, Score, Finish:
		err = arity(line, args, 0)
	case Roll:
		if err = arity(line, args, 2); err == nil {
			err = parseRoll(&cmd, args)
		}
	case Get:
		if err = arity(line, args, 3); err == nil {
			err = parseGet(&cmd, args)
		}
	case Set:
		if err = arity(line, args, 2); err == nil {
			err = parseSet(&cmd, args)
		}
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	if err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func arity(line string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %q takes %d arguments", ErrMalformed, line, n)
	}
	return nil
}

func parseRoll(cmd *Command, args []string) error {
	for i, arg := range args {
		h, err := game.ParseHand(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		cmd.Groups[i] = h
	}
	return nil
}

func parseGet(cmd *Command, args []string) error {
	awarded, err := game.ParseGroup(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	oppGroup, err := game.ParseGroup(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	amount, err := strconv.Atoi(args[2])
	if err != nil || amount < 0 {
		return fmt.Errorf("%w: bid amount %q", ErrMalformed, args[2])
	}
	cmd.Awarded = awarded
	cmd.OppBid = game.Bid{Group: oppGroup, Amount: amount}
	return nil
}

func parseSet(cmd *Command, args []string) error {
	c, err := game.ParseCategory(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	h, err := game.ParseHand(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	cmd.Put = game.DicePut{Category: c, Hand: h}
	return nil
}

func FormatBid(bid game.Bid) string {
	return fmt.Sprintf("BID %s %d", bid.Group, bid.Amount)
}

func FormatPut(put game.DicePut) string {
	return fmt.Sprintf("PUT %s %s", put.Category, put.Hand)
}

// ParseBid reads an agent's "BID G n" reply.
func ParseBid(line string) (game.Bid, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "BID" {
		return game.Bid{}, fmt.Errorf("%w: want a bid, got %q", ErrMalformed, line)
	}
	g, err := game.ParseGroup(fields[1])
	if err != nil {
		return game.Bid{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	amount, err := strconv.Atoi(fields[2])
	if err != nil || amount < 0 {
		return game.Bid{}, fmt.Errorf("%w: bid amount %q", ErrMalformed, fields[2])
	}
	return game.Bid{Group: g, Amount: amount}, nil
}

// ParsePut reads an agent's "PUT CAT ddddd" reply.
func ParsePut(line string) (game.DicePut, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "PUT" {
		return game.DicePut{}, fmt.Errorf("%w: want a placement, got %q", ErrMalformed, line)
	}
	var cmd Command
	if err := parseSet(&cmd, fields[1:]); err != nil {
		return game.DicePut{}, err
	}
	return cmd.Put, nil
}
