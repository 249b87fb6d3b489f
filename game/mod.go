package game

import (
	"fmt"
	"strings"
)

// Die is a face value between 1 and 6. Zero pads partial hands and never scores.
type Die uint8

// Hand is five dice committed together. Order is irrelevant to scoring.
type Hand [HAND_SIZE]Die

const (
	HAND_SIZE      = 5
	FACES          = 6
	NUM_CATEGORIES = 12
	NUM_UPPER      = 6

	UPPER_THRESHOLD = 63000
	UPPER_BONUS     = 35000
	MAX_BID         = 100000
	ROUNDS          = 13
)

type Category int

const (
	One Category = iota
	Two
	Three
	Four
	Five
	Six
	Choice
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yacht
)

var categoryNames = [NUM_CATEGORIES]string{
	"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX",
	"CHOICE", "FOUR_OF_A_KIND", "FULL_HOUSE",
	"SMALL_STRAIGHT", "LARGE_STRAIGHT", "YACHT",
}

// Categories lists every category in declaration order.
var Categories = []Category{
	One, Two, Three, Four, Five, Six,
	Choice, FourOfAKind, FullHouse, SmallStraight, LargeStraight, Yacht,
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) Valid() bool {
	return c >= One && c <= Yacht
}

// IsUpper reports whether c counts toward the upper bonus.
func (c Category) IsUpper() bool {
	return c >= One && c <= Six
}

// Face returns the die value a number category counts, or 0 otherwise.
func (c Category) Face() Die {
	if !c.IsUpper() {
		return 0
	}
	return Die(c) + 1
}

func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

type Group int

const (
	A Group = iota
	B
)

func (g Group) Other() Group {
	return 1 - g
}

func (g Group) String() string {
	if g == B {
		return "B"
	}
	return "A"
}

func ParseGroup(s string) (Group, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return A, nil
	case "B":
		return B, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}

// Side selects whose score is read from a session.
type Side int

const (
	Me Side = iota
	Opponent
)

type Bid struct {
	Group  Group
	Amount int
}

func (b Bid) String() string {
	return fmt.Sprintf("%s %d", b.Group, b.Amount)
}

// DicePut commits a hand to a category.
type DicePut struct {
	Category Category
	Hand     Hand
}

func (p DicePut) String() string {
	return fmt.Sprintf("%s %s", p.Category, p.Hand)
}

// NewHand builds a hand from up to five dice, padding the rest with zeros.
func NewHand(dice ...Die) Hand {
	if len(dice) > HAND_SIZE {
		panic(fmt.Sprintf("hand holds %d dice, got %d", HAND_SIZE, len(dice)))
	}
	var h Hand
	copy(h[:], dice)
	return h
}

// ParseHand reads five digits such as "12345".
func ParseHand(s string) (Hand, error) {
	var h Hand
	if len(s) != HAND_SIZE {
		return h, fmt.Errorf("%w: %q", ErrMalformedHand, s)
	}
	for i, r := range s {
		if r < '1' || r > '6' {
			return h, fmt.Errorf("%w: %q", ErrMalformedHand, s)
		}
		h[i] = Die(r - '0')
	}
	return h, nil
}

// String renders the hand as five digits, the format used on the wire.
func (h Hand) String() string {
	var sb strings.Builder
	for _, d := range h {
		sb.WriteByte('0' + byte(d))
	}
	return sb.String()
}

// Counts tallies how many of each face the hand holds, indexed by face.
func (h Hand) Counts() [FACES + 1]int {
	var counts [FACES + 1]int
	for _, d := range h {
		counts[d]++
	}
	return counts
}

func (h Hand) Sum() int {
	sum := 0
	for _, d := range h {
		sum += int(d)
	}
	return sum
}

// Dice returns the non-padding dice of the hand.
func (h Hand) Dice() []Die {
	dice := make([]Die, 0, HAND_SIZE)
	for _, d := range h {
		if d != 0 {
			dice = append(dice, d)
		}
	}
	return dice
}

// Sorted returns a copy in ascending order, used to compare hands as multisets.
func (h Hand) Sorted() Hand {
	s := h
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
	return s
}
