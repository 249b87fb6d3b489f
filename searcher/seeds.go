package searcher

import "yacht/game"

// builder assembles a hand from a pool's face counts.
type builder struct {
	counts faceCounts
	hand   game.Hand
	n      int
}

func newBuilder(counts faceCounts) *builder {
	return &builder{counts: counts}
}

// take moves up to k dice of face into the hand and returns how many moved.
func (b *builder) take(face int, k int) int {
	moved := 0
	for moved < k && b.counts[face] > 0 && b.n < game.HAND_SIZE {
		b.hand[b.n] = game.Die(face)
		b.counts[face]--
		b.n++
		moved++
	}
	return moved
}

// fill tops the hand up with the highest remaining dice.
func (b *builder) fill() game.Hand {
	for face := game.FACES; face >= 1 && b.n < game.HAND_SIZE; face-- {
		b.take(face, game.HAND_SIZE)
	}
	return b.hand
}

// commonest returns the face with the most dice, the higher face on ties.
func commonest(counts faceCounts, except int) int {
	best := 0
	for face := game.FACES; face >= 1; face-- {
		if face != except && counts[face] > counts[best] {
			best = face
		}
	}
	return best
}

func hasFaces(counts faceCounts, from, to int) bool {
	for face := from; face <= to; face++ {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}

// seed builds the hand a person would reach for first when aiming at c. It is
// evaluated before random draws so sampled searches never miss the obvious.
func seed(counts faceCounts, c game.Category) game.Hand {
	b := newBuilder(counts)
	switch c {
	case game.One, game.Two, game.Three, game.Four, game.Five, game.Six:
		b.take(int(c.Face()), game.HAND_SIZE)
	case game.FourOfAKind:
		b.take(commonest(counts, 0), 4)
	case game.Yacht:
		b.take(commonest(counts, 0), game.HAND_SIZE)
	case game.FullHouse:
		three := commonest(counts, 0)
		if counts[three] >= game.HAND_SIZE {
			b.take(three, game.HAND_SIZE)
			break
		}
		two := commonest(counts, three)
		if counts[three] >= 3 && counts[two] >= 2 {
			b.take(three, 3)
			b.take(two, 2)
		}
	case game.SmallStraight:
		for from := 3; from >= 1; from-- {
			if hasFaces(counts, from, from+3) {
				for face := from; face <= from+3; face++ {
					b.take(face, 1)
				}
				break
			}
		}
	case game.LargeStraight:
		for from := 2; from >= 1; from-- {
			if hasFaces(counts, from, from+4) {
				for face := from; face <= from+4; face++ {
					b.take(face, 1)
				}
				break
			}
		}
	}
	return b.fill()
}
