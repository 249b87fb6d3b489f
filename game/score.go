package game

// Score returns the points hand h earns in category c. It never mutates h.
func Score(c Category, h Hand) int {
	counts := h.Counts()
	switch c {
	case One, Two, Three, Four, Five, Six:
		face := c.Face()
		return counts[face] * int(face) * 1000
	case Choice:
		return h.Sum() * 1000
	case FourOfAKind:
		for face := 1; face <= FACES; face++ {
			if counts[face] >= 4 {
				return h.Sum() * 1000
			}
		}
		return 0
	case FullHouse:
		if isFullHouse(counts) {
			return h.Sum() * 1000
		}
		return 0
	case SmallStraight:
		if hasRun(counts, 4) {
			return 15000
		}
		return 0
	case LargeStraight:
		if hasRun(counts, 5) {
			return 30000
		}
		return 0
	case Yacht:
		for face := 1; face <= FACES; face++ {
			if counts[face] == HAND_SIZE {
				return 50000
			}
		}
		return 0
	}
	panic("invalid category")
}

// ScoreAll scores h in every category, indexed by category.
func ScoreAll(h Hand) [NUM_CATEGORIES]int {
	var scores [NUM_CATEGORIES]int
	for _, c := range Categories {
		scores[c] = Score(c, h)
	}
	return scores
}

// A full house is a triple plus a distinct pair; five of a kind also qualifies.
func isFullHouse(counts [FACES + 1]int) bool {
	three, two := false, false
	for face := 1; face <= FACES; face++ {
		switch counts[face] {
		case 5:
			return true
		case 3:
			three = true
		case 2:
			two = true
		}
	}
	return three && two
}

// hasRun reports whether the hand holds length consecutive distinct faces.
func hasRun(counts [FACES + 1]int, length int) bool {
	run := 0
	for face := 1; face <= FACES; face++ {
		if counts[face] == 0 {
			run = 0
			continue
		}
		run++
		if run >= length {
			return true
		}
	}
	return false
}
