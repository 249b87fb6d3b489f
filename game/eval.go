package game

// Lead scores the standing of me against opp between -1 and 1, positive when
// me is ahead on total score.
func Lead(me, opp *State) float64 {
	return normalize(float64(me.Total()), float64(opp.Total()))
}

// normalize normalizes value relative to otherValue to a score between -1 and 1.
// Totals can go negative through the ledger, so magnitudes are used for the scale.
func normalize(value float64, otherValue float64) float64 {
	total := abs(value) + abs(otherValue)
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
