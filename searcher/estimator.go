package searcher

import (
	"time"

	"yacht/game"
	"yacht/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Estimator)

// Estimator answers "what is the best this pool can score" under a bounded
// budget. Pools small enough are enumerated in full; larger pools are
// sampled.
type Estimator struct {
	exhaustiveLimit int
	samples         int
	exactLimit      int
	duration        time.Duration
	rng             *rand.Rand
	metrics         MetricsCollector
}

// WithExhaustiveLimit sets the largest C(len(pool), 5) enumerated in full.
func WithExhaustiveLimit(limit int) Option {
	return func(e *Estimator) {
		if limit > 0 {
			e.exhaustiveLimit = limit
		}
	}
}

func WithSamples(samples int) Option {
	return func(e *Estimator) {
		if samples > 0 {
			e.samples = samples
		}
	}
}

func WithExactLimit(open int) Option {
	return func(e *Estimator) {
		if open > 0 {
			e.exactLimit = open
		}
	}
}

// WithDuration bounds the wall time of a single search.
func WithDuration(duration time.Duration) Option {
	return func(e *Estimator) {
		if duration > 0 {
			e.duration = duration
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Estimator) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Estimator) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(e *Estimator) {
		e.metrics = NewMetricsCollector()
	}
}

func NewEstimator(options ...Option) *Estimator {
	e := &Estimator{ // Default values
		exhaustiveLimit: DEFAULT_EXHAUSTIVE_LIMIT,
		samples:         DEFAULT_SAMPLES,
		exactLimit:      DEFAULT_EXACT_LIMIT,
		rng:             rand.New(rand.NewSource(DEFAULT_SEED)),
		metrics:         NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Start resets the metrics gathered for the next decision.
func (e *Estimator) Start() {
	e.metrics.Start()
}

// Complete returns the metrics gathered since Start.
func (e *Estimator) Complete() SearchMetric {
	return e.metrics.Complete()
}

// Rand exposes the estimator's random source so callers share one stream.
func (e *Estimator) Rand() *rand.Rand {
	return e.rng
}

// Walk visits candidate hands drawn from pool until visit returns false or
// the budget runs out. Hands are real sub-multisets of pool. Pools of five or
// fewer dice yield a single, possibly padded, hand.
func (e *Estimator) Walk(pool []game.Die, open []game.Category, visit func(game.Hand) bool) {
	e.metrics.AddSearch()

	var deadline time.Time
	if e.duration > 0 {
		deadline = time.Now().Add(e.duration)
	}
	count := 0
	counted := func(h game.Hand) bool {
		e.metrics.AddCandidate()
		if !visit(h) {
			return false
		}
		count++
		if !deadline.IsZero() && count%DEADLINE_STRIDE == 0 && time.Now().After(deadline) {
			log.Debug().Msgf("search over %d dice stopped after %d candidates", len(pool), count)
			e.metrics.Truncated()
			return false
		}
		return true
	}

	if len(pool) <= game.HAND_SIZE {
		counted(game.NewHand(pool...))
		return
	}

	counts := countPool(pool)
	if utils.Binomial(len(pool), game.HAND_SIZE) <= e.exhaustiveLimit {
		enumerate(counts, counted)
		return
	}

	e.metrics.Sampled()
	for _, c := range open {
		if !counted(seed(counts, c)) {
			return
		}
	}
	sample(pool, e.samples, e.rng, counted)
}

// Best returns the highest scoring (category, hand) the pool offers among
// open. It returns the zero Candidate when open is empty.
func (e *Estimator) Best(pool []game.Die, open []game.Category) Candidate {
	best := Candidate{Score: -1}
	e.Walk(pool, open, func(h game.Hand) bool {
		for _, c := range open {
			if s := game.Score(c, h); s > best.Score {
				best = Candidate{Category: c, Hand: h, Score: s}
			}
		}
		return true
	})
	if best.Score < 0 {
		return Candidate{}
	}
	return best
}

func (e *Estimator) BestFor(pool []game.Die, c game.Category) Candidate {
	return e.Best(pool, []game.Category{c})
}

// BestAssignment splits pool into one hand per open category maximising the
// summed score. It applies only when the pool holds exactly five dice per
// open category and there are few enough categories to search exactly.
func (e *Estimator) BestAssignment(pool []game.Die, open []game.Category) (Assignment, bool) {
	return e.BestSplit(pool, open, NO_BONUS)
}

// BestSplit is BestAssignment for a scorecard whose number categories already
// sum to upper. The total includes the bonus when the split crosses the
// threshold. NO_BONUS ignores the bonus.
func (e *Estimator) BestSplit(pool []game.Die, open []game.Category, upper int) (Assignment, bool) {
	if len(open) == 0 || len(open) > e.exactLimit || len(pool) != game.HAND_SIZE*len(open) {
		return Assignment{}, false
	}
	e.metrics.AddSearch()
	total, hands := e.assign(countPool(pool), open, upper)
	puts := make([]game.DicePut, len(open))
	for i, c := range open {
		puts[i] = game.DicePut{Category: c, Hand: hands[i]}
	}
	return Assignment{Puts: puts, Total: total}, true
}

func (e *Estimator) assign(counts faceCounts, open []game.Category, upper int) (int, []game.Hand) {
	if len(open) == 1 {
		h := handFromCounts(counts)
		e.metrics.AddCandidate()
		s := game.Score(open[0], h)
		return s + Bonus(upper, open[0], s), []game.Hand{h}
	}
	bestTotal := -1
	var bestHands []game.Hand
	enumerate(counts, func(h game.Hand) bool {
		e.metrics.AddCandidate()
		s := game.Score(open[0], h)
		next := upper
		if upper != NO_BONUS && open[0].IsUpper() {
			next += s
		}
		rest, hands := e.assign(subtract(counts, h), open[1:], next)
		if total := s + Bonus(upper, open[0], s) + rest; total > bestTotal {
			bestTotal = total
			bestHands = append([]game.Hand{h}, hands...)
		}
		return true
	})
	return bestTotal, bestHands
}

// Bonus returns the upper bonus scoring s in c earns on top of upper.
func Bonus(upper int, c game.Category, s int) int {
	if upper == NO_BONUS || !c.IsUpper() {
		return 0
	}
	if upper < game.UPPER_THRESHOLD && upper+s >= game.UPPER_THRESHOLD {
		return game.UPPER_BONUS
	}
	return 0
}
