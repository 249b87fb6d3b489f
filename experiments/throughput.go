package experiments

import (
	"yacht/experiments/metrics"
	"yacht/game"
	"yacht/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var throughputPoolSizes = []int{5, 10, 15, 20, 30}

const throughputSearches = 200

// RunThroughputExperiment measures how many candidates the estimator scores
// per pool size under the default budget.
func RunThroughputExperiment(opts Options) ([]metrics.ThroughputRecord, string, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	records := []metrics.ThroughputRecord{}

	log.Info().Msg("starting throughput experiment...")

	for _, size := range throughputPoolSizes {
		e := searcher.NewEstimator(searcher.WithSeed(opts.Seed), searcher.WithMetrics())
		e.Start()
		for i := 0; i < throughputSearches; i++ {
			pool := make([]game.Die, size)
			for j := range pool {
				pool[j] = game.Die(rng.Intn(game.FACES) + 1)
			}
			e.Best(pool, game.Categories)
		}
		metric := e.Complete()
		records = append(records, metrics.ThroughputRecord{
			PoolSize:   size,
			Searches:   throughputSearches,
			Candidates: metric.Candidates,
			Sampled:    metric.Sampled,
			Duration:   metric.Duration,
		})
		log.Info().Msgf("pool of %d dice: %d candidates in %s", size, metric.Candidates, metric.Duration)
	}

	writer, err := metrics.NewWriter(opts.Dir, "throughput")
	if err != nil {
		return records, "", err
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return records, writer.Dir(), err
	}
	log.Info().Msg("stored throughput records")
	return records, writer.Dir(), nil
}
