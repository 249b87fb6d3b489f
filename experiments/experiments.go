package experiments

import (
	"fmt"
	"time"

	"yacht/agent"
	"yacht/engine"
	"yacht/experiments/metrics"
	"yacht/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 50 * time.Millisecond
)

// Options are shared by every experiment.
type Options struct {
	Dir   string
	Games int
	Seed  uint64
}

type MatchUpSummary struct {
	Agent1, Agent2 int
	Games          int
	Wins1, Wins2   int
	Draws          int
	MeanScore1     float64
	MeanScore2     float64
}

type Summary struct {
	Name     string
	Dir      string
	MatchUps []MatchUpSummary
}

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, Samples: 25, ExhaustiveLimit: 1, Duration: TimeBudget},
	{ID: 2, Samples: 100, ExhaustiveLimit: 1, Duration: TimeBudget},
	{ID: 3, Samples: 300, ExhaustiveLimit: 1, Duration: TimeBudget},
}

// RunBudgetExperiment pits sampled agents of growing budget against the
// agent that enumerates every pool.
func RunBudgetExperiment(opts Options) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Samples: searcher.DEFAULT_SAMPLES, ExhaustiveLimit: searcher.DEFAULT_EXHAUSTIVE_LIMIT, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range budgetConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("budget", opts, append(budgetConfigs, baseline), matchUps)
}

var bidConfigs = []metrics.AgentConfig{
	{ID: 1, BidFraction: 0.25},
	{ID: 2, BidFraction: 0.75},
	{ID: 3, BidFraction: 1.0},
}

// RunBidFractionExperiment pits bidding aggressiveness against the default.
func RunBidFractionExperiment(opts Options) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range bidConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("bid_fraction", opts, append(bidConfigs, baseline), matchUps)
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Summary, error) {
	games := opts.Games
	if games <= 0 {
		games = NumGames
	}
	collector := metrics.NewCollector()
	summary := Summary{Name: name}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		ms := MatchUpSummary{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			seed := opts.Seed + uint64(mi*games+i)
			// Alternate seats so neither config always wins tie breaks
			swapped := i%2 == 1
			first, second := config1, config2
			if swapped {
				first, second = config2, config1
			}

			result, players, err := runGame(first, second, seed)
			if err != nil {
				return summary, fmt.Errorf("%s matchup %d game %d: %w", name, mi+1, i+1, err)
			}
			ledgers := [2]int{players[0].Session().Me.Ledger(), players[1].Session().Me.Ledger()}
			collector.AddGame(first, second, result, ledgers, [2][]agent.DecisionMetric{players[0].Metrics(), players[1].Metrics()})

			ms.tally(result, swapped)
			log.Info().Msgf("completed matchup %d of %d game %d with scores %d to %d", mi+1, len(matchUps), i+1, result.Scores[0], result.Scores[1])
		}
		summary.MatchUps = append(summary.MatchUps, ms.mean())
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.Dir, name)
	if err != nil {
		return summary, err
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return summary, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(collector.Games()); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteDecisionRecords(collector.Decisions()); err != nil {
		return summary, err
	}
	log.Info().Msg("stored decision records")

	return summary, nil
}

// tally adds one game, seen from the match up's own ordering.
func (ms *MatchUpSummary) tally(result engine.Result, swapped bool) {
	score1, score2 := result.Scores[0], result.Scores[1]
	if swapped {
		score1, score2 = score2, score1
	}
	ms.Games++
	ms.MeanScore1 += float64(score1)
	ms.MeanScore2 += float64(score2)
	switch {
	case score1 > score2:
		ms.Wins1++
	case score2 > score1:
		ms.Wins2++
	default:
		ms.Draws++
	}
}

func (ms MatchUpSummary) mean() MatchUpSummary {
	if ms.Games > 0 {
		ms.MeanScore1 /= float64(ms.Games)
		ms.MeanScore2 /= float64(ms.Games)
	}
	return ms
}

// runGame plays a single match between two configured agents.
func runGame(config1, config2 metrics.AgentConfig, seed uint64) (engine.Result, [2]*agent.Agent, error) {
	players := [2]*agent.Agent{
		createAgent(config1, seed),
		createAgent(config2, seed+1),
	}
	e := engine.NewLocal([2]engine.Player{players[0], players[1]}, engine.WithSeed(seed))

	result, err := e.Run()
	return result, players, err
}

func createAgent(config metrics.AgentConfig, seed uint64) *agent.Agent {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Samples > 0 {
		options = append(options, searcher.WithSamples(config.Samples))
	}
	if config.ExhaustiveLimit > 0 {
		options = append(options, searcher.WithExhaustiveLimit(config.ExhaustiveLimit))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	tuning := agent.DefaultTuning
	if config.BidFraction > 0 {
		tuning.Bid.BidFraction = config.BidFraction
	}

	return agent.New(agent.WithEstimator(searcher.NewEstimator(options...)), agent.WithTuning(tuning))
}
