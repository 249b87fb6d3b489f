package metrics

import (
	"time"

	"yacht/agent"
	"yacht/engine"

	"github.com/google/uuid"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID              int
	Samples         int
	ExhaustiveLimit int
	Duration        time.Duration
	BidFraction     float64 // 0 keeps the default tuning
}

type GameMetric struct {
	Match     uuid.UUID
	Scores    [2]int
	Ledgers   [2]int
	Winner    int // index of the winning player, -1 on a draw
	StartTime time.Time
	Duration  time.Duration
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type DecisionRecord struct {
	Game   int // GameRecord.ID
	Player int
	agent.DecisionMetric
}

// Collector gathers the records of an experiment as games complete.
type Collector interface {
	AddGame(config1, config2 AgentConfig, result engine.Result, ledgers [2]int, players [2][]agent.DecisionMetric) GameRecord
	Games() []GameRecord
	Decisions() []DecisionRecord
}

type collector struct {
	games     []GameRecord
	decisions []DecisionRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddGame(config1, config2 AgentConfig, result engine.Result, ledgers [2]int, players [2][]agent.DecisionMetric) GameRecord {
	record := GameRecord{
		ID:     len(c.games) + 1,
		Agent1: config1.ID,
		Agent2: config2.ID,
		GameMetric: GameMetric{
			Match:     result.ID,
			Scores:    result.Scores,
			Ledgers:   ledgers,
			Winner:    result.Winner,
			StartTime: result.StartTime,
			Duration:  result.Duration,
		},
	}
	c.games = append(c.games, record)
	for i, decisions := range players {
		for _, d := range decisions {
			c.decisions = append(c.decisions, DecisionRecord{Game: record.ID, Player: i, DecisionMetric: d})
		}
	}
	return record
}

func (c *collector) Games() []GameRecord {
	return c.games
}

func (c *collector) Decisions() []DecisionRecord {
	return c.decisions
}
