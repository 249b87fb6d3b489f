package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"time"

	"yacht/agent"
	"yacht/communication"
	"yacht/engine"
	"yacht/experiments"
	"yacht/game"
	"yacht/meta"
	"yacht/searcher"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play (line protocol on stdin/stdout), match or experiment")
	experimentName := flag.String("experiment", "budget", "budget, bid or throughput")
	envFile := flag.String("env", ".env", "Optional .env file")
	seed := flag.Uint64("seed", 0, "Random seed, overrides YACHT_SEED")
	samples := flag.Int("samples", 0, "Sampled hands per search, overrides YACHT_SAMPLES")
	budget := flag.Duration("budget", 0, "Time budget per search, overrides YACHT_TIME_BUDGET")
	games := flag.Int("games", experiments.NumGames, "Games per match up")
	opponent := flag.String("opponent", "", "Agent binary speaking the line protocol, plays seat 2 in match mode")
	flag.Parse()

	cfg, err := meta.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *samples > 0 {
		cfg.Samples = *samples
	}
	if *budget > 0 {
		cfg.TimeBudget = *budget
	}

	// stdout carries the protocol in play mode
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch *mode {
	case "play":
		err = play(cfg)
	case "match":
		err = match(cfg, *opponent)
	case "experiment":
		err = experiment(cfg, *experimentName, *games)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("yacht")
	}
}

func newAgent(cfg meta.Config, seed uint64) *agent.Agent {
	estimator := searcher.NewEstimator(
		searcher.WithSeed(seed),
		searcher.WithSamples(cfg.Samples),
		searcher.WithExhaustiveLimit(cfg.ExhaustiveLimit),
		searcher.WithDuration(cfg.TimeBudget),
	)
	return agent.New(agent.WithEstimator(estimator))
}

func play(cfg meta.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	comm := communication.NewLineCommunicator(os.Stdin, os.Stdout)
	return communication.Run(ctx, comm, newAgent(cfg, cfg.Seed))
}

func match(cfg meta.Config, opponent string) error {
	players := [2]engine.Player{newAgent(cfg, cfg.Seed), newAgent(cfg, cfg.Seed+1)}
	if opponent != "" {
		cmd := exec.Command(opponent)
		cmd.Stderr = os.Stderr
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return err
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return err
		}
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("start opponent: %w", err)
		}
		defer func() {
			stdin.Close()
			if err := cmd.Wait(); err != nil {
				log.Warn().Err(err).Msg("opponent exited")
			}
		}()
		players[1] = communication.NewRemote(stdout, stdin)
	}
	e := engine.NewLocal(players, engine.WithSeed(cfg.Seed))

	spinner, _ := pterm.DefaultSpinner.Start("Playing a match...")
	result, err := e.Run()
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success(fmt.Sprintf("Match %s finished in %s", result.ID, result.Duration.Round(time.Millisecond)))

	states := e.States()
	data := pterm.TableData{{"Category", "Player 1", "Player 2"}}
	for _, c := range game.Categories {
		data = append(data, []string{c.String(), cell(states[0], c), cell(states[1], c)})
	}
	data = append(data,
		[]string{"BONUS", strconv.Itoa(states[0].Bonus()), strconv.Itoa(states[1].Bonus())},
		[]string{"LEDGER", strconv.Itoa(states[0].Ledger()), strconv.Itoa(states[1].Ledger())},
		[]string{"TOTAL", strconv.Itoa(result.Scores[0]), strconv.Itoa(result.Scores[1])},
	)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	switch result.Winner {
	case -1:
		pterm.Info.Println("Draw")
	default:
		pterm.Success.Printfln("Player %d wins", result.Winner+1)
	}
	return nil
}

// cell renders one scorecard entry, a dash while the category is open.
func cell(s *game.State, c game.Category) string {
	score, ok := s.ScoreOf(c)
	if !ok {
		return "-"
	}
	return strconv.Itoa(score)
}

func experiment(cfg meta.Config, name string, games int) error {
	opts := experiments.Options{Dir: cfg.ExperimentDir, Games: games, Seed: cfg.Seed}

	if name == "throughput" {
		records, dir, err := experiments.RunThroughputExperiment(opts)
		if err != nil {
			return err
		}
		data := pterm.TableData{{"Pool", "Searches", "Candidates", "Sampled", "Duration"}}
		for _, r := range records {
			data = append(data, []string{
				strconv.Itoa(r.PoolSize),
				strconv.Itoa(r.Searches),
				strconv.FormatInt(r.Candidates, 10),
				strconv.FormatBool(r.Sampled),
				r.Duration.String(),
			})
		}
		pterm.Info.Printfln("Records stored in %s", dir)
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	var run func(experiments.Options) (experiments.Summary, error)
	switch name {
	case "budget":
		run = experiments.RunBudgetExperiment
	case "bid":
		run = experiments.RunBidFractionExperiment
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}

	summary, err := run(opts)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Agent 1", "Agent 2", "Games", "Wins 1", "Wins 2", "Draws", "Mean 1", "Mean 2"}}
	for _, ms := range summary.MatchUps {
		data = append(data, []string{
			strconv.Itoa(ms.Agent1),
			strconv.Itoa(ms.Agent2),
			strconv.Itoa(ms.Games),
			strconv.Itoa(ms.Wins1),
			strconv.Itoa(ms.Wins2),
			strconv.Itoa(ms.Draws),
			strconv.FormatFloat(ms.MeanScore1, 'f', 0, 64),
			strconv.FormatFloat(ms.MeanScore2, 'f', 0, 64),
		})
	}
	pterm.Info.Printfln("Records stored in %s", summary.Dir)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
