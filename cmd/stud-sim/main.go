package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/sevenstud/internal/bot"
	"github.com/lox/sevenstud/internal/game"
)

type CLI struct {
	Deals   int    `short:"n" help:"Number of deals to simulate" default:"1000"`
	Workers int    `short:"w" help:"Concurrent workers" default:"4"`
	Seats   int    `short:"p" help:"Seats per deal (2-7)" default:"4"`
	Variant string `short:"v" help:"Variant to simulate" default:"high" enum:"high,razz,hilo8"`
	Seed    string `short:"s" help:"Base seed; deal i is shuffled with <seed>-<i>" default:"sim"`
	Bots    string `help:"Bot strategy" default:"rand" enum:"call,rand"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
}

// tally aggregates settlement outcomes across simulated deals
type tally struct {
	mu      sync.Mutex
	deals   int
	pots    int
	chops   int
	lowWins int
	scoops  int
}

func (t *tally) record(summary game.DealSummary) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deals++
	t.pots += summary.Pot
	if len(summary.WinnersHigh) > 1 {
		t.chops++
	}
	if len(summary.WinnersLow) > 0 {
		t.lowWins++
		if len(summary.WinnersHigh) == 1 && len(summary.WinnersLow) == 1 &&
			summary.WinnersHigh[0] == summary.WinnersLow[0] {
			t.scoops++
		}
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if cli.Seats < 2 || cli.Seats > game.MaxSeats {
		logger.Fatal("seats must be between 2 and 7", "seats", cli.Seats)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal("simulation failed", "error", err)
	}
	ctx.Exit(0)
}

// Each worker runs whole deals end to end. The engine itself is
// single-threaded, so all concurrency lives out here.
func run(cli CLI, logger *log.Logger) error {
	var stats tally
	var eg errgroup.Group
	eg.SetLimit(cli.Workers)

	for i := 0; i < cli.Deals; i++ {
		seed := fmt.Sprintf("%s-%d", cli.Seed, i)
		eg.Go(func() error {
			summary, err := simulateDeal(cli, seed, logger)
			if err != nil {
				return fmt.Errorf("deal %s: %w", seed, err)
			}
			stats.record(summary)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Printf("deals:   %d\n", stats.deals)
	fmt.Printf("avg pot: %.1f\n", float64(stats.pots)/float64(stats.deals))
	fmt.Printf("chops:   %d\n", stats.chops)
	if cli.Variant == string(game.VariantHiLo8) {
		fmt.Printf("low wins: %d\n", stats.lowWins)
		fmt.Printf("scoops:   %d\n", stats.scoops)
	}
	return nil
}

func simulateDeal(cli CLI, seed string, logger *log.Logger) (game.DealSummary, error) {
	orch := game.NewOrchestrator(nil, logger)

	seatOrder := make([]string, cli.Seats)
	kinds := make([]game.PlayerKind, cli.Seats)
	stacks := make([]int, cli.Seats)
	agents := make(map[int]game.Agent, cli.Seats)
	for seat := 0; seat < cli.Seats; seat++ {
		seatOrder[seat] = fmt.Sprintf("sim-%d", seat)
		kinds[seat] = game.Automated
		stacks[seat] = 1000
		if cli.Bots == "rand" {
			agents[seat] = bot.NewRandBot(fmt.Sprintf("%s-seat-%d", seed, seat))
		} else {
			agents[seat] = bot.NewCallBot()
		}
	}

	g := &game.GameState{
		Players:  seatOrder,
		Scores:   make(map[string]int),
		Stakes:   game.Stakes{Ante: 10, BringIn: 20, SmallBet: 40, BigBet: 80},
		Rotation: []game.Variant{game.Variant(cli.Variant)},
	}

	g, err := orch.StartNewDeal(g, game.DealParams{
		Seed:      seed,
		SeatOrder: seatOrder,
		Kinds:     kinds,
		Stacks:    stacks,
	})
	if err != nil {
		return game.DealSummary{}, err
	}

	g, err = orch.RunDeal(g, agents)
	if err != nil {
		return game.DealSummary{}, err
	}
	return g.History[0], nil
}
