package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/sevenstud/internal/archive"
	"github.com/lox/sevenstud/internal/bot"
	"github.com/lox/sevenstud/internal/config"
	"github.com/lox/sevenstud/internal/game"
	"github.com/lox/sevenstud/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#276749")).
			Padding(0, 1).
			Bold(true)

	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53E3E"))
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBD5E0"))
	winnerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F6E05E")).Bold(true)
)

type CLI struct {
	Config  string `short:"c" help:"Path to HCL table configuration" default:"stud.hcl"`
	Seed    string `short:"s" help:"Shuffle seed; empty derives one per deal" default:""`
	Deals   int    `short:"n" help:"Number of deals to play (overrides config)" default:"0"`
	Archive string `help:"SQLite archive for deal summaries (empty disables)" default:""`
	Bots    string `help:"Bot strategy for automated seats (call, rand, fold)" default:"call" enum:"call,rand,fold"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal("game failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli CLI, logger *log.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	deals := cfg.Table.Deals
	if cli.Deals > 0 {
		deals = cli.Deals
	}

	var store *archive.Store
	if cli.Archive != "" {
		store, err = archive.Open(cli.Archive)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Seven-Card Stud ♦ ♣ "))
	fmt.Println()

	orch := game.NewOrchestrator(nil, logger)
	g := &game.GameState{
		Players:  seatNames(cfg),
		Scores:   make(map[string]int),
		Stakes:   cfg.GameStakes(),
		Rotation: cfg.Rotation(),
	}

	for i := 0; i < deals; i++ {
		seed := cli.Seed
		if seed == "" {
			seed = fmt.Sprintf("%s-deal-%d", cfg.Table.Seed, i)
		}

		params := game.DealParams{
			Seed:      seed,
			SeatOrder: seatNames(cfg),
			Kinds:     seatKinds(cfg),
			Stacks:    seatStacks(cfg),
		}
		g, err = orch.StartNewDeal(g, params)
		if err != nil {
			return err
		}

		agents := make(map[int]game.Agent, len(cfg.Seats))
		for seat := range cfg.Seats {
			agents[seat] = newAgent(cli.Bots, fmt.Sprintf("%s-seat-%d", seed, seat))
		}

		g, err = orch.RunDeal(g, agents)
		if err != nil {
			return err
		}

		summary := g.History[0]
		printSummary(summary)

		if store != nil {
			// Archive failures never abort play.
			if err := store.Save(summary); err != nil {
				logger.Warn("failed to archive deal", "deal", summary.DealID, "error", err)
			}
		}
	}

	fmt.Println()
	fmt.Println("Final scores:")
	for _, id := range g.Players {
		fmt.Printf("  %-12s %+d\n", id, g.Scores[id])
	}
	return nil
}

func newAgent(strategy, seed string) game.Agent {
	switch strategy {
	case "rand":
		return bot.NewRandBot(seed)
	case "fold":
		return bot.NewFoldBot()
	default:
		return bot.NewCallBot()
	}
}

func seatNames(cfg *config.Config) []string {
	names := make([]string, len(cfg.Seats))
	for i, s := range cfg.Seats {
		names[i] = s.Name
	}
	return names
}

func seatKinds(cfg *config.Config) []game.PlayerKind {
	kinds := make([]game.PlayerKind, len(cfg.Seats))
	for i, s := range cfg.Seats {
		kinds[i] = game.PlayerKind(s.Kind)
	}
	return kinds
}

func seatStacks(cfg *config.Config) []int {
	stacks := make([]int, len(cfg.Seats))
	for i, s := range cfg.Seats {
		stacks[i] = s.Stack
	}
	return stacks
}

func printSummary(summary game.DealSummary) {
	fmt.Printf("Deal %s (%s) pot $%d\n", summary.DealID, summary.Variant, summary.Pot)
	for seat, id := range summary.SeatOrder {
		hand := summary.Hands[seat]
		line := fmt.Sprintf("  seat %d %-12s %s | %s", seat, id,
			renderCards(hand.Down), renderCards(hand.Up))
		if containsSeat(summary.WinnersHigh, seat) || containsSeat(summary.WinnersLow, seat) {
			line += "  " + winnerStyle.Render(fmt.Sprintf("wins $%d", summary.PotShare[id]))
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func renderCards(cards []poker.Card) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
			rendered[i] = redCardStyle.Render(c.String())
		} else {
			rendered[i] = blackCardStyle.Render(c.String())
		}
	}
	return strings.Join(rendered, " ")
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
