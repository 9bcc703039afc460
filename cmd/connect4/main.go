package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"

	"github.com/connect4ai/connect4/internal/config"
	"github.com/connect4ai/connect4/internal/llm"
	"github.com/connect4ai/connect4/internal/repository/postgres"
	redisrepo "github.com/connect4ai/connect4/internal/repository/redis"
	"github.com/connect4ai/connect4/internal/service/advisor"
	"github.com/connect4ai/connect4/internal/service/match"
	"github.com/connect4ai/connect4/internal/transport/watch"
	"github.com/connect4ai/connect4/pkg/uid"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	cmd := &cli.Command{
		Name:  "connect4",
		Usage: "console Connect 4 with LLM-backed AI seats",
		Commands: []*cli.Command{
			playCommand(cfg),
			clientsCommand(cfg),
			historyCommand(cfg),
		},
		DefaultCommand: "play",
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			pterm.Info.Println("Game interrupted. Goodbye!")
			return
		}
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func playCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "start a game (pvp, ava or pva)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "game mode: pvp (human vs human), ava (AI vs AI), pva (human vs AI)",
			},
			&cli.BoolFlag{
				Name:  "resume",
				Usage: "resume the saved game in the configured slot",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runPlay(ctx, cfg, c.String("mode"), c.Bool("resume"))
		},
	}
}

func runPlay(ctx context.Context, cfg *config.Config, modeFlag string, resume bool) error {
	ui := match.NewConsoleUI()

	var store match.SaveStore
	if cfg.RedisURL != "" {
		client, err := redisrepo.NewClient(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Printf("[REDIS] %v, save/resume disabled", err)
		} else {
			defer client.Close()
			store = redisrepo.NewSavedGameStore(client)
		}
	}

	var m *match.Match
	if resume {
		if store == nil {
			return fmt.Errorf("--resume requires REDIS_URL to be configured")
		}
		resumed, err := match.Resume(ctx, store, cfg.SaveSlot, ui)
		if err != nil {
			if errors.Is(err, match.ErrNoSavedGame) {
				return fmt.Errorf("no saved game in slot %q", cfg.SaveSlot)
			}
			return err
		}
		m = resumed
		pterm.Info.Printfln("Resuming %s game %s at move %d", m.Mode, m.GameID, m.Game.MoveCount)
	} else {
		mode, err := resolveMode(modeFlag)
		if err != nil {
			return err
		}
		m = match.New(mode, uid.GenerateGameID(), ui)
		m.SaveSlot = cfg.SaveSlot
		m.Store = store
	}

	if m.Seats[0].IsAI || m.Seats[1].IsAI {
		client, err := buildLLMClient(cfg)
		if err != nil {
			return err
		}
		m.Advisor = advisor.NewLLMAdvisor(client, cfg.AIMoveTimeout)
	}

	if cfg.DatabaseURL != "" {
		db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Printf("[DB] %v, history disabled", err)
		} else {
			defer db.Close()
			m.History = postgres.NewHistoryRepo(db)
		}
	}

	if cfg.WatchAddr != "" {
		hub := watch.NewHub()
		go func() {
			if err := hub.Serve(cfg.WatchAddr); err != nil {
				log.Printf("[WATCH] server stopped: %v", err)
			}
		}()
		m.Publisher = hub
	}

	pterm.DefaultHeader.Printfln("Connect 4 — mode: %s", strings.ToUpper(string(m.Mode)))
	return m.Run(ctx)
}

// resolveMode uses the flag when present, otherwise asks interactively
// like the original mode menu.
func resolveMode(modeFlag string) (match.Mode, error) {
	if modeFlag != "" {
		return match.ParseMode(modeFlag)
	}

	options := []string{
		"pvp — Player vs Player",
		"ava — AI vs AI",
		"pva — Player vs AI",
	}
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show("Choose game mode")
	if err != nil {
		return "", err
	}
	return match.ParseMode(strings.Fields(choice)[0])
}

func buildLLMClient(cfg *config.Config) (llm.Client, error) {
	return llm.NewFromConfig(llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		APIKey:   apiKeyFor(cfg),
		BaseURL:  cfg.OpenAIBaseURL,
	})
}

func apiKeyFor(cfg *config.Config) string {
	switch cfg.LLMProvider {
	case "anthropic":
		return cfg.AnthropicAPIKey
	case "openrouter":
		return cfg.OpenRouterAPIKey
	default:
		return cfg.OpenAIAPIKey
	}
}

func clientsCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "clients",
		Usage: "probe every configured LLM client with a test call",
		Action: func(ctx context.Context, c *cli.Command) error {
			registry := llm.DefaultRegistry(cfg.OpenAIAPIKey, cfg.OpenRouterAPIKey, cfg.AnthropicAPIKey)
			pterm.Info.Printfln("Found %d clients to test", len(registry))

			results := llm.CheckAll(ctx, registry, cfg.AIMoveTimeout)

			passed, failed, skipped := 0, 0, 0
			for _, r := range results {
				switch r.Status {
				case llm.CheckPassed:
					passed++
					pterm.Success.Printfln("%s (%s, %s)", r.Name, r.Provider, r.Model)
				case llm.CheckSkipped:
					skipped++
					pterm.Warning.Printfln("%s: skipped, API key not found in environment", r.Name)
				case llm.CheckFailed:
					failed++
					pterm.Error.Printfln("%s: %v", r.Name, r.Err)
				}
			}

			pterm.Info.Printfln("Total: %d | Passed: %d | Failed: %d | Skipped: %d",
				len(results), passed, failed, skipped)
			if failed > 0 {
				return fmt.Errorf("%d client(s) failed", failed)
			}
			return nil
		},
	}
}

func historyCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list recently finished games",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 10,
				Usage: "number of games to show",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("history requires DATABASE_URL to be configured")
			}

			db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := postgres.NewHistoryRepo(db).ListRecent(ctx, int(c.Int("limit")))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				pterm.Info.Println("No finished games recorded yet")
				return nil
			}

			data := pterm.TableData{{"Finished", "Mode", "Winner", "Reason", "Moves", "Duration"}}
			for _, e := range entries {
				winner := e.Winner
				if winner == "" {
					winner = "-"
				}
				data = append(data, []string{
					e.FinishedAt.Format(time.RFC3339),
					e.Mode,
					winner,
					e.Reason,
					fmt.Sprintf("%d", e.TotalMoves),
					(time.Duration(e.DurationSeconds) * time.Second).String(),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
