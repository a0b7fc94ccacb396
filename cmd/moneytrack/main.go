package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneytrack/internal/api"
	"moneytrack/internal/config"
	"moneytrack/internal/log"
	"moneytrack/internal/repository/memory"
	"moneytrack/internal/service"
	"moneytrack/internal/tui"
)

func main() {
	demo := flag.Bool("demo", false, "run against seeded in-memory data instead of a server")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	logger := log.OpenFile(cfg.Log.Dir, parseLevel(cfg.Log.Level), "main")

	var repos tui.Repos
	if *demo {
		store := memory.New(cfg.Server.PageSize)
		memory.SeedDemo(store)
		repos = tui.Repos{Accounts: store, Movements: store, Groups: store, Categories: store}
	} else {
		httpc := &http.Client{Timeout: 30 * time.Second}
		client := api.NewClient(cfg.Server.BaseURL, httpc, cfg.Server.PageSize, logger.WithComponent("api"))
		repos = tui.Repos{Accounts: client, Movements: client, Groups: client, Categories: client}
	}

	services := tui.Services{
		Assigner: &service.Assigner{Movements: repos.Movements},
		Importer: &service.Importer{Movements: repos.Movements},
		Adjuster: &service.BalanceAdjuster{Accounts: repos.Accounts},
		Overview: &service.Overview{
			Accounts:   repos.Accounts,
			Groups:     repos.Groups,
			Categories: repos.Categories,
		},
	}

	p := tea.NewProgram(tui.New(ctx, cfg, repos, services, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
