package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/artic/internal/adapter"
	"github.com/mmcdole/artic/internal/adapter/source/artic"
	"github.com/mmcdole/artic/internal/service"
	"github.com/mmcdole/artic/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion, writeConfig bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&writeConfig, "write-config", false, "write the effective config to the config file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: artic [flags] [search terms...]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("artic %s\n", Version)
		return
	}

	if err := run(writeConfig, strings.Join(flag.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(writeConfig bool, searchTerm string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if writeConfig {
		path, err := adapter.SaveConfig(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Configuration written to %s\n", path)
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("artic needs an interactive terminal")
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting artic", "version", Version, "baseURL", cfg.API.BaseURL)

	// Create artwork API client
	client := artic.NewClient(artic.Options{
		BaseURL:   cfg.API.BaseURL,
		IIIFURL:   cfg.API.IIIFURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout,
	}, logger)

	// Create launcher (uses configured viewer or auto-detects)
	launcher := adapter.NewLauncher(cfg.Viewer.Command, cfg.Viewer.Args, logger)

	// Create services
	artworkSvc := service.NewArtworkService(client, cfg.API.RequestsPerSecond, logger)
	imageSvc := service.NewImageService(launcher, client.IIIFURL(), logger)

	// Create TUI model
	model := tui.NewModel(artworkSvc, imageSvc, tui.Options{
		SearchTerm:  searchTerm,
		Debounce:    cfg.UI.Debounce,
		Timeout:     cfg.API.Timeout,
		GridColumns: cfg.UI.GridColumns,
	}, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
