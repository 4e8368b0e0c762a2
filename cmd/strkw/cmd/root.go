package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/strkw/foundation/core/log"
	"github.com/msto63/strkw/foundation/utils/stringx"
	"github.com/msto63/strkw/internal/keywords"
	"github.com/msto63/strkw/pkg/core/config"
)

var (
	cfgFile string
	verbose bool
)

// errFailed signals a failed keyword or suite that has already been reported
var errFailed = errors.New("failed")

var rootCmd = &cobra.Command{
	Use:   "strkw",
	Short: "strkw - String-Keywords für Testautomatisierung",
	Long: `strkw stellt String-Keywords für Testautomatisierung bereit:
Zeilenzugriff, Zeilenfilter, Ersetzen und Splitten sowie Groß-/Kleinschreibungs-Prüfungen.

Befehle:
  call     - Ein Keyword direkt aufrufen
  list     - Verfügbare Keywords anzeigen
  run      - Test-Suites (YAML/TOML) ausführen
  version  - Version anzeigen`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		printError("strkw", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./strkw.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// app bundles what every command needs
type app struct {
	config   *config.Config
	logger   *log.Logger
	executor *keywords.Executor
}

func newApp() (*app, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger()
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}
	log.SetDefault(logger)

	registry, err := keywords.New(keywords.Options{Logger: logger})
	if err != nil {
		return nil, err
	}

	library := stringx.New(stringx.Options{
		Logger:       logger.WithName("stringx"),
		MatchTimeout: cfg.Regex.MatchTimeout.Duration,
	})

	return &app{
		config:   cfg,
		logger:   logger,
		executor: keywords.NewExecutor(registry, library, logger),
	}, nil
}
