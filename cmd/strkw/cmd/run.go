package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/strkw/internal/suite"
)

var (
	runWatch    bool
	runJSON     bool
	runFailFast bool
	runNoColor  bool
)

var runCmd = &cobra.Command{
	Use:   "run <suite>...",
	Short: "Test-Suites ausführen",
	Long: `Führt eine oder mehrere Test-Suites (YAML oder TOML) aus.
Mit --watch wird die Suite bei jeder Änderung der Datei erneut ausgeführt.
Schlägt ein Test fehl, endet strkw mit Exit-Code 1.

Beispiele:
  strkw run suites/lines.yaml
  strkw run suites/*.toml --fail-fast
  strkw run suites/lines.yaml --watch
  strkw run suites/lines.yaml --json > report.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuites,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Suite bei Änderungen erneut ausführen")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Report als JSON ausgeben")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Nach dem ersten fehlgeschlagenen Test abbrechen")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "Report ohne Farben ausgeben")
}

func runSuites(cmd *cobra.Command, args []string) error {
	if runWatch && len(args) != 1 {
		return fmt.Errorf("--watch erwartet genau eine Suite, erhalten: %d", len(args))
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	failFast := a.config.Runner.FailFast
	if cmd.Flags().Changed("fail-fast") {
		failFast = runFailFast
	}
	runner := suite.NewRunner(a.executor, suite.RunnerOptions{Logger: a.logger, FailFast: failFast})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if runWatch {
		path := args[0]
		runOnce(ctx, cmd, a, runner, path)
		return suite.Watch(ctx, path, a.config.Runner.WatchDebounce.Duration, a.logger, func() {
			fmt.Fprintln(cmd.OutOrStdout())
			runOnce(ctx, cmd, a, runner, path)
		})
	}

	failed := false
	for _, path := range args {
		if !runOnce(ctx, cmd, a, runner, path) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// runOnce loads, runs and reports one suite and tells whether it passed
func runOnce(ctx context.Context, cmd *cobra.Command, a *app, runner *suite.Runner, path string) bool {
	s, err := suite.Load(path)
	if err != nil {
		printError("Suite konnte nicht geladen werden", err)
		return false
	}

	report := runner.Run(ctx, s)

	out := cmd.OutOrStdout()
	if runJSON {
		err = suite.RenderJSON(out, report)
	} else {
		err = suite.RenderConsole(out, report, a.config.ColorEnabled() && !runNoColor)
	}
	if err != nil {
		printError("Report konnte nicht geschrieben werden", err)
		return false
	}

	return report.Passed()
}
