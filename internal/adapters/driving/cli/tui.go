package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/archlint/archlint/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [path]",
	Short: "Browse findings in an interactive terminal UI",
	Long: `Runs the boundary check and opens an interactive browser over the
findings.

Controls:
  ↑/k, ↓/j - Navigate findings
  Enter    - Show finding detail
  Esc      - Back
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "path to archlint.toml or archlint.yaml")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Panic recovery so a rendering bug still shows a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	report, err := analyzerService.Analyze(cmd.Context(), root, cfg)
	if err != nil {
		return err
	}

	recordRun(cmd, report)

	app := tui.NewApp(report)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
