package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archlint/archlint/internal/core/domain"
	"github.com/archlint/archlint/internal/logger"
)

var (
	checkConfigPath string
	checkFormat     string
	checkFailOn     []string
	checkNoColor    bool
)

// configFileNames are probed, in order, when --config is not given.
var configFileNames = []string{"archlint.toml", "archlint.yaml", "archlint.yml"}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Verify layer boundaries in a project",
	Long: `Analyses the project at the given path (default ".") and reports
boundary violations, unclassified modules, broken imports and cycles.

Exits 0 when the verdict is pass, 1 when blocking findings exist, and
2 on configuration or internal errors. The JSON report is byte-identical
across runs on identical input, so it can be diffed in CI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "path to archlint.toml or archlint.yaml")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format: text or json")
	checkCmd.Flags().StringSliceVar(&checkFailOn, "fail-on", nil,
		"severities that fail the verdict (overrides config), e.g. error,warning")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	if len(checkFailOn) > 0 {
		blocking := make([]domain.Severity, 0, len(checkFailOn))
		for _, s := range checkFailOn {
			blocking = append(blocking, domain.Severity(s))
		}
		cfg.Blocking = blocking
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	report, err := analyzerService.Analyze(cmd.Context(), root, cfg)
	if err != nil {
		return err
	}

	recordRun(cmd, report)

	switch checkFormat {
	case "json":
		err = renderJSON(cmd.OutOrStdout(), report)
	case "text":
		err = renderText(cmd.OutOrStdout(), report, !checkNoColor)
	default:
		return fmt.Errorf("%w: unknown format %q", domain.ErrConfiguration, checkFormat)
	}
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if report.Summary.Verdict == domain.VerdictFail {
		return fmt.Errorf("%w: %d violation(s)", domain.ErrViolationsFound, report.Summary.ViolationCount)
	}
	return nil
}

// loadConfig loads the explicit --config file, or probes the project
// root for a config file, falling back to defaults when none exists.
func loadConfig(root string) (*domain.Config, error) {
	if configLoader == nil {
		return nil, errors.New("config loader not configured")
	}

	path := checkConfigPath
	if path == "" {
		for _, name := range configFileNames {
			candidate := filepath.Join(root, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		logger.Info("using config file %s", path)
	}

	return configLoader.Load(path)
}

// recordRun persists the run summary. History is best effort: a broken
// store must never fail the analysis itself.
func recordRun(cmd *cobra.Command, report *domain.Report) {
	if runHistory == nil {
		return
	}
	rec := domain.RunRecord{
		Root:    report.Root,
		Summary: report.Summary,
	}
	if err := runHistory.Record(cmd.Context(), rec); err != nil {
		logger.Warn("recording run history: %v", err)
	}
}
