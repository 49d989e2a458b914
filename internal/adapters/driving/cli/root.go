// Package cli is the cobra-based command line adapter.
//
// Commands talk to the core exclusively through driving ports; the
// concrete services are injected once at startup via SetServices. Exit
// codes are part of the public contract: 0 for a passing run, 1 when a
// completed run found blocking violations, 2 for configuration or
// internal errors.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/archlint/archlint/internal/core/domain"
	"github.com/archlint/archlint/internal/core/ports/driven"
	"github.com/archlint/archlint/internal/core/ports/driving"
	"github.com/archlint/archlint/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Commands check for nil and fail with a clear
// message rather than panicking.
var (
	analyzerService driving.Analyzer
	runHistory      driving.RunHistory
	configLoader    driven.ConfigLoader
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "archlint",
	Short: "Layered dependency boundary verifier",
	Long: `Archlint verifies layered architecture boundaries in a project.

It builds the file-level import graph, classifies every file into a
layer using ordered glob rules, checks each dependency edge against an
allowed-layer policy matrix, detects import cycles, and reports the
result with a pass or fail verdict suitable for CI gating.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Services aggregates everything the commands need. History may be nil
// when the run store is unavailable; commands degrade gracefully.
type Services struct {
	Analyzer driving.Analyzer
	History  driving.RunHistory
	Config   driven.ConfigLoader
}

// SetServices injects the concrete service implementations.
func SetServices(s Services) {
	analyzerService = s.Analyzer
	runHistory = s.History
	configLoader = s.Config
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and maps the result to an exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return ExitCode(err)
}

// ExitCode maps an execution error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrViolationsFound):
		return 1
	default:
		return 2
	}
}
