// Command archlint verifies layered architecture boundaries.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	configfile "github.com/archlint/archlint/internal/adapters/driven/config/file"
	"github.com/archlint/archlint/internal/adapters/driven/storage/sqlite"
	"github.com/archlint/archlint/internal/adapters/driving/cli"
	"github.com/archlint/archlint/internal/core/ports/driving"
	"github.com/archlint/archlint/internal/core/services"
	"github.com/archlint/archlint/internal/logger"
	"github.com/archlint/archlint/internal/scanner"
)

// version is overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

// run wires the adapters to the core and executes the CLI. It exists so
// deferred cleanup still happens before the process exits.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer := services.NewAnalyzerService(scanner.New())

	// History is best effort: an unusable store disables the history
	// command but never blocks analysis.
	var history driving.RunHistory
	store, err := sqlite.NewStore(os.Getenv("ARCHLINT_DATA_DIR"))
	if err != nil {
		logger.Warn("opening history store: %v", err)
	} else {
		defer store.Close()
		history = services.NewHistoryService(store)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Analyzer: analyzer,
		History:  history,
		Config:   configfile.NewLoader(),
	})

	return cli.Execute(ctx)
}
