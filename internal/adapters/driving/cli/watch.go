package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/archlint/archlint/internal/logger"
)

var watchInterval time.Duration

// skipDirs are never watched; they churn constantly and are excluded
// from analysis anyway.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-run the check whenever project files change",
	Long: `Watches the project tree and re-runs the boundary check when files
change. Re-analysis is rate limited so bursts of writes (branch
switches, large saves) trigger a single run. Stops on interrupt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second,
		"minimum time between re-analyses")
	watchCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "path to archlint.toml or archlint.yaml")
	watchCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, root); err != nil {
		return err
	}

	// First run happens immediately; later runs are throttled.
	runOnce(cmd, root)

	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	limiter.Allow() // charge the initial run

	dirty := false
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories must be watched too.
				if err := watchTree(watcher, event.Name); err != nil {
					logger.Warn("watching %s: %v", event.Name, err)
				}
			}
			dirty = true

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)

		case <-ticker.C:
			if dirty && limiter.Allow() {
				dirty = false
				runOnce(cmd, root)
			}
		}
	}
}

// watchTree adds path and every directory below it to the watcher.
// Non-directories and excluded directories are skipped silently.
func watchTree(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}

// runOnce runs a single analysis and renders the text report. Errors
// are reported but do not stop the watch loop.
func runOnce(cmd *cobra.Command, root string) {
	cfg, err := loadConfig(root)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return
	}

	report, err := analyzerService.Analyze(cmd.Context(), root, cfg)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return
	}

	recordRun(cmd, report)

	fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n", time.Now().Format("15:04:05"))
	if err := renderText(cmd.OutOrStdout(), report, !checkNoColor); err != nil {
		cmd.PrintErrln("Error:", err)
	}
}
