package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent analysis runs",
	Long: `Lists recent runs from the local history store, newest first.
Useful for spotting violation-count trends across commits.`,
	RunE: runHistoryCmd,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if runHistory == nil {
		return errors.New("history store not configured")
	}

	recs, err := runHistory.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(recs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for _, rec := range recs {
		cmd.Printf("%s  %-4s  files=%-5d violations=%-4d cycles=%-3d %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Summary.Verdict,
			rec.Summary.TotalFiles,
			rec.Summary.ViolationCount,
			rec.Summary.CycleCount,
			rec.Root)
	}
	return nil
}
