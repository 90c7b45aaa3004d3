// Verify command runs the full consistency pass and records its findings.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/internal/jsonl"
	"github.com/ancestral-tools/lineage/internal/verify"
	"github.com/ancestral-tools/lineage/pkg/types"
)

var (
	verifyEstimate bool
	verifyQuiet    bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the consistency checks over all records",
	Long: `Verify evaluates every person and family against the configured rule
catalog and writes the findings to findings.jsonl in the data directory.
Acknowledged findings are still recomputed on every run; use the findings
command to view the unacknowledged set.

Thresholds come from the verify section of config.yaml.

Example:
  lineage verify
  lineage verify --estimate
  lineage verify --json`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyEstimate, "estimate", false, "estimate birth from baptism and death from burial when unrecorded")
	verifyCmd.Flags().BoolVar(&verifyQuiet, "quiet", false, "suppress progress output")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	th := configThresholds
	if verifyEstimate {
		th.EstimateDates = true
	}

	sink := &verify.SliceSink{}
	runner := &verify.Runner{
		Repo:       store,
		Thresholds: th,
		Sink:       sink,
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	if !verifyQuiet && !flagJSON {
		runner.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rchecked %d/%d", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if err := writeFindings(sink.Findings); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(sink.Findings)
	}

	errorCount := 0
	for _, f := range sink.Findings {
		if f.Severity == types.SeverityError {
			errorCount++
		}
	}
	fmt.Printf("%d finding(s): %d error(s), %d warning(s)\n",
		len(sink.Findings), errorCount, len(sink.Findings)-errorCount)
	return nil
}

// writeFindings persists the full finding set atomically.
func writeFindings(findings []types.Finding) error {
	path, err := findingsPath()
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(findings))
	for _, f := range findings {
		rec, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode finding: %w", err)
		}
		records = append(records, rec)
	}
	if err := jsonl.Write(path, records); err != nil {
		return fmt.Errorf("write findings: %w", err)
	}
	return nil
}
