// Findings command reports the recorded findings of the last verify run.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/internal/jsonl"
	"github.com/ancestral-tools/lineage/internal/verify"
	"github.com/ancestral-tools/lineage/pkg/types"
)

var findingsAll bool

var findingsCmd = &cobra.Command{
	Use:   "findings",
	Short: "Show findings from the last verify run",
	Long: `Findings prints the findings recorded by the last verify run, hiding
the ones acknowledged with the ignore command. Use --all to include
acknowledged findings.

Example:
  lineage findings
  lineage findings --all
  lineage findings --json`,
	Args: cobra.NoArgs,
	RunE: runFindings,
}

func init() {
	findingsCmd.Flags().BoolVar(&findingsAll, "all", false, "include acknowledged findings")
}

func runFindings(cmd *cobra.Command, args []string) error {
	findings, err := readFindings()
	if err != nil {
		return err
	}

	marks, err := loadMarks()
	if err != nil {
		return err
	}
	if !findingsAll {
		findings = marks.Filter(findings)
	}

	if flagJSON {
		return printJSON(findings)
	}
	printFindingTable(findings, marks)
	return nil
}

// readFindings loads the findings file. A missing file means verify has not
// run yet, which is an empty result rather than an error.
func readFindings() ([]types.Finding, error) {
	path, err := findingsPath()
	if err != nil {
		return nil, err
	}

	records, err := jsonl.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read findings: %w", err)
	}

	findings := make([]types.Finding, 0, len(records))
	for _, rec := range records {
		var f types.Finding
		if err := json.Unmarshal(rec, &f); err != nil {
			continue
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// loadMarks loads the acknowledgment set from the data directory.
func loadMarks() (*verify.Marks, error) {
	path, err := marksPath()
	if err != nil {
		return nil, err
	}
	marks, err := verify.LoadMarks(path)
	if err != nil {
		return nil, fmt.Errorf("load marks: %w", err)
	}
	return marks, nil
}

// printFindingTable prints findings in a human-readable table format.
func printFindingTable(findings []types.Finding, marks *verify.Marks) {
	if len(findings) == 0 {
		fmt.Println("No findings.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "SEVERITY\tMESSAGE\tTYPE\tID\tNAME")
	fmt.Fprintln(w, "--------\t-------\t----\t--\t----")
	for _, f := range findings {
		severity := f.Severity
		if findingsAll && marks.Contains(f.Handle, f.RuleID) {
			severity += " (ack)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			severity,
			f.Message,
			f.ObjectType,
			f.GrampsID,
			f.Name,
		)
	}
	w.Flush()
	printTrimmed(sb.String())

	fmt.Printf("Total: %d finding(s)\n", len(findings))
}
