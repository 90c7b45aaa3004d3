// Ignore command acknowledges a finding so it is hidden from reports.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/pkg/types"
)

var ignoreRemove bool

var ignoreCmd = &cobra.Command{
	Use:   "ignore <handle> <rule-id>",
	Short: "Acknowledge a finding",
	Long: `Ignore marks a finding as acknowledged, hiding it from default
findings output. The rule is still evaluated on every verify run, and
changing a rule's thresholds changes its identity, which clears the
acknowledgment automatically.

Use --remove to clear an acknowledgment.

Example:
  lineage ignore 0192d5a0-1234-7abc-8def-0123456789ab unknown-gender
  lineage ignore 0192d5a0-1234-7abc-8def-0123456789ab "old-age:max_age=90,estimate=false" --remove`,
	Args: cobra.ExactArgs(2),
	RunE: runIgnore,
}

func init() {
	ignoreCmd.Flags().BoolVar(&ignoreRemove, "remove", false, "clear the acknowledgment instead of adding it")
}

func runIgnore(cmd *cobra.Command, args []string) error {
	handle := types.Handle(args[0])
	ruleID := args[1]

	path, err := marksPath()
	if err != nil {
		return err
	}
	marks, err := loadMarks()
	if err != nil {
		return err
	}

	if ignoreRemove {
		marks.Remove(handle, ruleID)
	} else {
		marks.Add(handle, ruleID)
	}
	if err := marks.Save(path); err != nil {
		return fmt.Errorf("save marks: %w", err)
	}

	if ignoreRemove {
		fmt.Printf("Cleared acknowledgment for %s / %s\n", handle, ruleID)
	} else {
		fmt.Printf("Acknowledged %s / %s\n", handle, ruleID)
	}
	return nil
}
