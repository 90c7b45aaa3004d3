// Version command for the lineage CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/pkg/lineage"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lineage version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lineage", lineage.Version)
	},
}
