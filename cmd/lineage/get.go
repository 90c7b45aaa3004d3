// Get command retrieves a record by handle.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <kind> <handle>",
	Short: "Get a record by handle",
	Long: `Get retrieves a record of the given kind by its handle and prints it
as JSON.

Valid kinds: person, family, event

Example:
  lineage get person 0192d5a0-1234-7abc-8def-0123456789ab`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	kind := args[0]
	handle := types.Handle(args[1])

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	var record any
	switch kind {
	case kindPerson:
		record, err = store.Person(handle)
	case kindFamily:
		record, err = store.Family(handle)
	case kindEvent:
		record, err = store.Event(handle)
	default:
		return fmt.Errorf("unknown record kind %q (valid: %s)", kind, validKinds)
	}
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("%s %q not found", kind, handle)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", kind, err)
	}

	return printJSON(record)
}
