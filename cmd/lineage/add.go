// Add command stores a record from its JSON representation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <kind> <json>",
	Short: "Add or replace a record",
	Long: `Add stores a record of the given kind from its JSON representation.
A record without a handle gets a fresh one; a record with an existing
handle replaces the stored record. Pass "-" to read the JSON from stdin.

Valid kinds: person, family, event

Example:
  lineage add person '{"gramps_id":"I0001","gender":"female","name":{"given":"Mary","surname":"Jones"}}'
  lineage add event '{"gramps_id":"E0001","event_type":"birth","date":{"year":1900,"month":6,"day":15}}'
  cat family.json | lineage add family -`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	kind := args[0]
	data := []byte(args[1])
	if args[1] == "-" {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	record, err := parseRecordJSON(kind, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", kind, err)
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	var handle types.Handle
	switch r := record.(type) {
	case *types.Person:
		handle, err = store.PutPerson(r)
	case *types.Family:
		handle, err = store.PutFamily(r)
	case *types.Event:
		handle, err = store.PutEvent(r)
	}
	if err != nil {
		return fmt.Errorf("store %s: %w", kind, err)
	}

	if flagJSON {
		return printJSON(map[string]string{"handle": string(handle)})
	}
	fmt.Println(handle)
	return nil
}
