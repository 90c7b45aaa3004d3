// List command enumerates stored records.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ancestral-tools/lineage/internal/sqlite"
	"github.com/ancestral-tools/lineage/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List records of a kind",
	Long: `List enumerates people or families in Gramps ID order.

Valid kinds: person, family

Example:
  lineage list person
  lineage list family --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	kind := args[0]

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	switch kind {
	case kindPerson:
		return listPeople(store)
	case kindFamily:
		return listFamilies(store)
	default:
		return fmt.Errorf("unknown record kind %q (valid: person, family)", kind)
	}
}

func listPeople(store *sqlite.Store) error {
	handles, err := store.PersonHandles()
	if err != nil {
		return fmt.Errorf("list people: %w", err)
	}

	people := make([]*types.Person, 0, len(handles))
	for _, h := range handles {
		p, err := store.Person(h)
		if err != nil {
			return fmt.Errorf("fetch person %s: %w", h, err)
		}
		people = append(people, p)
	}

	if flagJSON {
		return printJSON(people)
	}
	printPersonTable(people)
	return nil
}

func listFamilies(store *sqlite.Store) error {
	handles, err := store.FamilyHandles()
	if err != nil {
		return fmt.Errorf("list families: %w", err)
	}

	families := make([]*types.Family, 0, len(handles))
	for _, h := range handles {
		f, err := store.Family(h)
		if err != nil {
			return fmt.Errorf("fetch family %s: %w", h, err)
		}
		families = append(families, f)
	}

	if flagJSON {
		return printJSON(families)
	}
	printFamilyTable(families)
	return nil
}

// printPersonTable prints people in a human-readable table format.
func printPersonTable(people []*types.Person) {
	if len(people) == 0 {
		fmt.Println("No people found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tGENDER\tHANDLE")
	fmt.Fprintln(w, "--\t----\t------\t------")
	for _, p := range people {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.GrampsID,
			p.DisplayName(),
			p.Gender,
			shortHandle(p.Handle),
		)
	}
	w.Flush()
	printTrimmed(sb.String())

	fmt.Printf("Total: %d person(s)\n", len(people))
}

// printFamilyTable prints families in a human-readable table format.
func printFamilyTable(families []*types.Family) {
	if len(families) == 0 {
		fmt.Println("No families found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tREL\tCHILDREN\tHANDLE")
	fmt.Fprintln(w, "--\t---\t--------\t------")
	for _, f := range families {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			f.GrampsID,
			f.RelType,
			len(f.ChildRefs),
			shortHandle(f.Handle),
		)
	}
	w.Flush()
	printTrimmed(sb.String())

	fmt.Printf("Total: %d family(ies)\n", len(families))
}

// shortHandle truncates a handle to its first 8 characters for readability.
func shortHandle(h types.Handle) string {
	s := string(h)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// printTrimmed prints tabwriter output, trimming trailing whitespace from
// each line.
func printTrimmed(output string) {
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}
