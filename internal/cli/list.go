// list.go implements the "cardinfo list" command.
//
// The list command prints the names registered in the card directory,
// sorted alphabetically, as plain lines or as a JSON array.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// newListCommand creates the "list" cobra command.
func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names in the card directory",
		Long: `List every name registered in the card directory.

Only names are printed; use "lookup" to see a card.

Examples:
  cardinfo list
  cardinfo list --directory cards.yaml --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			printNames(cmd.OutOrStdout(), a.flags.jsonOutput, a.dir.Names())
			return nil
		},
	}
}

// printNames outputs directory names in text or JSON format.
func printNames(w io.Writer, asJSON bool, names []string) {
	if asJSON {
		type resultJSON struct {
			Names []string `json:"names"`
		}
		// Names never returns nil, so an empty directory renders as [].
		writeJSON(w, resultJSON{Names: names})
		return
	}

	if len(names) == 0 {
		fmt.Fprintln(w, "No cards found.")
		return
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}
