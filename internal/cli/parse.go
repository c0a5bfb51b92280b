// parse.go implements the "cardinfo parse" command, which
// runs the parser on a raw card string without a directory lookup.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/cardinfo/internal/card"
)

// newParseCommand creates the "parse" cobra command.
func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <raw>",
		Short: "Parse a raw card string",
		Long: `Parse a raw card string of the form "number month year cvv".

Tokens are separated by single spaces and must all be unsigned integers.
Quote the string so the shell passes it as one argument.

Examples:
  cardinfo parse "1234567 04 25 123"
  cardinfo parse --json "1234567 04 25 123"`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args[0])
		},
	}
}

func (a *app) runParse(cmd *cobra.Command, raw string) error {
	record, err := card.Parse(raw)
	if err != nil {
		return a.fail(cmd, err, zap.String("input", raw))
	}
	printCard(cmd.OutOrStdout(), a.flags.jsonOutput, record)
	return nil
}
