// lookup.go implements the "cardinfo lookup" command.
//
// The lookup command resolves a name against the card directory and parses
// the stored string. The name comes from the first argument or, when no
// argument is given, from one line of standard input.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/cardinfo/internal/card"
	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// namePrompt is printed before reading a name from an interactive terminal.
const namePrompt = "Enter name:"

// newLookupCommand creates the "lookup" cobra command.
func newLookupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [name]",
		Short: "Look up a card by name",
		Long: `Look up the card stored for a name and print the parsed record.

When no name is given, it is read from standard input (one line,
surrounding whitespace removed).

Examples:
  cardinfo lookup Amy
  echo Amy | cardinfo lookup
  cardinfo lookup --json Amy`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runLookup(cmd, args[0], true)
			}
			return a.runLookup(cmd, "", false)
		},
	}
}

// runLookup resolves a name and prints the parsed card. When hasName is
// false the name is read from the command's input first.
func (a *app) runLookup(cmd *cobra.Command, name string, hasName bool) error {
	// Step 1: Obtain the name.
	if !hasName {
		var err error
		name, err = readName(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return a.fail(cmd, err)
		}
	}
	a.logger.Debug("looking up card", zap.String("name", name))

	// Step 2: Lookup and parse. Failures keep their classification.
	record, err := card.GetInfo(a.dir, name)
	if err != nil {
		return a.fail(cmd, err, zap.String("name", name))
	}

	// Step 3: Print the record.
	a.logger.Debug("parsed card", zap.String("name", name))
	printCard(cmd.OutOrStdout(), a.flags.jsonOutput, record)
	return nil
}

// readName reads one line from in and trims it. The prompt is written to
// out only when in is an interactive terminal. End of input without a
// newline is accepted; any other read failure is model.KindOther.
func readName(in io.Reader, out io.Writer) (string, error) {
	if isTerminal(in) {
		fmt.Fprintln(out, namePrompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", model.WrapError(model.KindOther, "Failed to read name from input.", err)
	}
	return strings.TrimSpace(line), nil
}

// isTerminal reports whether r is a terminal (including Cygwin/MSYS ptys).
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
