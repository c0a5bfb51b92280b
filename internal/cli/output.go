// output.go holds the text and JSON renderers shared by all
// commands. Successful results and user-facing failure messages go to
// stdout; only unexpected CLI errors go to stderr.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// errorJSON is the JSON shape of a user-facing failure. It has
// no detail field; the cause of a KindOther failure only goes to the log.
type errorJSON struct {
	Error errorBodyJSON `json:"error"`
}

type errorBodyJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// printFailure writes the user-facing rendering of a card failure.
func printFailure(w io.Writer, asJSON bool, err error) {
	message := model.UserMessage(err)
	if !asJSON {
		fmt.Fprintln(w, message)
		return
	}
	writeJSON(w, errorJSON{Error: errorBodyJSON{
		Kind:    model.KindOf(err).String(),
		Message: message,
	}})
}

// printError outputs an error that was not produced by the card pipeline
// (bad flags, wrong argument count). These are operator errors, so the
// text is shown as is.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// printCard writes a successfully parsed record.
func printCard(w io.Writer, asJSON bool, card model.CardRecord) {
	if asJSON {
		writeJSON(w, card)
		return
	}
	fmt.Fprintln(w, "Credit card info:")
	fmt.Fprintln(w, card.String())
}

// writeJSON writes v as indented JSON followed by a newline.
// The types passed in here always marshal, so the error is ignored.
func writeJSON(w io.Writer, v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(data))
}
