package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// FieldCount is the number of tokens a raw card string must contain.
const FieldCount = 4

// Parse decodes a raw card string of the form "number month year cvv".
//
// Tokens are separated by exactly one space; leading, trailing or repeated
// spaces produce empty tokens, which fail to parse. No month or year range
// checks are applied.
func Parse(raw string) (model.CardRecord, error) {
	values, err := parseTokens(raw)
	if err != nil {
		return model.CardRecord{}, err
	}

	if len(values) != FieldCount {
		return model.CardRecord{}, model.InvalidInputf(
			"Incorrect number of elements parsed. Expected %d but got %d. Elements: %v.",
			FieldCount, len(values), values)
	}

	return model.CardRecord{
		Number: values[0],
		Expiration: model.Expiration{
			Month: values[1],
			Year:  values[2],
		},
		CVV: values[3],
	}, nil
}

// parseTokens splits raw on single spaces and parses every token as a
// base-10 unsigned integer. It stops at the first token that fails.
func parseTokens(raw string) ([]uint64, error) {
	tokens := strings.Split(raw, " ")
	values := make([]uint64, 0, len(tokens))

	for _, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, model.WrapError(model.KindOther,
				fmt.Sprintf("Failed to parse %q as an unsigned integer. Input: %q.", tok, raw), err)
		}
		values = append(values, v)
	}
	return values, nil
}
