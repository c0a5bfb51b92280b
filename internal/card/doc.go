// Package card resolves names to raw card strings and parses those strings
// into model.CardRecord values.
//
// Parsing is a linear validate-then-construct pipeline:
//
//  1. Split the raw string on single spaces (empty tokens are kept)
//  2. Parse every token as an unsigned integer, stopping at the first failure
//  3. Require exactly four values
//  4. Assign them positionally: number, month, year, cvv
//
// Every failure is a *model.Error. Unknown names and wrong token counts are
// model.KindInvalidInput; a token that is not a number is model.KindOther
// and wraps the *strconv.NumError.
package card
