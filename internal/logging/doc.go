// Package logging builds the diagnostic sink for cardinfo.
//
// The sink is a *zap.Logger constructed from an explicit Config and passed
// to the CLI at startup; nothing in this package keeps global state.
// ReportFailure writes one structured entry per failure carrying the full
// error chain, which the user-facing output never shows.
package logging
