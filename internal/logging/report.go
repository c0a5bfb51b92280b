package logging

import (
	"go.uber.org/zap"

	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// FailureMessage is the entry message written for every reported failure.
const FailureMessage = "card lookup failed"

// ReportFailure writes the diagnostic rendering of err to logger: its
// classification, the full Error() text, and every link of the unwrap chain.
// Extra fields (for example the queried name) are appended as given.
// A nil err is ignored.
func ReportFailure(logger *zap.Logger, err error, fields ...zap.Field) {
	if err == nil {
		return
	}

	entry := make([]zap.Field, 0, len(fields)+3)
	entry = append(entry,
		zap.String("kind", model.KindOf(err).String()),
		zap.Error(err),
		zap.Strings("chain", model.Chain(err)),
	)
	entry = append(entry, fields...)

	logger.Error(FailureMessage, entry...)
}
