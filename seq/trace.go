package seq

import (
	"iter"

	"github.com/kbukum/seqkit/logger"
)

// Trace outcomes reported when a traced stage ends.
const (
	OutcomeExhausted = "exhausted"
	OutcomeAbandoned = "abandoned"
	OutcomeFailed    = "failed"
)

// Trace returns a pass-through transform that debug-logs every element
// flowing through stage and, when iteration ends, how many elements passed
// and why it ended. Nothing is logged until the result is ranged over.
func Trace[T any](log *logger.Logger, stage string) func(iter.Seq[T]) iter.Seq[T] {
	return func(source iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			zl := log.GetLogger()
			count := 0
			outcome := OutcomeFailed
			defer func() {
				zl.Debug().
					Str(logger.FieldStage, stage).
					Int(logger.FieldCount, count).
					Str(logger.FieldOutcome, outcome).
					Msg("stage finished")
			}()

			for v := range source {
				zl.Debug().
					Str(logger.FieldStage, stage).
					Int(logger.FieldIndex, count).
					Interface(logger.FieldElement, v).
					Msg("element")
				count++
				if !yield(v) {
					outcome = OutcomeAbandoned
					return
				}
			}
			outcome = OutcomeExhausted
		}
	}
}

// Trace debug-logs the elements flowing through s.
func (s Seq[T]) Trace(log *logger.Logger, stage string) Seq[T] {
	return Seq[T](Trace[T](log, stage)(s.All()))
}
