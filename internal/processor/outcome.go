package processor

import (
	"fmt"

	"sportsync/internal/domain"
)

type Status int

const (
	// StatusCompleted: entity persisted (or confirmed a no-op), outbox
	// populated, transaction committed.
	StatusCompleted Status = iota

	// StatusDeferred: a required dependency is not sourced yet. The outcome
	// carries the sourcing requests; the coordinator emits them and
	// redelivers the original command with attempt+1.
	StatusDeferred

	// StatusTerminal: the document is structurally unprocessable. Logged
	// and dropped, never retried.
	StatusTerminal
)

// Outcome is what a processor hands back to the coordinator instead of
// signaling retry through a distinguished exception type.
type Outcome struct {
	Status   Status
	Requests []domain.DocumentRequested
	Reason   string
}

func Completed() Outcome {
	return Outcome{Status: StatusCompleted}
}

func Deferred(requests ...domain.DocumentRequested) Outcome {
	return Outcome{Status: StatusDeferred, Requests: requests}
}

func Terminal(format string, args ...any) Outcome {
	return Outcome{Status: StatusTerminal, Reason: fmt.Sprintf(format, args...)}
}
