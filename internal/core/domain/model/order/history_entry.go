package order

import (
	"errors"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// HistoryEntry records one status change: which status was entered, when, and by whom.
// Entries are immutable once appended.
type HistoryEntry struct {
	status Status
	at     time.Time
	actor  string
}

// NewHistoryEntry validates and builds an entry. The instant is normalized to UTC
// and truncated to kernel.InstantPrecision.
func NewHistoryEntry(status Status, at time.Time, actor string) (HistoryEntry, error) {
	actor = strings.TrimSpace(actor)

	var problems []error
	if err := status.Validate(); err != nil {
		problems = append(problems, err)
	}
	if at.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("history.timestamp"))
	}
	if actor == "" {
		problems = append(problems, errs.NewValueIsRequiredError("history.actor"))
	}
	if err := errors.Join(problems...); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{status: status, at: kernel.Instant(at), actor: actor}, nil
}

func (h HistoryEntry) Status() Status {
	return h.status
}

// Timestamp is the UTC instant the status was entered.
func (h HistoryEntry) Timestamp() time.Time {
	return h.at
}

func (h HistoryEntry) Actor() string {
	return h.actor
}
