package streaks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// SweepResult splits the event set into what the caller keeps showing and
// what got removed from the store.
type SweepResult struct {
	Keep    []Event `json:"keep"`
	Removed []Event `json:"removed"`
}

type eventsRemover interface {
	Delete(ctx context.Context, ownerID string, id int) error
}

// Sweep hard-deletes events whose occurrence has fully elapsed
// (end < now) or which are already completed, keeping the working set
// bounded. An event whose delete fails stays in Keep, so the caller's
// in-memory state never references a half-removed entry; the failures are
// combined into the returned error.
func Sweep(ctx context.Context, remover eventsRemover, events []Event, now time.Time) (SweepResult, error) {
	res := SweepResult{Keep: make([]Event, 0, len(events))}

	var errs error
	for _, e := range events {
		if !e.End.Before(now) && !e.Completed {
			res.Keep = append(res.Keep, e)
			continue
		}

		if err := remover.Delete(ctx, e.OwnerID, e.ID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("delete event %d: %w", e.ID, err))
			res.Keep = append(res.Keep, e)
			continue
		}
		res.Removed = append(res.Removed, e)
	}

	return res, errs
}
