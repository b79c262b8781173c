package streaks

import (
	"context"
	"fmt"
	"time"

	"github.com/2fit/fitstreak/internal/instrumentation"
	"github.com/2fit/fitstreak/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=streaks_test

type eventsRepo interface {
	Add(ctx context.Context, event *Event) (*Event, error)
	Get(ctx context.Context, ownerID string, id int) (*Event, error)
	List(ctx context.Context, params ListParams) ([]Event, error)
	SetCompleted(ctx context.Context, ownerID string, id int) error
	SetExternalSyncID(ctx context.Context, ownerID string, id int, syncID string) error
	Delete(ctx context.Context, ownerID string, id int) error
}

type countersRepo interface {
	GetCounters(ctx context.Context, ownerID string) (Counters, error)
	UpdateCounters(ctx context.Context, ownerID string, delta Delta) error
}

type calendarMirror interface {
	CreateRemoteEvent(ctx context.Context, accessToken, title string, start, end time.Time) (string, error)
}

// ReconcileResult is what a schedule reconciliation leaves behind: the fresh
// today status, the counters after evaluation and what got swept away.
type ReconcileResult struct {
	Status   TodayStatus `json:"status"`
	Counters Counters    `json:"counters"`
	Removed  []Event     `json:"removed"`
}

// CreateEventResult carries the stored event plus an optional warning when
// the remote calendar mirror failed. Mirroring is best-effort, a failed sync
// never fails the creation.
type CreateEventResult struct {
	Event       *Event `json:"event"`
	SyncWarning string `json:"syncWarning,omitempty"`
}

type Service struct {
	events      eventsRepo
	counters    countersRepo
	calendar    calendarMirror
	statusCache *StatusCache
	instr       *instrumentation.Instrumentation
}

func NewService(
	events eventsRepo,
	counters countersRepo,
	calendar calendarMirror,
	instr *instrumentation.Instrumentation,
) *Service {
	return &Service{
		events:      events,
		counters:    counters,
		calendar:    calendar,
		statusCache: NewStatusCache(),
		instr:       instr,
	}
}

// ListEvents returns the owner's weekly schedule, optionally narrowed down
// to one event kind.
func (s *Service) ListEvents(ctx context.Context, ownerID string, kind *Kind) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.listevents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.events.List(ctx, ListParams{OwnerID: ownerID, Kind: kind})
}

// CreateEvent validates and stores a new schedule entry, then mirrors it to
// the owner's remote calendar when an access token came along. The mirror is
// best-effort: on failure the event stays stored and the result carries a
// warning instead.
func (s *Service) CreateEvent(
	ctx context.Context,
	ownerID string,
	input EventInput,
	calendarAccessToken string,
	now time.Time,
) (_ *CreateEventResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.createevent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner", ownerID))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.Add(ctx, &Event{
		OwnerID: ownerID,
		Day:     input.Day,
		Kind:    input.Kind,
		Title:   input.Title,
		Start:   input.Start,
		End:     input.End,
	})
	if err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}

	s.instr.CounterNewEvents.Inc()
	s.statusCache.Invalidate(ownerID, now)

	res := &CreateEventResult{Event: event}
	if s.calendar == nil || calendarAccessToken == "" {
		return res, nil
	}

	start, end := event.WindowOn(nextOccurrence(event.Day, now))
	syncID, syncErr := s.calendar.CreateRemoteEvent(ctx, calendarAccessToken, event.Title, start, end)
	if syncErr != nil {
		s.instr.CounterCalendarSyncErrors.Inc()
		log.Warnf("create event %d: calendar mirror failed: %s", event.ID, syncErr)
		res.SyncWarning = "event saved, but calendar sync failed"
		return res, nil
	}

	if err := s.events.SetExternalSyncID(ctx, ownerID, event.ID, syncID); err != nil {
		log.Errorf("create event %d: store sync id: %s", event.ID, err)
		res.SyncWarning = "event saved, but calendar sync failed"
		return res, nil
	}
	event.ExternalSyncID = syncID

	return res, nil
}

// CompleteEvent marks an event done and bumps the streak counters.
// Idempotent for an already completed event.
func (s *Service) CompleteEvent(ctx context.Context, ownerID string, id int, now time.Time) (_ *Event, _ Counters, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.completeevent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.events.Get(ctx, ownerID, id)
	if err != nil {
		return nil, Counters{}, err
	}

	counters, err := s.counters.GetCounters(ctx, ownerID)
	if err != nil {
		return nil, Counters{}, fmt.Errorf("get counters: %w", err)
	}

	delta := Complete(counters, *event, now)
	if delta.Empty() {
		return event, counters, nil
	}

	if err := s.events.SetCompleted(ctx, ownerID, id); err != nil {
		return nil, Counters{}, fmt.Errorf("set completed: %w", err)
	}
	if err := s.counters.UpdateCounters(ctx, ownerID, delta); err != nil {
		return nil, Counters{}, fmt.Errorf("update counters: %w", err)
	}

	s.instr.CounterStreakIncrements.Inc()
	s.statusCache.Invalidate(ownerID, now)

	event.Completed = true
	delta.ApplyTo(&counters)
	return event, counters, nil
}

// Today resolves the owner's schedule against now. Results are cached for a
// short while per owner and day.
func (s *Service) Today(ctx context.Context, ownerID string, now time.Time) (_ *TodayStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, ok := s.statusCache.Get(ownerID, now); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		return cached, nil
	}

	events, err := s.events.List(ctx, ListParams{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	status := ResolveToday(events, now)
	s.statusCache.Set(ownerID, now, &status)

	return &status, nil
}

// Reconcile runs the full schedule maintenance pass for one owner: evaluate
// the streak counters against today's schedule, persist the resulting delta,
// sweep elapsed and completed events, and hand back the fresh status.
//
// Sweep failures are logged and do not fail the reconciliation; the affected
// events simply stay in the working set until the next pass.
func (s *Service) Reconcile(ctx context.Context, ownerID string, now time.Time) (_ *ReconcileResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.reconcile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner", ownerID))

	events, err := s.events.List(ctx, ListParams{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	counters, err := s.counters.GetCounters(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get counters: %w", err)
	}

	status := ResolveToday(events, now)
	delta := Evaluate(counters, status.Todays, now)
	if !delta.Empty() {
		if err := s.counters.UpdateCounters(ctx, ownerID, delta); err != nil {
			return nil, fmt.Errorf("update counters: %w", err)
		}
		if delta.StreakCount != nil && *delta.StreakCount == 0 {
			s.instr.CounterStreakResets.Inc()
		}
		delta.ApplyTo(&counters)
	}

	swept, sweepErr := Sweep(ctx, s.events, events, now)
	if sweepErr != nil {
		log.Errorf("reconcile owner %s: sweep: %s", ownerID, sweepErr)
	}
	if len(swept.Removed) > 0 {
		s.instr.CounterSweptEvents.Add(float64(len(swept.Removed)))
	}

	final := ResolveToday(swept.Keep, now)
	s.statusCache.Set(ownerID, now, &final)

	return &ReconcileResult{
		Status:   final,
		Counters: counters,
		Removed:  swept.Removed,
	}, nil
}

// Monthly returns the four week-bucket completion counts for the given
// month, as shown on the profile activity chart.
func (s *Service) Monthly(ctx context.Context, ownerID string, month time.Month, year int) (_ [4]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.events.List(ctx, ListParams{OwnerID: ownerID})
	if err != nil {
		return [4]int{}, fmt.Errorf("list events: %w", err)
	}

	return MonthlyCompleted(events, month, year), nil
}

// RemovePastEvents sweeps elapsed and completed events without touching the
// counters. Exposed for the explicit cleanup action in the calendar UI.
func (s *Service) RemovePastEvents(ctx context.Context, ownerID string, now time.Time) (_ *SweepResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.service.removepastevents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.events.List(ctx, ListParams{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	swept, sweepErr := Sweep(ctx, s.events, events, now)
	if sweepErr != nil {
		// partial failure, report what did get removed
		log.Errorf("remove past events owner %s: %s", ownerID, sweepErr)
	}
	if len(swept.Removed) > 0 {
		s.instr.CounterSweptEvents.Add(float64(len(swept.Removed)))
		s.statusCache.Invalidate(ownerID, now)
	}

	return &swept, nil
}

// nextOccurrence finds the next date (today included) falling on the given
// weekday, for projecting a stored weekly slot onto a concrete calendar day.
func nextOccurrence(day Weekday, now time.Time) time.Time {
	d := now
	for i := 0; i < 7; i++ {
		if WeekdayOf(d) == day {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	return now
}
