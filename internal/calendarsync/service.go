// Package calendarsync mirrors schedule entries into the owner's Google
// Calendar. The app obtains the OAuth access token on the device and
// forwards it per request, so the backend never stores Google credentials.
package calendarsync

import (
	"context"
	"fmt"
	"time"

	"github.com/2fit/fitstreak/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type Service struct {
	calendarID string
}

// NewService creates the mirror against the given calendar, usually the
// "primary" alias.
func NewService(calendarID string) *Service {
	return &Service{
		calendarID: calendarID,
	}
}

// CreateRemoteEvent inserts a single event into the remote calendar and
// returns the remote event ID. Recurrence is weekly, matching how schedule
// entries repeat.
func (s *Service) CreateRemoteEvent(
	ctx context.Context,
	accessToken string,
	title string,
	start, end time.Time,
) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendarsync.createremoteevent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	httpClient := oauth2.NewClient(ctx, tokenSource)
	httpClient.Transport = otelhttp.NewTransport(httpClient.Transport)

	calendarService, err := calendar.NewService(
		ctx,
		option.WithHTTPClient(httpClient),
	)
	if err != nil {
		return "", fmt.Errorf("create calendar service: %w", err)
	}

	event := &calendar.Event{
		Summary: title,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: start.Location().String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: end.Location().String(),
		},
		Recurrence: []string{"RRULE:FREQ=WEEKLY"},
	}

	created, err := calendarService.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert calendar event: %w", err)
	}

	return created.Id, nil
}
