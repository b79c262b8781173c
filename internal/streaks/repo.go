package streaks

import (
	"context"
	"errors"

	"github.com/2fit/fitstreak/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ListParams struct {
	OwnerID string
	Kind    *Kind
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event *Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO event (owner_id, day, kind, title, start_at, end_at, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		event.OwnerID,
		event.Day,
		event.Kind,
		event.Title,
		event.Start,
		event.End,
		event.Completed,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *Repo) Get(ctx context.Context, ownerID string, id int) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.events.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event := &Event{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, owner_id, day, kind, title, start_at, end_at, completed, COALESCE(external_sync_id, '')
			FROM event
			WHERE owner_id = $1 AND id = $2
		`, ownerID, id).
		Scan(
			&event.ID, &event.OwnerID, &event.Day, &event.Kind, &event.Title,
			&event.Start, &event.End, &event.Completed, &event.ExternalSyncID,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner", params.OwnerID))
	if params.Kind != nil {
		span.SetAttributes(attribute.String("kind", string(*params.Kind)))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, day, kind, title, start_at, end_at, completed, COALESCE(external_sync_id, '')
		FROM event
		WHERE owner_id = $1
		  AND ($2::text IS NULL OR kind = $2)
		ORDER BY start_at;
	`, params.OwnerID, params.Kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	events := make([]Event, 0)
	for rows.Next() {
		var event Event
		if err := rows.Scan(
			&event.ID, &event.OwnerID, &event.Day, &event.Kind, &event.Title,
			&event.Start, &event.End, &event.Completed, &event.ExternalSyncID,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *Repo) SetCompleted(ctx context.Context, ownerID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.events.setcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE event SET completed = TRUE
		WHERE owner_id = $1 AND id = $2;
	`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) SetExternalSyncID(ctx context.Context, ownerID string, id int, syncID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.events.setexternalsyncid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE event SET external_sync_id = $3
		WHERE owner_id = $1 AND id = $2;
	`, ownerID, id, syncID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, ownerID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.streaks.events.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM event
		WHERE owner_id = $1 AND id = $2;
	`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}
