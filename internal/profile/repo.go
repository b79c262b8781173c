package profile

import (
	"context"
	"errors"

	"github.com/2fit/fitstreak/internal/streaks"
	"github.com/2fit/fitstreak/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile (
			owner_id, full_name, preferred_name, date_of_birth,
			weight_kg, height_cm, gender, profile_completed,
			streak_count, weekly_workouts, last_streak_update
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, $9);
	`,
		p.OwnerID, p.FullName, p.PreferredName, p.DateOfBirth,
		p.WeightKG, p.HeightCM, p.Gender, p.Completed,
		p.LastStreakUpdate,
	)
	return err
}

func (r *Repo) Get(ctx context.Context, ownerID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p := &Profile{}
	err = r.db.
		QueryRow(ctx, `
			SELECT
				owner_id, full_name, preferred_name, date_of_birth,
				weight_kg, height_cm, gender, profile_completed,
				streak_count, weekly_workouts, last_streak_update
			FROM user_profile
			WHERE owner_id = $1;
		`, ownerID).
		Scan(
			&p.OwnerID, &p.FullName, &p.PreferredName, &p.DateOfBirth,
			&p.WeightKG, &p.HeightCM, &p.Gender, &p.Completed,
			&p.StreakCount, &p.WeeklyWorkouts, &p.LastStreakUpdate,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, ownerID string, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE user_profile SET
			full_name         = COALESCE($2, full_name),
			preferred_name    = COALESCE($3, preferred_name),
			date_of_birth     = COALESCE($4, date_of_birth),
			weight_kg         = COALESCE($5, weight_kg),
			height_cm         = COALESCE($6, height_cm),
			gender            = COALESCE($7, gender),
			profile_completed = COALESCE($8, profile_completed)
		WHERE owner_id = $1;
	`,
		ownerID,
		update.FullName, update.PreferredName, update.DateOfBirth,
		update.WeightKG, update.HeightCM, update.Gender, update.Completed,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *Repo) GetCounters(ctx context.Context, ownerID string) (_ streaks.Counters, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.getcounters")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var c streaks.Counters
	err = r.db.
		QueryRow(ctx, `
			SELECT streak_count, weekly_workouts, last_streak_update
			FROM user_profile
			WHERE owner_id = $1;
		`, ownerID).
		Scan(&c.StreakCount, &c.WeeklyWorkouts, &c.LastStreakUpdate)
	if errors.Is(err, pgx.ErrNoRows) {
		return streaks.Counters{}, ErrProfileNotFound
	}
	if err != nil {
		return streaks.Counters{}, err
	}
	return c, nil
}

func (r *Repo) UpdateCounters(ctx context.Context, ownerID string, delta streaks.Delta) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.updatecounters")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE user_profile SET
			streak_count       = COALESCE($2, streak_count),
			weekly_workouts    = COALESCE($3, weekly_workouts),
			last_streak_update = COALESCE($4, last_streak_update)
		WHERE owner_id = $1;
	`, ownerID, delta.StreakCount, delta.WeeklyWorkouts, delta.LastStreakUpdate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
