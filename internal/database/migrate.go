package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	picture       TEXT,
	current_xp    INT NOT NULL DEFAULT 0 CHECK (current_xp >= 0),
	level         INT NOT NULL DEFAULT 1 CHECK (level >= 1),
	stats         JSONB NOT NULL DEFAULT '{}'::jsonb,
	weight_unit   TEXT NOT NULL DEFAULT 'kg' CHECK (weight_unit IN ('kg','lbs')),
	badges        TEXT[] NOT NULL DEFAULT '{}',
	join_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at    TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS sessions (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id    UUID NOT NULL REFERENCES users(id),
	token      TEXT NOT NULL UNIQUE,
	ip_address TEXT,
	user_agent TEXT,
	is_active  BOOLEAN NOT NULL DEFAULT true,
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS exercises (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	target_muscle TEXT NOT NULL DEFAULT '',
	type          TEXT NOT NULL DEFAULT 'Strength',
	is_verified   BOOLEAN NOT NULL DEFAULT false,
	created_by    UUID REFERENCES users(id),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS exercises_name_lower_idx ON exercises (lower(name));

CREATE TABLE IF NOT EXISTS workouts (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id         UUID NOT NULL REFERENCES users(id),
	name            TEXT NOT NULL,
	type            TEXT NOT NULL DEFAULT 'Strength',
	started_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	ended_at        TIMESTAMPTZ,
	total_xp_earned INT NOT NULL DEFAULT 0 CHECK (total_xp_earned >= 0),
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS workouts_user_started_idx ON workouts (user_id, started_at DESC);

CREATE TABLE IF NOT EXISTS workout_logs (
	id          BIGSERIAL PRIMARY KEY,
	workout_id  UUID NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	exercise_id UUID NOT NULL REFERENCES exercises(id),
	sets        INT NOT NULL DEFAULT 1,
	reps        INT NOT NULL DEFAULT 0,
	weight      DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS workout_logs_workout_idx ON workout_logs (workout_id);

CREATE TABLE IF NOT EXISTS workout_templates (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id    UUID NOT NULL REFERENCES users(id),
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_template_exercises (
	id          BIGSERIAL PRIMARY KEY,
	template_id UUID NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
	exercise_id UUID NOT NULL REFERENCES exercises(id),
	position    INT NOT NULL DEFAULT 0,
	target_sets INT NOT NULL DEFAULT 3,
	target_reps INT NOT NULL DEFAULT 10
);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
