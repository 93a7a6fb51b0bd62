package db

const Schema = `
CREATE TABLE IF NOT EXISTS user_account (
    id       SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role     TEXT NOT NULL DEFAULT 'seeker'
);

CREATE TABLE IF NOT EXISTS resource (
    id            BIGSERIAL PRIMARY KEY,
    skill         TEXT NOT NULL,
    title         TEXT NOT NULL,
    url           TEXT NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    source        TEXT NOT NULL DEFAULT '',
    resource_type TEXT NOT NULL DEFAULT 'article',
    tags          TEXT[] NOT NULL DEFAULT '{}',
    level         TEXT NOT NULL DEFAULT 'beginner',
    rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
    num_ratings   INTEGER NOT NULL DEFAULT 0,
    active        BOOLEAN NOT NULL DEFAULT TRUE,
    added_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS resource_skill_idx ON resource (lower(skill));

CREATE TABLE IF NOT EXISTS resource_feedback (
    id          BIGSERIAL PRIMARY KEY,
    resource_id BIGINT NOT NULL REFERENCES resource(id),
    user_id     INTEGER NOT NULL,
    rating      INTEGER,
    helpful     BOOLEAN,
    comments    TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
