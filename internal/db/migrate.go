package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// set re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		nric           TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		age            INTEGER NOT NULL CHECK(age >= 0),
		marital_status TEXT NOT NULL CHECK(marital_status IN ('SINGLE','MARRIED')),
		role           TEXT NOT NULL CHECK(role IN ('APPLICANT','OFFICER','MANAGER')),
		password_hash  TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		manager_nric  TEXT NOT NULL REFERENCES persons(nric),
		neighborhood  TEXT NOT NULL,
		open_date     TEXT NOT NULL,
		close_date    TEXT NOT NULL,
		officer_slots INTEGER NOT NULL DEFAULT 0 CHECK(officer_slots >= 0),
		visible       INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	// Project names are unique case-insensitively.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_name
		ON projects(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS flat_types (
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		kind            TEXT NOT NULL CHECK(kind IN ('TWO_ROOM','THREE_ROOM')),
		units_remaining INTEGER NOT NULL CHECK(units_remaining >= 0),
		price_sgd       INTEGER NOT NULL DEFAULT 0 CHECK(price_sgd >= 0),
		ord             INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, kind)
	)`,

	// Approved officer roster, appended on registration approval.
	`CREATE TABLE IF NOT EXISTS project_officers (
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		officer_nric TEXT NOT NULL,
		approved_at  TEXT NOT NULL,
		PRIMARY KEY (project_id, officer_nric)
	)`,

	`CREATE TABLE IF NOT EXISTS applications (
		id             TEXT PRIMARY KEY,
		applicant_nric TEXT NOT NULL,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		flat_kind      TEXT NOT NULL CHECK(flat_kind IN ('TWO_ROOM','THREE_ROOM')),
		status         TEXT NOT NULL CHECK(status IN (
			'PENDING','SUCCESSFUL','UNSUCCESSFUL','BOOKED',
			'WITHDRAWAL_PENDING','WITHDRAWAL_SUCCESSFUL','WITHDRAWAL_UNSUCCESSFUL')),
		prior_status   TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_applications_applicant
		ON applications(applicant_nric)`,

	`CREATE TABLE IF NOT EXISTS officer_registrations (
		id           TEXT PRIMARY KEY,
		officer_nric TEXT NOT NULL,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		status       TEXT NOT NULL CHECK(status IN ('PENDING','SUCCESSFUL','UNSUCCESSFUL')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		UNIQUE (officer_nric, project_id)
	)`,

	`CREATE TABLE IF NOT EXISTS enquiries (
		id          TEXT PRIMARY KEY,
		author_nric TEXT NOT NULL,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		text        TEXT NOT NULL,
		reply       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		replied_at  TEXT
	)`,
}
