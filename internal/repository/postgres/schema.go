package postgres

// Schema is the DDL for the task table on PostgreSQL. As with the SQLite
// store, executing it is the caller's responsibility.
const Schema = `
CREATE TABLE IF NOT EXISTS task (
	task_id      SERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	finished     BOOLEAN NOT NULL DEFAULT FALSE,
	created_date TIMESTAMP NOT NULL
);`
