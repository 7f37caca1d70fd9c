package sqlite

// Schema is the DDL for the task table. The repository never executes it;
// provisioning the schema is the responsibility of whoever owns the database
// handle (the command-line factory, a deployment script, the test suite).
const Schema = `
CREATE TABLE IF NOT EXISTS task (
	task_id      INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	finished     INTEGER NOT NULL DEFAULT 0,
	created_date TEXT NOT NULL
);`
