package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Authentication (singleton row)
		`CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			athlete_id INTEGER NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Race results, entered by hand or imported from Strava
		`CREATE TABLE IF NOT EXISTS races (
			id INTEGER PRIMARY KEY,
			source TEXT NOT NULL,
			external_id INTEGER,
			name TEXT NOT NULL,
			distance_meters REAL NOT NULL CHECK (distance_meters > 0),
			duration_seconds REAL NOT NULL CHECK (duration_seconds > 0),
			raced_at TEXT NOT NULL,
			vdot REAL NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (source, external_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_races_raced_at ON races(raced_at)`,

		// Race Predictions (one row per target distance)
		`CREATE TABLE IF NOT EXISTS race_predictions (
			id INTEGER PRIMARY KEY,
			target_distance TEXT NOT NULL UNIQUE,
			target_meters REAL NOT NULL,
			predicted_seconds INTEGER NOT NULL,
			predicted_pace REAL NOT NULL,
			vdot REAL NOT NULL,
			source_race_id INTEGER,
			confidence TEXT NOT NULL,
			confidence_score REAL NOT NULL,
			computed_at TEXT NOT NULL,
			FOREIGN KEY (source_race_id) REFERENCES races(id) ON DELETE SET NULL
		)`,

		// Sync State (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
