package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const raceColumns = `id, source, external_id, name, distance_meters, duration_seconds, raced_at, vdot`

// InsertRace stores a new race and sets its ID
func (db *DB) InsertRace(r *Race) error {
	result, err := db.Exec(`
		INSERT INTO races (source, external_id, name, distance_meters, duration_seconds, raced_at, vdot)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.Source, r.ExternalID, r.Name, r.DistanceMeters, r.DurationSeconds,
		r.RacedAt.UTC().Format(time.RFC3339), r.VDOT)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// UpsertStravaRace inserts or updates a race imported from Strava, keyed by activity ID.
// Returns true if the race was new.
func (db *DB) UpsertStravaRace(r *Race) (inserted bool, err error) {
	if r.ExternalID == nil {
		return false, errors.New("strava race without activity id")
	}
	r.Source = SourceStrava

	var existing int64
	err = db.QueryRow(`SELECT id FROM races WHERE source = ? AND external_id = ?`,
		SourceStrava, *r.ExternalID).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return true, db.InsertRace(r)
	case err != nil:
		return false, err
	}

	_, err = db.Exec(`
		UPDATE races
		SET name = ?, distance_meters = ?, duration_seconds = ?, raced_at = ?, vdot = ?
		WHERE id = ?
	`, r.Name, r.DistanceMeters, r.DurationSeconds, r.RacedAt.UTC().Format(time.RFC3339), r.VDOT, existing)
	if err != nil {
		return false, err
	}
	r.ID = existing
	return false, nil
}

// GetRace retrieves a race by ID
func (db *DB) GetRace(id int64) (*Race, error) {
	row := db.QueryRow(`SELECT `+raceColumns+` FROM races WHERE id = ?`, id)

	r, err := scanRace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRaceNotFound
	}
	return r, err
}

// ListRaces returns all races, newest first
func (db *DB) ListRaces() ([]Race, error) {
	rows, err := db.Query(`SELECT ` + raceColumns + ` FROM races ORDER BY raced_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRaces(rows)
}

// ListRacesSince returns races run at or after since, newest first
func (db *DB) ListRacesSince(since time.Time) ([]Race, error) {
	rows, err := db.Query(`
		SELECT `+raceColumns+`
		FROM races
		WHERE raced_at >= ?
		ORDER BY raced_at DESC, id DESC
	`, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRaces(rows)
}

// DeleteRace removes a race
func (db *DB) DeleteRace(id int64) error {
	result, err := db.Exec(`DELETE FROM races WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRaceNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRace(row rowScanner) (*Race, error) {
	var r Race
	var externalID sql.NullInt64
	var racedAt string

	err := row.Scan(&r.ID, &r.Source, &externalID, &r.Name, &r.DistanceMeters,
		&r.DurationSeconds, &racedAt, &r.VDOT)
	if err != nil {
		return nil, err
	}

	if externalID.Valid {
		id := externalID.Int64
		r.ExternalID = &id
	}

	r.RacedAt, err = time.Parse(time.RFC3339, racedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing raced_at %q: %w", racedAt, err)
	}

	return &r, nil
}

func scanRaces(rows *sql.Rows) ([]Race, error) {
	var races []Race
	for rows.Next() {
		r, err := scanRace(rows)
		if err != nil {
			return nil, err
		}
		races = append(races, *r)
	}
	return races, rows.Err()
}
