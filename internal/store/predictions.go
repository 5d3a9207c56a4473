package store

import (
	"database/sql"
	"fmt"
	"time"
)

// ReplaceRacePredictions swaps the whole prediction set in one transaction
func (db *DB) ReplaceRacePredictions(predictions []RacePrediction) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM race_predictions`); err != nil {
		return err
	}

	for _, p := range predictions {
		_, err := tx.Exec(`
			INSERT INTO race_predictions (
				target_distance, target_meters, predicted_seconds, predicted_pace,
				vdot, source_race_id, confidence, confidence_score, computed_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			p.TargetDistance, p.TargetMeters, p.PredictedSeconds, p.PredictedPace,
			p.VDOT, p.SourceRaceID, p.Confidence, p.ConfidenceScore,
			p.ComputedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting %s prediction: %w", p.TargetDistance, err)
		}
	}

	return tx.Commit()
}

// GetAllRacePredictions retrieves all race predictions ordered by distance
func (db *DB) GetAllRacePredictions() ([]RacePrediction, error) {
	rows, err := db.Query(`
		SELECT id, target_distance, target_meters, predicted_seconds, predicted_pace,
			vdot, source_race_id, confidence, confidence_score, computed_at
		FROM race_predictions
		ORDER BY target_meters
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []RacePrediction
	for rows.Next() {
		p, err := scanRacePrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, *p)
	}

	return predictions, rows.Err()
}

// DeleteAllRacePredictions removes all predictions
func (db *DB) DeleteAllRacePredictions() error {
	_, err := db.Exec(`DELETE FROM race_predictions`)
	return err
}

func scanRacePrediction(row rowScanner) (*RacePrediction, error) {
	var p RacePrediction
	var sourceRaceID sql.NullInt64
	var computedAt string

	err := row.Scan(
		&p.ID, &p.TargetDistance, &p.TargetMeters, &p.PredictedSeconds, &p.PredictedPace,
		&p.VDOT, &sourceRaceID, &p.Confidence, &p.ConfidenceScore, &computedAt,
	)
	if err != nil {
		return nil, err
	}

	if sourceRaceID.Valid {
		id := sourceRaceID.Int64
		p.SourceRaceID = &id
	}

	p.ComputedAt, err = time.Parse(time.RFC3339, computedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing computed_at %q: %w", computedAt, err)
	}

	return &p, nil
}
