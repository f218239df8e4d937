package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mattia9203/RunApp-Server/internal/models"
)

type RunRepository struct {
	db DBTX
}

func NewRunRepository(db DBTX) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run and fills in its generated id. There is no
// idempotency key: a retried submission creates a second row.
func (r *RunRepository) Create(ctx context.Context, run *models.Run) error {
	path, err := json.Marshal(run.PathPoints)
	if err != nil {
		return fmt.Errorf("encode path points: %w", err)
	}

	query := `
		INSERT INTO runs
			(user_id, timestamp, duration, distance_km, calories, avg_speed, path_points, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING run_id
	`
	return r.db.QueryRow(ctx, query,
		run.UserID,
		run.Timestamp,
		run.Duration,
		run.DistanceKM,
		run.Calories,
		run.AvgSpeed,
		path,
		run.ImageURL,
	).Scan(&run.ID)
}

// ListByUserID returns the user's runs newest first. path_points stays in the
// database; the list payload carries only the summary columns.
func (r *RunRepository) ListByUserID(ctx context.Context, userID string) ([]models.RunSummary, error) {
	query := `
		SELECT run_id, timestamp, duration, distance_km, calories, avg_speed, image_url
		FROM runs
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []models.RunSummary{}
	for rows.Next() {
		var run models.RunSummary
		if err := rows.Scan(
			&run.ID,
			&run.Timestamp,
			&run.Duration,
			&run.Distance,
			&run.Calories,
			&run.Speed,
			&run.ImageURL,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Delete removes a run by its primary key and reports how many rows went
// away. Deleting an unknown id is not an error, the count is just zero.
func (r *RunRepository) Delete(ctx context.Context, runID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM runs WHERE run_id = $1`, runID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
