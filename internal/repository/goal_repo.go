package repository

import (
	"context"

	"github.com/mattia9203/RunApp-Server/internal/models"
)

type GoalRepository struct {
	db DBTX
}

func NewGoalRepository(db DBTX) *GoalRepository {
	return &GoalRepository{db: db}
}

// Upsert writes the goal for (user_id, week_start_date) in one statement.
// The ON CONFLICT clause makes concurrent writes for the same week safe;
// last writer wins and exactly one row remains.
func (r *GoalRepository) Upsert(ctx context.Context, goal *models.WeeklyGoal) error {
	query := `
		INSERT INTO weekly_goals (user_id, week_start_date, target_km, target_calories)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, week_start_date)
		DO UPDATE SET
			target_km = EXCLUDED.target_km,
			target_calories = EXCLUDED.target_calories
	`
	_, err := r.db.Exec(ctx, query, goal.UserID, goal.WeekStartDate, goal.TargetKM, goal.TargetCalories)
	return err
}

func (r *GoalRepository) Get(ctx context.Context, userID, weekStartDate string) (*models.WeeklyGoal, error) {
	query := `
		SELECT target_km, target_calories
		FROM weekly_goals
		WHERE user_id = $1 AND week_start_date = $2
	`
	goal := models.WeeklyGoal{UserID: userID, WeekStartDate: weekStartDate}
	err := r.db.QueryRow(ctx, query, userID, weekStartDate).
		Scan(&goal.TargetKM, &goal.TargetCalories)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
