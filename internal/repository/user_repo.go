package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattia9203/RunApp-Server/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert writes the profile keyed on user_id. On conflict the incoming
// values win unconditionally, nulls included, so a sync from the app always
// reflects its latest state.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_id, name, weight, height)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			weight = EXCLUDED.weight,
			height = EXCLUDED.height
	`
	_, err := r.db.Exec(ctx, query, user.UserID, user.Name, user.Weight, user.Height)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT user_id, name, weight, height
		FROM users
		WHERE user_id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&user.UserID, &user.Name, &user.Weight, &user.Height)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
