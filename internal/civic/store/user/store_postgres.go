package user

import (
	"context"
	"database/sql"
	"fmt"

	"tpb/internal/civic/models"
	"tpb/internal/platform/postgres"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/sentinel"
)

// PostgresStore reads users and reassigns their home town.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	query := `
		SELECT user_id, username, COALESCE(email, ''), first_name, last_name,
		       email_verified, current_town_id, current_state_id, civic_points
		FROM users
		WHERE user_id = $1
	`
	var (
		u       models.User
		townID  sql.NullInt64
		stateID sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, query, int64(userID)).Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.EmailVerified, &townID, &stateID, &u.CivicPoints,
	)
	if err != nil {
		return nil, postgres.Classify("find user", err)
	}
	if townID.Valid {
		t := id.TownID(townID.Int64)
		u.TownID = &t
	}
	if stateID.Valid {
		st := id.StateID(stateID.Int64)
		u.StateID = &st
	}
	return &u, nil
}

func (s *PostgresStore) UpdateTown(ctx context.Context, userID id.UserID, townID id.TownID, stateID id.StateID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET current_town_id = $1, current_state_id = $2 WHERE user_id = $3`,
		int64(townID), int64(stateID), int64(userID),
	)
	if err != nil {
		return postgres.Classify("update user town", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user town: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update user town: %w", sentinel.ErrNotFound)
	}
	return nil
}
