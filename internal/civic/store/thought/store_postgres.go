package thought

import (
	"context"
	"database/sql"
	"fmt"

	"tpb/internal/civic/models"
	"tpb/internal/platform/postgres"
	id "tpb/pkg/domain"
)

// PostgresStore persists civic thoughts.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed thought store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, t *models.Thought) (id.ThoughtID, error) {
	query := `
		INSERT INTO user_thoughts (
			user_id, content, jurisdiction_level, is_local, is_state, is_federal,
			town_id, state_id, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING thought_id
	`
	var thoughtID int64
	err := s.db.QueryRowContext(ctx, query,
		int64(t.UserID), t.Content, t.Jurisdiction, t.IsLocal, t.IsState, t.IsFederal,
		nullTown(t.TownID), nullState(t.StateID), t.Status, t.CreatedAt,
	).Scan(&thoughtID)
	if err != nil {
		return 0, postgres.Classify("create thought", err)
	}
	t.ID = id.ThoughtID(thoughtID)
	return t.ID, nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]models.Thought, error) {
	query := `
		SELECT thought_id, user_id, content, jurisdiction_level, is_local, is_state, is_federal,
		       town_id, state_id, status, upvotes, downvotes, created_at
		FROM user_thoughts
		WHERE status = $1
		ORDER BY created_at DESC, thought_id DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, models.ThoughtStatusPublished, limit)
	if err != nil {
		return nil, postgres.Classify("list recent thoughts", err)
	}
	defer rows.Close()

	out := make([]models.Thought, 0, limit)
	for rows.Next() {
		var (
			t       models.Thought
			townID  sql.NullInt64
			stateID sql.NullInt64
		)
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Content, &t.Jurisdiction, &t.IsLocal, &t.IsState, &t.IsFederal,
			&townID, &stateID, &t.Status, &t.Upvotes, &t.Downvotes, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list recent thoughts: scan: %w", err)
		}
		if townID.Valid {
			v := id.TownID(townID.Int64)
			t.TownID = &v
		}
		if stateID.Valid {
			v := id.StateID(stateID.Int64)
			t.StateID = &v
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.Classify("list recent thoughts", err)
	}
	return out, nil
}

func nullTown(v *id.TownID) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullState(v *id.StateID) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
