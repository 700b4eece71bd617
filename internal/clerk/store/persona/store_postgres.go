package persona

import (
	"context"
	"database/sql"
	"time"

	"tpb/internal/clerk/models"
	"tpb/internal/platform/postgres"
	id "tpb/pkg/domain"
	pstrings "tpb/pkg/platform/strings"
)

// PostgresStore reads personas from ai_clerks.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed persona store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByKey(ctx context.Context, key string) (*models.Persona, error) {
	query := `
		SELECT clerk_id, clerk_key, clerk_name, base_prompt, COALESCE(model, ''), capabilities, enabled
		FROM ai_clerks
		WHERE clerk_key = $1 AND enabled
	`
	var (
		p    models.Persona
		caps string
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&p.ID, &p.Key, &p.Name, &p.BasePrompt, &p.Model, &caps, &p.Enabled,
	)
	if err != nil {
		return nil, postgres.Classify("find persona", err)
	}
	p.Capabilities = pstrings.SplitList(caps)
	return &p, nil
}

// Save upserts by clerk_key and sets p.ID.
func (s *PostgresStore) Save(ctx context.Context, p *models.Persona) error {
	query := `
		INSERT INTO ai_clerks (clerk_key, clerk_name, base_prompt, model, capabilities, enabled)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		ON CONFLICT (clerk_key) DO UPDATE SET
			clerk_name = EXCLUDED.clerk_name,
			base_prompt = EXCLUDED.base_prompt,
			model = EXCLUDED.model,
			capabilities = EXCLUDED.capabilities,
			enabled = EXCLUDED.enabled
		RETURNING clerk_id
	`
	var clerkID int64
	err := s.db.QueryRowContext(ctx, query,
		p.Key, p.Name, p.BasePrompt, p.Model, p.CapabilityList(), p.Enabled,
	).Scan(&clerkID)
	if err != nil {
		return postgres.Classify("save persona", err)
	}
	p.ID = id.ClerkID(clerkID)
	return nil
}

func (s *PostgresStore) RecordInteraction(ctx context.Context, clerkID id.ClerkID, at time.Time) error {
	query := `
		INSERT INTO ai_clerk_interactions (clerk_id, interaction_count, last_used_at)
		VALUES ($1, 1, $2)
		ON CONFLICT (clerk_id) DO UPDATE SET
			interaction_count = ai_clerk_interactions.interaction_count + 1,
			last_used_at = EXCLUDED.last_used_at
	`
	if _, err := s.db.ExecContext(ctx, query, int64(clerkID), at); err != nil {
		return postgres.Classify("record persona interaction", err)
	}
	return nil
}
