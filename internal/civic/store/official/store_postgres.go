package official

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"tpb/internal/civic/models"
	"tpb/internal/platform/postgres"
)

const officialColumns = `
	official_id, full_name, title, party,
	COALESCE(email, ''), COALESCE(phone, ''), COALESCE(website, ''),
	ocd_id, COALESCE(state_code, ''), is_current
`

// PostgresStore reads elected officials.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed official store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindCurrentByDivisions(ctx context.Context, addrs []models.DivisionAddress) ([]models.Official, error) {
	if len(addrs) == 0 {
		return []models.Official{}, nil
	}
	keys := make([]string, len(addrs))
	for i, a := range addrs {
		keys[i] = a.String()
	}
	query := `SELECT ` + officialColumns + `
		FROM elected_officials
		WHERE is_current AND ocd_id = ANY($1)
		ORDER BY array_position($1, ocd_id), full_name
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(keys))
	if err != nil {
		return nil, postgres.Classify("find officials by division", err)
	}
	return scanOfficials(rows, "find officials by division")
}

func (s *PostgresStore) FindCurrentStatewide(ctx context.Context, stateCode string, titles []string) ([]models.Official, error) {
	query := `SELECT ` + officialColumns + `
		FROM elected_officials
		WHERE is_current
		  AND UPPER(state_code) = UPPER($1)
		  AND title = ANY($2)
		ORDER BY CASE title
			WHEN 'Governor' THEN 1
			WHEN 'U.S. Senator' THEN 2
			WHEN 'Lieutenant Governor' THEN 3
			ELSE 4
		END, full_name
	`
	rows, err := s.db.QueryContext(ctx, query, strings.TrimSpace(stateCode), pq.Array(titles))
	if err != nil {
		return nil, postgres.Classify("find statewide officials", err)
	}
	return scanOfficials(rows, "find statewide officials")
}

// divisionOf parses a stored ocd_id. Identifiers outside the supported shapes
// (municipal "place:" segments, for one) leave the division zero rather than
// failing the whole read.
func divisionOf(ocdID string) models.DivisionAddress {
	division, err := models.ParseDivisionAddress(ocdID)
	if err != nil {
		return models.DivisionAddress{}
	}
	return division
}

func scanOfficials(rows *sql.Rows, op string) ([]models.Official, error) {
	defer rows.Close()
	out := make([]models.Official, 0)
	for rows.Next() {
		var (
			o     models.Official
			ocdID string
		)
		if err := rows.Scan(
			&o.ID, &o.FullName, &o.Title, &o.Party,
			&o.Email, &o.Phone, &o.Website,
			&ocdID, &o.StateCode, &o.IsCurrent,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		o.Division = divisionOf(ocdID)
		o.StateCode = strings.TrimSpace(o.StateCode)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.Classify(op, err)
	}
	return out, nil
}
