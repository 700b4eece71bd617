package location

import (
	"context"
	"database/sql"
	"strings"

	"tpb/internal/civic/models"
	"tpb/internal/platform/postgres"
	id "tpb/pkg/domain"
)

const townColumns = `
	t.town_id, t.town_name, t.state_id, s.state_name, s.abbreviation,
	COALESCE(t.us_congress_district, ''),
	COALESCE(t.state_senate_district, ''),
	COALESCE(t.state_house_district, '')
`

// PostgresStore reads town and state reference data.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed location store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindTownByID(ctx context.Context, townID id.TownID) (*models.Town, error) {
	query := `SELECT ` + townColumns + `
		FROM towns t
		JOIN states s ON t.state_id = s.state_id
		WHERE t.town_id = $1
	`
	t, err := scanTown(s.db.QueryRowContext(ctx, query, int64(townID)))
	if err != nil {
		return nil, postgres.Classify("find town by id", err)
	}
	return t, nil
}

func (s *PostgresStore) FindTown(ctx context.Context, townName, state string) (*models.Town, error) {
	query := `SELECT ` + townColumns + `
		FROM towns t
		JOIN states s ON t.state_id = s.state_id
		WHERE LOWER(t.town_name) = LOWER($1)
		  AND (UPPER(s.abbreviation) = UPPER($2) OR LOWER(s.state_name) = LOWER($2))
		ORDER BY t.town_id
		LIMIT 1
	`
	t, err := scanTown(s.db.QueryRowContext(ctx, query, strings.TrimSpace(townName), strings.TrimSpace(state)))
	if err != nil {
		return nil, postgres.Classify("find town", err)
	}
	return t, nil
}

func scanTown(row *sql.Row) (*models.Town, error) {
	var t models.Town
	err := row.Scan(
		&t.ID, &t.Name, &t.StateID, &t.StateName, &t.StateAbbreviation,
		&t.CongressionalDistrict, &t.StateSenateDistrict, &t.StateHouseDistrict,
	)
	if err != nil {
		return nil, err
	}
	t.StateAbbreviation = strings.TrimSpace(t.StateAbbreviation)
	return &t, nil
}
