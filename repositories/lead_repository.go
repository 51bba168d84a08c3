package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/blogem/lead-api/models"
)

// LeadRepository reads rows of leads_table
type LeadRepository interface {
	ReadLeadFromID(ctx context.Context, leadID string) models.Response
}

// leadRepository implements LeadRepository interface
type leadRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sqlx.DB, logger zerolog.Logger) LeadRepository {
	return &leadRepository{db: db, logger: logger}
}

// ReadLeadFromID looks up the lead with the given id. The in-body status is
// 200 with the row as JSON, or 400 when there is no match or the read fails.
// Faults are logged and never returned.
func (r *leadRepository) ReadLeadFromID(ctx context.Context, leadID string) models.Response {
	lead, err := r.queryLead(ctx, leadID)
	if err != nil {
		r.logger.Error().Err(err).Str("lead_id", leadID).Msg("Error reading data from leads table")
		return models.ReadErrorResponse(err)
	}

	if lead == nil {
		r.logger.Info().Str("lead_id", leadID).Msg("No lead matched the query")
		return models.NotFoundResponse()
	}

	body, err := models.EncodeJSON(lead)
	if err != nil {
		err = fmt.Errorf("failed to encode lead: %w", err)
		r.logger.Error().Err(err).Str("lead_id", leadID).Msg("Error reading data from leads table")
		return models.ReadErrorResponse(err)
	}

	return models.Response{StatusCode: http.StatusOK, Body: body}
}

// queryLead returns the first row matching leadID, or nil when none match
func (r *leadRepository) queryLead(ctx context.Context, leadID string) (*models.Lead, error) {
	query := r.db.Rebind(`SELECT * FROM leads_table WHERE lead_id = ?`)

	rows, err := r.db.QueryxContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read lead: %w", err)
		}
		return nil, nil
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read lead columns: %w", err)
	}

	var dbTypes []string
	if columnTypes, err := rows.ColumnTypes(); err == nil {
		dbTypes = make([]string, len(columnTypes))
		for i, ct := range columnTypes {
			if ct != nil {
				dbTypes[i] = ct.DatabaseTypeName()
			}
		}
	}

	values, err := rows.SliceScan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan lead: %w", err)
	}

	return models.NewLead(columns, dbTypes, values), nil
}
