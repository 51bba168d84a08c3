package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/blogem/lead-api/models"
)

// APIRecordRepository persists one summary row per API request
type APIRecordRepository interface {
	CreateUpdateAPIRequestSummary(ctx context.Context, record *models.APIRequestRecord) (int64, error)
}

// apiRecordRepository implements APIRecordRepository interface
type apiRecordRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewAPIRecordRepository creates a new API record repository
func NewAPIRecordRepository(db *sqlx.DB) APIRecordRepository {
	return NewAPIRecordRepositoryWithClock(db, time.Now)
}

// NewAPIRecordRepositoryWithClock creates an API record repository that
// stamps rows with the given clock
func NewAPIRecordRepositoryWithClock(db *sqlx.DB, now func() time.Time) APIRecordRepository {
	return &apiRecordRepository{db: db, now: now}
}

// CreateUpdateAPIRequestSummary inserts the record and commits it. Rows are
// never updated; the name is kept for the table's historical writer.
func (r *apiRecordRepository) CreateUpdateAPIRequestSummary(ctx context.Context, record *models.APIRequestRecord) (int64, error) {
	record.RequestDateTime = r.now().UTC().Truncate(time.Second)

	query := `
		INSERT INTO api_records_table (
			request_date_time, lead_id, agent_id, supplier_id,
			result, extra_information, source_ip, internal_aws_ip
		) VALUES (
			:request_date_time, :lead_id, :agent_id, :supplier_id,
			:result, :extra_information, :source_ip, :internal_aws_ip
		)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.NamedExecContext(ctx, query, record)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to insert api request record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to get api request record ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit api request record: %w", err)
	}

	record.ID = id
	return id, nil
}
