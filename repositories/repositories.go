package repositories

import (
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Lead      LeadRepository
	APIRecord APIRecordRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sqlx.DB, logger zerolog.Logger) *Repositories {
	return &Repositories{
		Lead:      NewLeadRepository(db, logger),
		APIRecord: NewAPIRecordRepository(db),
	}
}
