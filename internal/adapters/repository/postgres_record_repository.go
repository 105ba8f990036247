package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres error code for undefined_table.
const pgUndefinedTable = "42P01"

// PostgresRecordRepository serves the dataset from a sleep_records table for
// deployments where the survey data has been loaded into Postgres instead of
// shipping the CSV alongside the binary.
type PostgresRecordRepository struct {
	db *sqlx.DB
}

func NewPostgresRecordRepository(db *sqlx.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

func (r *PostgresRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	query := `
        SELECT total_sleep_hours, sleep_quality, productivity_score,
               mood_score, stress_level, gender, age
        FROM sleep_records`

	var records []domain.SleepRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrDataSourceMissing
		}
		return nil, fmt.Errorf("querying sleep records: %w", err)
	}

	return records, nil
}

// isUndefinedTable recognizes the undefined_table code under either Postgres
// driver in use (pgx in the server, lib/pq in tooling).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUndefinedTable
	}

	return false
}
