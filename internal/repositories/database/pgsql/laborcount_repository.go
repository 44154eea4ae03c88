package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	"github.com/placementworks/recruit_quota_app/internal/models"
	"github.com/placementworks/recruit_quota_app/internal/utils/mapping"
)

type PgxLaborCountRepository struct {
	BaseRepository
}

// newPgxLaborCountRepository creates a new repository for labor count snapshots.
func newPgxLaborCountRepository(pool *pgxpool.Pool) portsrepo.LaborCountRepositoryFacade {
	return &PgxLaborCountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLaborCountRepository implements portsrepo.LaborCountRepositoryFacade
var _ portsrepo.LaborCountRepositoryFacade = (*PgxLaborCountRepository)(nil)

const laborCountColumns = `labor_count_id, employer_id, year, month, count, created_at, created_by, last_updated_at, last_updated_by, version`

func scanLaborCount(row pgx.Row) (*models.LaborCountRecord, error) {
	var m models.LaborCountRecord
	err := row.Scan(
		&m.LaborCountID,
		&m.EmployerID,
		&m.Year,
		&m.Month,
		&m.Count,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertLaborCount inserts the monthly snapshot, replacing the count when a
// row for the same employer and period already exists.
func (r *PgxLaborCountRepository) UpsertLaborCount(ctx context.Context, record domain.LaborCountRecord) error {
	m := mapping.ToModelLaborCount(record)

	query := `
		INSERT INTO labor_count_records (` + laborCountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employer_id, year, month) DO UPDATE
		SET count = EXCLUDED.count,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by,
		    version = labor_count_records.version + 1;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LaborCountID,
		m.EmployerID,
		m.Year,
		m.Month,
		m.Count,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert labor count for employer "+m.EmployerID, err)
	}
	return nil
}

// ListLaborCountsByEmployer retrieves every snapshot for an employer, most
// recent period first.
func (r *PgxLaborCountRepository) ListLaborCountsByEmployer(ctx context.Context, employerID string) ([]domain.LaborCountRecord, error) {
	query := `
		SELECT ` + laborCountColumns + `
		FROM labor_count_records
		WHERE employer_id = $1
		ORDER BY year DESC, month DESC;
	`
	return r.queryLaborCounts(ctx, query, employerID)
}

// ListRecentLaborCounts retrieves the most recent `window` snapshots.
func (r *PgxLaborCountRepository) ListRecentLaborCounts(ctx context.Context, employerID string, window int) ([]domain.LaborCountRecord, error) {
	query := `
		SELECT ` + laborCountColumns + `
		FROM labor_count_records
		WHERE employer_id = $1
		ORDER BY year DESC, month DESC
		LIMIT $2;
	`
	return r.queryLaborCounts(ctx, query, employerID, window)
}

func (r *PgxLaborCountRepository) queryLaborCounts(ctx context.Context, query string, args ...any) ([]domain.LaborCountRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query labor counts", err)
	}
	defer rows.Close()

	var ms []models.LaborCountRecord
	for rows.Next() {
		m, err := scanLaborCount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan labor count row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating labor count rows", err)
	}
	return mapping.ToDomainLaborCountSlice(ms), nil
}
