package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	"github.com/placementworks/recruit_quota_app/internal/models"
	"github.com/placementworks/recruit_quota_app/internal/utils/mapping"
)

type PgxEmployerRepository struct {
	BaseRepository
}

// newPgxEmployerRepository creates a new repository for employer data.
func newPgxEmployerRepository(pool *pgxpool.Pool) portsrepo.EmployerRepositoryFacade {
	return &PgxEmployerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEmployerRepository implements portsrepo.EmployerRepositoryFacade
var _ portsrepo.EmployerRepositoryFacade = (*PgxEmployerRepository)(nil)

const employerColumns = `employer_id, name, business_reg_no, representative, total_quota, created_at, created_by, last_updated_at, last_updated_by, version`

func scanEmployer(row pgx.Row) (*models.Employer, error) {
	var m models.Employer
	err := row.Scan(
		&m.EmployerID,
		&m.Name,
		&m.BusinessRegNo,
		&m.Representative,
		&m.TotalQuota,
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

// SaveEmployer inserts a new employer row.
func (r *PgxEmployerRepository) SaveEmployer(ctx context.Context, employer domain.Employer) error {
	m := mapping.ToModelEmployer(employer)

	query := `
		INSERT INTO employers (` + employerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployerID,
		m.Name,
		m.BusinessRegNo,
		m.Representative,
		m.TotalQuota,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "employer with business registration number "+employer.BusinessRegNo+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert employer "+m.EmployerID, err)
	}
	return nil
}

// FindEmployerByID retrieves an employer by its primary key.
func (r *PgxEmployerRepository) FindEmployerByID(ctx context.Context, employerID string) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE employer_id = $1;`

	m, err := scanEmployer(r.Pool.QueryRow(ctx, query, employerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("employer " + employerID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query employer "+employerID, err)
	}

	employer := mapping.ToDomainEmployer(*m)
	return &employer, nil
}

// ListEmployers retrieves a page of employers ordered by creation time.
func (r *PgxEmployerRepository) ListEmployers(ctx context.Context, limit int, offset int) ([]domain.Employer, error) {
	query := `
		SELECT ` + employerColumns + `
		FROM employers
		ORDER BY created_at DESC, employer_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employers", err)
	}
	defer rows.Close()

	employers := make([]domain.Employer, 0, limit)
	for rows.Next() {
		m, err := scanEmployer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employer row", err)
		}
		employers = append(employers, mapping.ToDomainEmployer(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employer rows", err)
	}
	return employers, nil
}

// ListEmployerIDs retrieves every employer ID. Only the reconciliation pass
// uses this; the registry is small enough that a full scan is acceptable.
func (r *PgxEmployerRepository) ListEmployerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT employer_id FROM employers ORDER BY employer_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employer ids", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employer id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employer id rows", err)
	}
	return ids, nil
}
