package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	"github.com/placementworks/recruit_quota_app/internal/models"
	"github.com/placementworks/recruit_quota_app/internal/utils/mapping"
)

type PgxJobOrderRepository struct {
	BaseRepository
}

// newPgxJobOrderRepository creates a new repository for job order data.
func newPgxJobOrderRepository(pool *pgxpool.Pool) portsrepo.JobOrderRepositoryWithTx {
	return &PgxJobOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJobOrderRepository implements portsrepo.JobOrderRepositoryWithTx
var _ portsrepo.JobOrderRepositoryWithTx = (*PgxJobOrderRepository)(nil)

const jobOrderColumns = `job_order_id, employer_id, job_type, vacancy_count, registry_date, expiry_date, certificate_number, success_count, status, created_at, created_by, last_updated_at, last_updated_by, version`

func scanJobOrder(row pgx.Row) (*models.JobOrder, error) {
	var m models.JobOrder
	err := row.Scan(
		&m.JobOrderID,
		&m.EmployerID,
		&m.JobType,
		&m.VacancyCount,
		&m.RegistryDate,
		&m.ExpiryDate,
		&m.CertificateNumber,
		&m.SuccessCount,
		&m.Status,
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

// SaveJobOrder inserts a new job order row.
func (r *PgxJobOrderRepository) SaveJobOrder(ctx context.Context, jobOrder domain.JobOrder) error {
	m := mapping.ToModelJobOrder(jobOrder)

	query := `
		INSERT INTO job_orders (` + jobOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JobOrderID,
		m.EmployerID,
		m.JobType,
		m.VacancyCount,
		m.RegistryDate,
		m.ExpiryDate,
		m.CertificateNumber,
		m.SuccessCount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert job order "+m.JobOrderID, err)
	}
	return nil
}

// FindJobOrderByID retrieves a job order by its primary key.
func (r *PgxJobOrderRepository) FindJobOrderByID(ctx context.Context, jobOrderID string) (*domain.JobOrder, error) {
	query := `SELECT ` + jobOrderColumns + ` FROM job_orders WHERE job_order_id = $1;`

	m, err := scanJobOrder(r.Pool.QueryRow(ctx, query, jobOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("job order " + jobOrderID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query job order "+jobOrderID, err)
	}

	jobOrder := mapping.ToDomainJobOrder(*m)
	return &jobOrder, nil
}

// ListJobOrdersByEmployer retrieves all job orders for an employer, newest first.
func (r *PgxJobOrderRepository) ListJobOrdersByEmployer(ctx context.Context, employerID string) ([]domain.JobOrder, error) {
	query := `
		SELECT ` + jobOrderColumns + `
		FROM job_orders
		WHERE employer_id = $1
		ORDER BY registry_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query job orders for employer "+employerID, err)
	}
	defer rows.Close()

	var ms []models.JobOrder
	for rows.Next() {
		m, err := scanJobOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan job order row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating job order rows", err)
	}
	return mapping.ToDomainJobOrderSlice(ms), nil
}

// SetCertificate records the futility certificate number. Rejected when a
// certificate is already attached.
func (r *PgxJobOrderRepository) SetCertificate(ctx context.Context, jobOrderID string, certificateNumber string, userID string, now time.Time) error {
	query := `
		UPDATE job_orders
		SET certificate_number = $2,
		    last_updated_at = $3,
		    last_updated_by = $4,
		    version = version + 1
		WHERE job_order_id = $1 AND certificate_number IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, jobOrderID, certificateNumber, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set certificate on job order "+jobOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "job order "+jobOrderID+" not found or certificate already attached", apperrors.ErrConflict)
	}
	return nil
}

// AddDomesticHires increments the success count, guarded so the total can
// never exceed the vacancy count.
func (r *PgxJobOrderRepository) AddDomesticHires(ctx context.Context, jobOrderID string, hired int, userID string, now time.Time) error {
	query := `
		UPDATE job_orders
		SET success_count = success_count + $2,
		    last_updated_at = $3,
		    last_updated_by = $4,
		    version = version + 1
		WHERE job_order_id = $1 AND success_count + $2 <= vacancy_count;
	`
	tag, err := r.Pool.Exec(ctx, query, jobOrderID, hired, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add domestic hires to job order "+jobOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "job order "+jobOrderID+" not found or hires exceed vacancy count", apperrors.ErrConflict)
	}
	return nil
}

// CompleteJobOrderInTx transitions the job order ACTIVE -> COMPLETED inside
// the caller's transaction. The permit ledger invokes this in the same
// transaction that inserts the linked permit.
func (r *PgxJobOrderRepository) CompleteJobOrderInTx(ctx context.Context, tx pgx.Tx, jobOrderID string, userID string, now time.Time) error {
	query := `
		UPDATE job_orders
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4,
		    version = version + 1
		WHERE job_order_id = $1 AND status = $5;
	`
	tag, err := tx.Exec(ctx, query, jobOrderID, string(domain.JobOrderCompleted), now, userID, string(domain.JobOrderActive))
	if err != nil {
		return apperrors.NewAppError(500, "failed to complete job order "+jobOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "job order "+jobOrderID+" is not active", apperrors.ErrConflict)
	}
	return nil
}
