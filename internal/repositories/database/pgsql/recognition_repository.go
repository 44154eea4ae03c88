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

type PgxRecognitionRepository struct {
	BaseRepository
}

// newPgxRecognitionRepository creates a new repository for industry recognition documents.
func newPgxRecognitionRepository(pool *pgxpool.Pool) portsrepo.RecognitionRepositoryFacade {
	return &PgxRecognitionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRecognitionRepository implements portsrepo.RecognitionRepositoryFacade
var _ portsrepo.RecognitionRepositoryFacade = (*PgxRecognitionRepository)(nil)

const recognitionColumns = `recognition_id, employer_id, tier, base_allocation_rate, extra_rate, issue_date, expiry_date, reference_number, created_at, created_by, last_updated_at, last_updated_by, version`

func scanRecognition(row pgx.Row) (*models.IndustryRecognition, error) {
	var m models.IndustryRecognition
	err := row.Scan(
		&m.RecognitionID,
		&m.EmployerID,
		&m.Tier,
		&m.BaseAllocationRate,
		&m.ExtraRate,
		&m.IssueDate,
		&m.ExpiryDate,
		&m.ReferenceNumber,
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

// SaveRecognition inserts a new recognition row.
func (r *PgxRecognitionRepository) SaveRecognition(ctx context.Context, recognition domain.IndustryRecognition) error {
	m := mapping.ToModelRecognition(recognition)

	query := `
		INSERT INTO industry_recognitions (` + recognitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecognitionID,
		m.EmployerID,
		m.Tier,
		m.BaseAllocationRate,
		m.ExtraRate,
		m.IssueDate,
		m.ExpiryDate,
		m.ReferenceNumber,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert recognition "+m.RecognitionID, err)
	}
	return nil
}

// FindActiveRecognition retrieves the recognition in force on asOf. When
// grants overlap, the most recently issued one wins.
func (r *PgxRecognitionRepository) FindActiveRecognition(ctx context.Context, employerID string, asOf time.Time) (*domain.IndustryRecognition, error) {
	query := `
		SELECT ` + recognitionColumns + `
		FROM industry_recognitions
		WHERE employer_id = $1
		  AND issue_date <= $2
		  AND (expiry_date IS NULL OR expiry_date >= $2)
		ORDER BY issue_date DESC, created_at DESC
		LIMIT 1;
	`
	m, err := scanRecognition(r.Pool.QueryRow(ctx, query, employerID, asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no active recognition for employer " + employerID)
		}
		return nil, apperrors.NewAppError(500, "failed to query active recognition for employer "+employerID, err)
	}

	recognition := mapping.ToDomainRecognition(*m)
	return &recognition, nil
}

// ListRecognitionsByEmployer retrieves every recognition held by an employer,
// newest first.
func (r *PgxRecognitionRepository) ListRecognitionsByEmployer(ctx context.Context, employerID string) ([]domain.IndustryRecognition, error) {
	query := `
		SELECT ` + recognitionColumns + `
		FROM industry_recognitions
		WHERE employer_id = $1
		ORDER BY issue_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recognitions for employer "+employerID, err)
	}
	defer rows.Close()

	var ms []models.IndustryRecognition
	for rows.Next() {
		m, err := scanRecognition(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recognition row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recognition rows", err)
	}
	return mapping.ToDomainRecognitionSlice(ms), nil
}
