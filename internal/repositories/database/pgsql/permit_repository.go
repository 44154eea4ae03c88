package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	"github.com/placementworks/recruit_quota_app/internal/models"
	"github.com/placementworks/recruit_quota_app/internal/utils/mapping"
	"github.com/placementworks/recruit_quota_app/internal/utils/pagination"
)

// PgxPermitRepository owns the permit ledger. Every mutation runs as one
// database transaction that also refreshes the owning employer's cached
// total, so the cache and the ledger can never be observed out of step.
type PgxPermitRepository struct {
	BaseRepository
	jobOrderRepo   portsrepo.JobOrderTransactionSupport
	excludeExpired bool
}

// newPgxPermitRepository creates a new repository for the permit ledger.
// When excludeExpired is set, permits past their validity window are left out
// of the cached employer totals.
func newPgxPermitRepository(pool *pgxpool.Pool, jobOrderRepo portsrepo.JobOrderTransactionSupport, excludeExpired bool) portsrepo.PermitRepositoryWithTx {
	return &PgxPermitRepository{
		BaseRepository: BaseRepository{Pool: pool},
		jobOrderRepo:   jobOrderRepo,
		excludeExpired: excludeExpired,
	}
}

// Ensure PgxPermitRepository implements portsrepo.PermitRepositoryWithTx
var _ portsrepo.PermitRepositoryWithTx = (*PgxPermitRepository)(nil)

const permitColumns = `permit_id, employer_id, job_order_id, permit_number, issue_date, valid_until, approved_quota, used_quota, revoked_quota, attachment_ref, created_at, created_by, last_updated_at, last_updated_by, version`

func scanPermit(row pgx.Row) (*models.RecruitmentPermit, error) {
	var m models.RecruitmentPermit
	err := row.Scan(
		&m.PermitID,
		&m.EmployerID,
		&m.JobOrderID,
		&m.PermitNumber,
		&m.IssueDate,
		&m.ValidUntil,
		&m.ApprovedQuota,
		&m.UsedQuota,
		&m.RevokedQuota,
		&m.AttachmentRef,
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

const entryColumns = `entry_id, permit_id, worker_count, occurred_at, created_at, created_by, last_updated_at, last_updated_by, version`

func scanEntry(row pgx.Row) (*models.EntryPermit, error) {
	var m models.EntryPermit
	err := row.Scan(
		&m.EntryID,
		&m.PermitID,
		&m.WorkerCount,
		&m.OccurredAt,
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

// SavePermit inserts the permit, completes the linked job order and refreshes
// the employer's cached total within a single DB transaction. Uniqueness of
// the permit number rests on the table's unique constraint, so concurrent
// submissions of the same number cannot both land.
func (r *PgxPermitRepository) SavePermit(ctx context.Context, permit domain.RecruitmentPermit) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelPermit(permit)
	now := permit.CreatedAt // Use consistent time from permit
	userID := permit.CreatedBy

	query := `
		INSERT INTO recruitment_permits (` + permitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.PermitID,
		m.EmployerID,
		m.JobOrderID,
		m.PermitNumber,
		m.IssueDate,
		m.ValidUntil,
		m.ApprovedQuota,
		m.UsedQuota,
		m.RevokedQuota,
		m.AttachmentRef,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicatePermitError(permit.PermitNumber)
		}
		return apperrors.NewAppError(500, "failed to insert permit "+m.PermitID, err)
	}

	if permit.JobOrderID != nil {
		if err := r.jobOrderRepo.CompleteJobOrderInTx(ctx, tx, *permit.JobOrderID, userID, now); err != nil {
			return err
		}
	}

	if _, _, err := r.recomputeEmployerTotalInTx(ctx, tx, permit.EmployerID, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// RecordEntry appends an entry realization. The permit row is locked and the
// used figure re-derived from the entry rows before the balance decision, so
// the cached used_quota column never decides anything.
func (r *PgxPermitRepository) RecordEntry(ctx context.Context, entry domain.EntryPermit) (*domain.RecruitmentPermit, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	permit, err := r.findPermitForUpdate(ctx, tx, entry.PermitID)
	if err != nil {
		return nil, err
	}

	var used int
	err = tx.QueryRow(ctx, `SELECT COALESCE(SUM(worker_count), 0) FROM entry_permits WHERE permit_id = $1;`, entry.PermitID).Scan(&used)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum entries for permit "+entry.PermitID, err)
	}

	remaining := domain.RemainingBalance(permit.ApprovedQuota, used, permit.RevokedQuota)
	if entry.WorkerCount > remaining {
		return nil, apperrors.NewQuotaExceededError(entry.PermitID, remaining, entry.WorkerCount)
	}

	m := mapping.ToModelEntry(entry)
	insertQuery := `
		INSERT INTO entry_permits (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.EntryID,
		m.PermitID,
		m.WorkerCount,
		m.OccurredAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}

	now := entry.CreatedAt
	userID := entry.CreatedBy
	updateQuery := `
		UPDATE recruitment_permits
		SET used_quota = $2,
		    last_updated_at = $3,
		    last_updated_by = $4,
		    version = version + 1
		WHERE permit_id = $1;
	`
	newUsed := used + entry.WorkerCount
	if _, err := tx.Exec(ctx, updateQuery, entry.PermitID, newUsed, now, userID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update used quota on permit "+entry.PermitID, err)
	}

	if _, _, err := r.recomputeEmployerTotalInTx(ctx, tx, permit.EmployerID, userID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	permit.UsedQuota = newUsed
	permit.LastUpdatedAt = now
	permit.LastUpdatedBy = userID
	permit.Version++
	return permit, nil
}

// RevokePermitQuota removes headcount from a permit. The balance check runs
// against the entry-derived used figure under the same row lock as the update.
func (r *PgxPermitRepository) RevokePermitQuota(ctx context.Context, permitID string, amount int, userID string, now time.Time) (*domain.RecruitmentPermit, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	permit, err := r.findPermitForUpdate(ctx, tx, permitID)
	if err != nil {
		return nil, err
	}

	var used int
	err = tx.QueryRow(ctx, `SELECT COALESCE(SUM(worker_count), 0) FROM entry_permits WHERE permit_id = $1;`, permitID).Scan(&used)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum entries for permit "+permitID, err)
	}

	remaining := domain.RemainingBalance(permit.ApprovedQuota, used, permit.RevokedQuota)
	if amount > remaining {
		return nil, apperrors.NewQuotaExceededError(permitID, remaining, amount)
	}

	updateQuery := `
		UPDATE recruitment_permits
		SET revoked_quota = revoked_quota + $2,
		    last_updated_at = $3,
		    last_updated_by = $4,
		    version = version + 1
		WHERE permit_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, permitID, amount, now, userID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update revoked quota on permit "+permitID, err)
	}

	if _, _, err := r.recomputeEmployerTotalInTx(ctx, tx, permit.EmployerID, userID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	permit.RevokedQuota += amount
	permit.LastUpdatedAt = now
	permit.LastUpdatedBy = userID
	permit.Version++
	return permit, nil
}

// RecomputeEmployerTotal re-derives the employer's cached total quota from
// the ledger in its own transaction. Idempotent. The previous value comes
// from the same locked read as the recompute, so drift detection does not
// race with concurrent ledger writers.
func (r *PgxPermitRepository) RecomputeEmployerTotal(ctx context.Context, employerID string, userID string, now time.Time) (int, int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx)

	previous, total, err := r.recomputeEmployerTotalInTx(ctx, tx, employerID, userID, now)
	if err != nil {
		return 0, 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return previous, total, nil
}

// findPermitForUpdate locks the permit row for the remainder of the transaction.
func (r *PgxPermitRepository) findPermitForUpdate(ctx context.Context, tx pgx.Tx, permitID string) (*domain.RecruitmentPermit, error) {
	query := `SELECT ` + permitColumns + ` FROM recruitment_permits WHERE permit_id = $1 FOR UPDATE;`

	m, err := scanPermit(tx.QueryRow(ctx, query, permitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("permit " + permitID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock permit "+permitID, err)
	}

	permit := mapping.ToDomainPermit(*m)
	return &permit, nil
}

// recomputeEmployerTotalInTx recalculates the sum of remaining balances over
// the employer's permits and writes it to the cached column, returning the
// previous and recomputed totals. The employer row is locked first so
// concurrent ledger writers serialize on the recompute.
func (r *PgxPermitRepository) recomputeEmployerTotalInTx(ctx context.Context, tx pgx.Tx, employerID string, userID string, now time.Time) (int, int, error) {
	var currentTotal int
	err := tx.QueryRow(ctx, `SELECT total_quota FROM employers WHERE employer_id = $1 FOR UPDATE;`, employerID).Scan(&currentTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.NewNotFoundError("employer " + employerID + " not found")
		}
		return 0, 0, apperrors.NewAppError(500, "failed to lock employer "+employerID, err)
	}

	sumQuery := `
		SELECT COALESCE(SUM(GREATEST(p.approved_quota - COALESCE(e.used, 0) - p.revoked_quota, 0)), 0)
		FROM recruitment_permits p
		LEFT JOIN (
			SELECT permit_id, SUM(worker_count) AS used
			FROM entry_permits
			GROUP BY permit_id
		) e ON e.permit_id = p.permit_id
		WHERE p.employer_id = $1
	`
	args := []any{employerID}
	if r.excludeExpired {
		sumQuery += ` AND p.valid_until >= $2`
		args = append(args, now)
	}

	var total int
	if err := tx.QueryRow(ctx, sumQuery+";", args...).Scan(&total); err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to sum remaining balances for employer "+employerID, err)
	}

	updateQuery := `
		UPDATE employers
		SET total_quota = $2,
		    last_updated_at = $3,
		    last_updated_by = $4,
		    version = version + 1
		WHERE employer_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, employerID, total, now, userID); err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to update cached total for employer "+employerID, err)
	}

	return currentTotal, total, nil
}

// FindPermitByID retrieves a permit by its surrogate key.
func (r *PgxPermitRepository) FindPermitByID(ctx context.Context, permitID string) (*domain.RecruitmentPermit, error) {
	query := `SELECT ` + permitColumns + ` FROM recruitment_permits WHERE permit_id = $1;`

	m, err := scanPermit(r.Pool.QueryRow(ctx, query, permitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("permit " + permitID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query permit "+permitID, err)
	}

	permit := mapping.ToDomainPermit(*m)
	return &permit, nil
}

// FindPermitByNumber retrieves a permit by its government-assigned number.
func (r *PgxPermitRepository) FindPermitByNumber(ctx context.Context, permitNumber string) (*domain.RecruitmentPermit, error) {
	query := `SELECT ` + permitColumns + ` FROM recruitment_permits WHERE permit_number = $1;`

	m, err := scanPermit(r.Pool.QueryRow(ctx, query, permitNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("permit number " + permitNumber + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query permit by number "+permitNumber, err)
	}

	permit := mapping.ToDomainPermit(*m)
	return &permit, nil
}

// FindPermitsByEmployer retrieves all permits for an employer, newest first.
func (r *PgxPermitRepository) FindPermitsByEmployer(ctx context.Context, employerID string) ([]domain.RecruitmentPermit, error) {
	query := `
		SELECT ` + permitColumns + `
		FROM recruitment_permits
		WHERE employer_id = $1
		ORDER BY issue_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query permits for employer "+employerID, err)
	}
	defer rows.Close()

	return collectPermits(rows)
}

// ListPermitsByEmployer retrieves one page of permits using cursor pagination
// over (issue_date, created_at) descending.
func (r *PgxPermitRepository) ListPermitsByEmployer(ctx context.Context, employerID string, limit int, nextToken *string) ([]domain.RecruitmentPermit, *string, error) {
	query := `
		SELECT ` + permitColumns + `
		FROM recruitment_permits
		WHERE employer_id = $1
	`
	args := []any{employerID}

	if nextToken != nil && *nextToken != "" {
		issueDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", errors.Join(apperrors.ErrValidation, err))
		}
		query += ` AND (issue_date < $2 OR (issue_date = $2 AND created_at < $3))`
		args = append(args, issueDate, createdAt)
	}

	// Fetch one extra row to learn whether another page exists.
	query += ` ORDER BY issue_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query permits for employer "+employerID, err)
	}
	defer rows.Close()

	permits, err := collectPermits(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(permits) > limit {
		permits = permits[:limit]
		last := permits[len(permits)-1]
		t := pagination.EncodeToken(last.IssueDate, last.CreatedAt)
		token = &t
	}

	return permits, token, nil
}

// ListEntriesByPermit retrieves the entry realizations for a permit, oldest first.
func (r *PgxPermitRepository) ListEntriesByPermit(ctx context.Context, permitID string) ([]domain.EntryPermit, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entry_permits
		WHERE permit_id = $1
		ORDER BY occurred_at, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, permitID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for permit "+permitID, err)
	}
	defer rows.Close()

	var ms []models.EntryPermit
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}
	return mapping.ToDomainEntrySlice(ms), nil
}

// SumEntriesByPermitIDs returns the entry-derived used figure per permit.
// Permits with no entries are absent from the result map; callers treat a
// missing key as zero.
func (r *PgxPermitRepository) SumEntriesByPermitIDs(ctx context.Context, permitIDs []string) (map[string]int, error) {
	sums := make(map[string]int, len(permitIDs))
	if len(permitIDs) == 0 {
		return sums, nil
	}

	query := `
		SELECT permit_id, COALESCE(SUM(worker_count), 0)
		FROM entry_permits
		WHERE permit_id = ANY($1)
		GROUP BY permit_id;
	`
	rows, err := r.Pool.Query(ctx, query, permitIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum entries by permit", err)
	}
	defer rows.Close()

	for rows.Next() {
		var permitID string
		var sum int
		if err := rows.Scan(&permitID, &sum); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry sum row", err)
		}
		sums[permitID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry sum rows", err)
	}
	return sums, nil
}

// SumUsedByEmployer returns the total worker count realized across all of an
// employer's permits.
func (r *PgxPermitRepository) SumUsedByEmployer(ctx context.Context, employerID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(e.worker_count), 0)
		FROM entry_permits e
		JOIN recruitment_permits p ON p.permit_id = e.permit_id
		WHERE p.employer_id = $1;
	`
	var total int
	if err := r.Pool.QueryRow(ctx, query, employerID).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum realized entries for employer "+employerID, err)
	}
	return total, nil
}

func collectPermits(rows pgx.Rows) ([]domain.RecruitmentPermit, error) {
	var ms []models.RecruitmentPermit
	for rows.Next() {
		m, err := scanPermit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan permit row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating permit rows", err)
	}
	return mapping.ToDomainPermitSlice(ms), nil
}
