package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgsql repositories together. excludeExpired
// controls whether permits past their validity window count toward the cached
// employer totals.
func NewRepositoryProvider(dbPool *pgxpool.Pool, excludeExpired bool) portsrepo.RepositoryProvider {
	employerRepo := newPgxEmployerRepository(dbPool)
	laborCountRepo := newPgxLaborCountRepository(dbPool)
	recognitionRepo := newPgxRecognitionRepository(dbPool)
	jobOrderRepo := newPgxJobOrderRepository(dbPool)
	permitRepo := newPgxPermitRepository(dbPool, jobOrderRepo, excludeExpired)

	return portsrepo.RepositoryProvider{
		EmployerRepo:    employerRepo,
		LaborCountRepo:  laborCountRepo,
		RecognitionRepo: recognitionRepo,
		JobOrderRepo:    jobOrderRepo,
		PermitRepo:      permitRepo,
	}
}
