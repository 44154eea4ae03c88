package repositories

import (
	"context"
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// RecognitionReader defines read operations for industry recognitions
type RecognitionReader interface {
	// FindActiveRecognition retrieves the recognition in force for the
	// employer on the given date, or ErrNotFound when none is active.
	FindActiveRecognition(ctx context.Context, employerID string, asOf time.Time) (*domain.IndustryRecognition, error)

	// ListRecognitionsByEmployer retrieves all recognitions (historic and
	// current) held by an employer, newest first.
	ListRecognitionsByEmployer(ctx context.Context, employerID string) ([]domain.IndustryRecognition, error)
}

// RecognitionWriter defines write operations for industry recognitions
type RecognitionWriter interface {
	// SaveRecognition persists a new recognition document.
	SaveRecognition(ctx context.Context, recognition domain.IndustryRecognition) error
}

// RecognitionRepositoryFacade combines all recognition repository interfaces
type RecognitionRepositoryFacade interface {
	RecognitionReader
	RecognitionWriter
}
