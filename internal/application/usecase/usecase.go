package usecase

import (
	"context"

	"coursecms/internal/domain"
)

// CourseStore loads and replaces the whole course document.
type CourseStore interface {
	Load(ctx context.Context) *domain.CourseDocument
	Save(ctx context.Context, doc *domain.CourseDocument) error
}

// ChallengeStore loads and replaces the single-slot challenge document.
type ChallengeStore interface {
	Load(ctx context.Context) *domain.ChallengeDocument
	Save(ctx context.Context, doc *domain.ChallengeDocument) error
}
