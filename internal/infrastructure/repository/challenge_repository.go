package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coursecms/internal/domain"
	"coursecms/internal/platform/logger"
)

type ChallengeRepository struct {
	store DocumentStore
	log   *logger.Logger
}

func NewChallengeRepository(store DocumentStore, log *logger.Logger) *ChallengeRepository {
	return &ChallengeRepository{store: store, log: log}
}

// Load degrades to {challenge:null} on a read failure or invalid JSON.
func (r *ChallengeRepository) Load(ctx context.Context) *domain.ChallengeDocument {
	body, err := r.store.Load(ctx, ChallengesDocument)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			r.log.Error("Error reading challenge", "error", err)
		}
		return &domain.ChallengeDocument{}
	}

	var doc domain.ChallengeDocument
	if err := decodeDocument(body, &doc); err != nil {
		r.log.Error("Error parsing challenge", "error", err)
		return &domain.ChallengeDocument{}
	}
	return &doc
}

func (r *ChallengeRepository) Save(ctx context.Context, doc *domain.ChallengeDocument) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err == nil {
		err = r.store.Save(ctx, ChallengesDocument, body)
	}
	if err != nil {
		r.log.Error("Error writing challenge", "error", err)
		return fmt.Errorf("write challenge: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (r *ChallengeRepository) Init(ctx context.Context) error {
	return ensureDocument(ctx, r.store, ChallengesDocument, &domain.ChallengeDocument{})
}
