package usecase

import (
	"context"
	"encoding/json"

	"coursecms/internal/domain"
)

type ChallengeUseCase struct {
	challenges ChallengeStore
	newID      func() string
}

func NewChallengeUseCase(challenges ChallengeStore, newID func() string) *ChallengeUseCase {
	if newID == nil {
		newID = domain.NewID
	}
	return &ChallengeUseCase{challenges: challenges, newID: newID}
}

func (uc *ChallengeUseCase) Current(ctx context.Context) *domain.Challenge {
	return uc.challenges.Load(ctx).Challenge
}

func (uc *ChallengeUseCase) Document(ctx context.Context) *domain.ChallengeDocument {
	return uc.challenges.Load(ctx)
}

// Save replaces the single slot. A nil input clears it; otherwise the
// supplied ID is kept or a new one is minted.
func (uc *ChallengeUseCase) Save(ctx context.Context, in *domain.ChallengeInput) (*domain.Challenge, error) {
	var challenge *domain.Challenge
	if in != nil {
		id := in.ID
		if id == "" {
			id = domain.Text(uc.newID())
		}
		days := in.Days
		if days == nil {
			days = []json.RawMessage{}
		}
		challenge = &domain.Challenge{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Duration:    in.Duration,
			Days:        days,
		}
	}

	if err := uc.challenges.Save(ctx, &domain.ChallengeDocument{Challenge: challenge}); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (uc *ChallengeUseCase) Delete(ctx context.Context) error {
	return uc.challenges.Save(ctx, &domain.ChallengeDocument{})
}
