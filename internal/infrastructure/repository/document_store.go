package repository

import (
	"context"
	"errors"
)

const (
	CoursesDocument    = "courses"
	ChallengesDocument = "challenges"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore reads and replaces whole JSON documents by name. Save is a
// full overwrite; concurrent writers race and the last one wins.
type DocumentStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, body []byte) error
}
