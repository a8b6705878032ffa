package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coursecms/internal/domain"
	"coursecms/internal/platform/logger"
)

type CourseRepository struct {
	store DocumentStore
	log   *logger.Logger
}

func NewCourseRepository(store DocumentStore, log *logger.Logger) *CourseRepository {
	return &CourseRepository{store: store, log: log}
}

// Load never fails: unreadable or syntactically broken documents degrade to
// an empty course list after logging the cause. A value of an unexpected
// type only drops that value; the rest of the document is kept so the next
// write does not wipe it.
func (r *CourseRepository) Load(ctx context.Context) *domain.CourseDocument {
	empty := &domain.CourseDocument{Courses: []domain.Course{}}

	body, err := r.store.Load(ctx, CoursesDocument)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			r.log.Error("Error reading courses", "error", err)
		}
		return empty
	}

	var doc domain.CourseDocument
	if err := decodeDocument(body, &doc); err != nil {
		r.log.Error("Error parsing courses", "error", err)
		return empty
	}
	if doc.Courses == nil {
		doc.Courses = []domain.Course{}
	}
	for i := range doc.Courses {
		if doc.Courses[i].Lessons == nil {
			doc.Courses[i].Lessons = []domain.Lesson{}
		}
	}
	return &doc
}

func (r *CourseRepository) Save(ctx context.Context, doc *domain.CourseDocument) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err == nil {
		err = r.store.Save(ctx, CoursesDocument, body)
	}
	if err != nil {
		r.log.Error("Error writing courses", "error", err)
		return fmt.Errorf("write courses: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// Init writes an empty document when none exists yet.
func (r *CourseRepository) Init(ctx context.Context) error {
	return ensureDocument(ctx, r.store, CoursesDocument, &domain.CourseDocument{Courses: []domain.Course{}})
}

// decodeDocument unmarshals body into v. Only invalid JSON is an error: a
// value of the wrong type is left at its zero value and the rest of the
// document still decodes.
func decodeDocument(body []byte, v any) error {
	err := json.Unmarshal(body, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

func ensureDocument(ctx context.Context, store DocumentStore, name string, empty any) error {
	_, err := store.Load(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrDocumentNotFound) {
		return fmt.Errorf("check %s: %w", name, err)
	}
	body, err := json.MarshalIndent(empty, "", "  ")
	if err != nil {
		return err
	}
	if err := store.Save(ctx, name, body); err != nil {
		return fmt.Errorf("init %s: %w", name, err)
	}
	return nil
}
