package usecase

import (
	"context"

	"coursecms/internal/domain"
)

// CatalogUseCase runs one read-modify-write of the course document per call.
type CatalogUseCase struct {
	courses CourseStore
	newID   func() string
}

func NewCatalogUseCase(courses CourseStore, newID func() string) *CatalogUseCase {
	if newID == nil {
		newID = domain.NewID
	}
	return &CatalogUseCase{courses: courses, newID: newID}
}

func (uc *CatalogUseCase) PublicCourses(ctx context.Context) []domain.PublicCourse {
	doc := uc.courses.Load(ctx)
	out := make([]domain.PublicCourse, 0, len(doc.Courses))
	for _, c := range doc.Courses {
		out = append(out, c.Public())
	}
	return out
}

func (uc *CatalogUseCase) AdminCourses(ctx context.Context) *domain.CourseDocument {
	return uc.courses.Load(ctx)
}

func (uc *CatalogUseCase) CreateCourse(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	doc := uc.courses.Load(ctx)

	lessons := in.Lessons
	if lessons == nil {
		lessons = []domain.Lesson{}
	}
	course := domain.Course{
		ID:          domain.Text(uc.newID()),
		Title:       in.Title,
		Description: in.Description,
		Lessons:     lessons,
	}
	doc.Courses = append(doc.Courses, course)

	if err := uc.courses.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse only touches title and description; id and lessons always
// come from the stored record.
func (uc *CatalogUseCase) UpdateCourse(ctx context.Context, courseID string, in domain.CourseInput) (*domain.Course, error) {
	doc := uc.courses.Load(ctx)
	i, ok := doc.FindCourse(courseID)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}

	course := &doc.Courses[i]
	course.Title = in.Title
	course.Description = in.Description

	if err := uc.courses.Save(ctx, doc); err != nil {
		return nil, err
	}
	updated := *course
	return &updated, nil
}

// DeleteCourse succeeds whether or not the course exists.
func (uc *CatalogUseCase) DeleteCourse(ctx context.Context, courseID string) error {
	doc := uc.courses.Load(ctx)

	kept := make([]domain.Course, 0, len(doc.Courses))
	for _, c := range doc.Courses {
		if string(c.ID) != courseID {
			kept = append(kept, c)
		}
	}
	doc.Courses = kept

	return uc.courses.Save(ctx, doc)
}

func (uc *CatalogUseCase) CreateLesson(ctx context.Context, courseID string, in domain.LessonInput) (*domain.Lesson, error) {
	doc := uc.courses.Load(ctx)
	i, ok := doc.FindCourse(courseID)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	course := &doc.Courses[i]

	order := in.Order
	if order == 0 {
		order = domain.Order(len(course.Lessons) + 1)
	}
	lesson := domain.Lesson{
		ID:          domain.Text(uc.newID()),
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		FbURL:       in.FbURL,
		Order:       order,
	}
	course.Lessons = append(course.Lessons, lesson)

	if err := uc.courses.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (uc *CatalogUseCase) UpdateLesson(ctx context.Context, courseID, lessonID string, patch domain.LessonPatch) (*domain.Lesson, error) {
	doc := uc.courses.Load(ctx)
	ci, ok := doc.FindCourse(courseID)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	course := &doc.Courses[ci]
	li, ok := course.FindLesson(lessonID)
	if !ok {
		return nil, domain.ErrLessonNotFound
	}

	lesson := patch.Apply(course.Lessons[li])
	lesson.ID = domain.Text(lessonID)
	course.Lessons[li] = lesson

	if err := uc.courses.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// DeleteLesson fails only when the course is missing; an unknown lesson ID
// leaves the course as it was.
func (uc *CatalogUseCase) DeleteLesson(ctx context.Context, courseID, lessonID string) error {
	doc := uc.courses.Load(ctx)
	i, ok := doc.FindCourse(courseID)
	if !ok {
		return domain.ErrCourseNotFound
	}
	course := &doc.Courses[i]

	kept := make([]domain.Lesson, 0, len(course.Lessons))
	for _, l := range course.Lessons {
		if string(l.ID) != lessonID {
			kept = append(kept, l)
		}
	}
	course.Lessons = kept

	return uc.courses.Save(ctx, doc)
}

// LessonRedirect returns the private link of the first lesson with the
// given ID across all courses.
func (uc *CatalogUseCase) LessonRedirect(ctx context.Context, lessonID string) (string, error) {
	doc := uc.courses.Load(ctx)
	for i := range doc.Courses {
		if li, ok := doc.Courses[i].FindLesson(lessonID); ok {
			if url := doc.Courses[i].Lessons[li].FbURL; url != "" {
				return string(url), nil
			}
			return "", domain.ErrLinkNotFound
		}
	}
	return "", domain.ErrLinkNotFound
}
