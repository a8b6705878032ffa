package domain

import "encoding/json"

// Course is a titled, ordered collection of lessons.
type Course struct {
	ID          Text     `json:"id"`
	Title       Text     `json:"title"`
	Description Text     `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

// Lesson carries the private video link in FbURL. It must never leave the
// service through the public listing, see PublicCourse.
type Lesson struct {
	ID          Text            `json:"id"`
	Title       Text            `json:"title"`
	Description Text            `json:"description"`
	Duration    json.RawMessage `json:"duration,omitempty"` // string or number
	FbURL       Text            `json:"fbUrl,omitempty"`
	Order       Order           `json:"order"`
}

// CourseDocument is the whole persisted course store.
type CourseDocument struct {
	Courses []Course `json:"courses"`
}

type CourseInput struct {
	Title       Text     `json:"title"`
	Description Text     `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

type LessonInput struct {
	Title       Text            `json:"title"`
	Description Text            `json:"description"`
	Duration    json.RawMessage `json:"duration"`
	FbURL       Text            `json:"fbUrl"`
	Order       Order           `json:"order"`
}

// LessonPatch holds the fields supplied on a lesson update. Nil fields were
// absent from the payload and are left as they are on the stored lesson; an
// explicit null is a supplied empty value.
type LessonPatch struct {
	Title       *Text
	Description *Text
	Duration    json.RawMessage
	FbURL       *Text
	Order       *Order
}

func (p *LessonPatch) UnmarshalJSON(b []byte) error {
	*p = LessonPatch{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		// not an object, nothing to merge
		return nil
	}
	p.Title = textField(fields, "title")
	p.Description = textField(fields, "description")
	p.FbURL = textField(fields, "fbUrl")
	if raw, ok := fields["duration"]; ok {
		p.Duration = raw
	}
	if raw, ok := fields["order"]; ok {
		var o Order
		if err := o.UnmarshalJSON(raw); err != nil {
			return err
		}
		p.Order = &o
	}
	return nil
}

func textField(fields map[string]json.RawMessage, key string) *Text {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var t Text
	if err := t.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return &t
}

// Apply merges p onto l. The lesson ID is never touched.
func (p LessonPatch) Apply(l Lesson) Lesson {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if len(p.Duration) > 0 {
		l.Duration = p.Duration
	}
	if p.FbURL != nil {
		l.FbURL = *p.FbURL
	}
	if p.Order != nil {
		l.Order = *p.Order
	}
	return l
}

type PublicLesson struct {
	ID          Text            `json:"id"`
	Title       Text            `json:"title"`
	Description Text            `json:"description"`
	Duration    json.RawMessage `json:"duration,omitempty"`
	Order       Order           `json:"order"`
}

type PublicCourse struct {
	ID          Text           `json:"id"`
	Title       Text           `json:"title"`
	Description Text           `json:"description"`
	Lessons     []PublicLesson `json:"lessons"`
}

// Public strips the private link from every lesson.
func (c Course) Public() PublicCourse {
	lessons := make([]PublicLesson, 0, len(c.Lessons))
	for _, l := range c.Lessons {
		lessons = append(lessons, PublicLesson{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Duration:    l.Duration,
			Order:       l.Order,
		})
	}
	return PublicCourse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Lessons:     lessons,
	}
}

func (d *CourseDocument) FindCourse(id string) (int, bool) {
	for i := range d.Courses {
		if string(d.Courses[i].ID) == id {
			return i, true
		}
	}
	return -1, false
}

func (c *Course) FindLesson(id string) (int, bool) {
	for i := range c.Lessons {
		if string(c.Lessons[i].ID) == id {
			return i, true
		}
	}
	return -1, false
}
