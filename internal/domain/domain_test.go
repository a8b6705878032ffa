package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestIDGeneratorIsMonotonic(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	g := NewIDGenerator(func() time.Time { return frozen })

	a, b, c := g.Next(), g.Next(), g.Next()
	if a != "1700000000000" || b != "1700000000001" || c != "1700000000002" {
		t.Fatalf("unexpected ids: %s %s %s", a, b, c)
	}
}

func TestIDGeneratorFollowsClock(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	g := NewIDGenerator(func() time.Time { return now })

	_ = g.Next()
	now = now.Add(time.Second)
	if got := g.Next(); got != "1700000001000" {
		t.Fatalf("unexpected id after clock advance: %s", got)
	}
}

func TestPublicDropsLink(t *testing.T) {
	c := Course{
		ID:    "1",
		Title: "Go",
		Lessons: []Lesson{
			{ID: "2", Title: "Intro", Description: "d", Duration: json.RawMessage(`"5m"`), FbURL: "http://private", Order: 1},
		},
	}

	body, err := json.Marshal(c.Public())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "fbUrl") || strings.Contains(string(body), "http://private") {
		t.Fatalf("public course leaked the link: %s", body)
	}
	want := `{"id":"1","title":"Go","description":"","lessons":[{"id":"2","title":"Intro","description":"d","duration":"5m","order":1}]}`
	if string(body) != want {
		t.Fatalf("unexpected public course:\n got=%s\nwant=%s", body, want)
	}
}

func TestPublicEmptyLessonsIsArray(t *testing.T) {
	body, _ := json.Marshal(Course{ID: "1"}.Public())
	if !strings.Contains(string(body), `"lessons":[]`) {
		t.Fatalf("expected empty lessons array: %s", body)
	}
}

func TestLessonPatchApply(t *testing.T) {
	base := Lesson{ID: "1", Title: "a", Description: "b", FbURL: "http://x", Order: 3}
	desc := Text("")
	order := Order(9)

	got := LessonPatch{Description: &desc, Order: &order}.Apply(base)
	if got.ID != "1" || got.Title != "a" || got.Description != "" || got.FbURL != "http://x" || got.Order != 9 {
		t.Fatalf("unexpected merge: %+v", got)
	}
}

func TestChallengeDocumentNull(t *testing.T) {
	body, _ := json.Marshal(ChallengeDocument{})
	if string(body) != `{"challenge":null}` {
		t.Fatalf("unexpected empty challenge document: %s", body)
	}
}

func TestTextAcceptsAnyValue(t *testing.T) {
	cases := map[string]Text{
		`"abc"`:      "abc",
		`42`:         "42",
		`null`:       "",
		`true`:       "true",
		`{ "a": 1 }`: `{"a":1}`,
	}
	for raw, want := range cases {
		var got Text
		if err := json.Unmarshal([]byte(raw), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if got != want {
			t.Fatalf("unmarshal %s: got=%q want=%q", raw, got, want)
		}
	}
}

func TestOrderReadsNumericStrings(t *testing.T) {
	cases := map[string]Order{
		`3`:     3,
		`"3"`:   3,
		`" 4 "`: 4,
		`"abc"`: 0,
		`null`:  0,
		`[1]`:   0,
	}
	for raw, want := range cases {
		var got Order
		if err := json.Unmarshal([]byte(raw), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if got != want {
			t.Fatalf("unmarshal %s: got=%d want=%d", raw, got, want)
		}
	}
}

func TestLessonDecodesLooseTypes(t *testing.T) {
	var l Lesson
	err := json.Unmarshal([]byte(`{"id":7,"title":"T","order":"2","fbUrl":"http://x"}`), &l)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.ID != "7" || l.Order != 2 || l.FbURL != "http://x" {
		t.Fatalf("unexpected lesson: %+v", l)
	}
}

func TestLessonPatchExplicitNullClears(t *testing.T) {
	base := Lesson{ID: "1", Title: "a", FbURL: "http://x", Order: 3}

	var patch LessonPatch
	if err := json.Unmarshal([]byte(`{"fbUrl":null,"order":"5"}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := patch.Apply(base)
	if got.FbURL != "" || got.Order != 5 || got.Title != "a" {
		t.Fatalf("unexpected merge: %+v", got)
	}

	if err := json.Unmarshal([]byte(`{"title":"b"}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got = patch.Apply(base)
	if got.FbURL != "http://x" || got.Title != "b" || got.Order != 3 {
		t.Fatalf("absent fields must be kept: %+v", got)
	}
}
