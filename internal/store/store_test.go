package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/meera/gurukul/internal/course"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "gurukul.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDocument() *course.Document {
	return &course.Document{
		Topic:    "Async Programming",
		Language: "English",
		Modules: []course.ModulePlan{
			{
				Number: "1",
				Title:  "Foundations",
				Sessions: []course.SessionContent{
					{
						Number:   "1.1",
						Title:    "First Steps",
						Sections: []course.Section{{Title: "Intro", Content: "body"}},
						Assessment: course.Assessment{Questions: []course.Question{
							{Type: course.FreeForm, Text: "Explain.", CorrectAnswer: "because"},
						}},
					},
				},
			},
		},
	}
}

func TestSaveAndLoadCourse(t *testing.T) {
	s := testStore(t)
	doc := testDocument()

	id, err := s.SaveCourse(doc)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(id, "async_programming_") {
		t.Errorf("unexpected id: %q", id)
	}

	got, err := s.LoadCourse(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("saved course not found")
	}
	if got.Topic != doc.Topic || len(got.Modules) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Modules[0].Sessions[0].Assessment.Questions[0].Text != "Explain." {
		t.Error("nested assessment did not survive the round trip")
	}
}

func TestLoadCourseUnknownID(t *testing.T) {
	s := testStore(t)
	got, err := s.LoadCourse("no_such_course")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("unknown id should return nil, got %+v", got)
	}
}

func TestSaveCourseRejectsIncomplete(t *testing.T) {
	s := testStore(t)

	if _, err := s.SaveCourse(nil); err == nil {
		t.Error("nil document should be rejected")
	}
	if _, err := s.SaveCourse(&course.Document{Topic: ""}); err == nil {
		t.Error("document without topic should be rejected")
	}
	if _, err := s.SaveCourse(&course.Document{Topic: "t"}); err == nil {
		t.Error("document without modules should be rejected")
	}
}

func TestListCourses(t *testing.T) {
	s := testStore(t)

	if _, err := s.SaveCourse(testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	list, err := s.ListCourses()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 course, got %d", len(list))
	}
	if list[0].Topic != "Async Programming" || list[0].Modules != 1 {
		t.Errorf("unexpected listing: %+v", list[0])
	}
}

func TestLoadProgressFresh(t *testing.T) {
	s := testStore(t)

	p, err := s.LoadProgress("some_course")
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if p.CurrentModule != 0 || p.CurrentSession != 0 {
		t.Errorf("fresh progress should start at zero: %+v", p)
	}
	if p.Scores == nil {
		t.Error("fresh progress should have a usable score map")
	}
}

func TestUpdateSessionProgress(t *testing.T) {
	s := testStore(t)

	p, err := s.UpdateSessionProgress("c1", 0, 1, true, 0.8)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.CurrentModule != 0 || p.CurrentSession != 1 {
		t.Errorf("position not updated: %+v", p)
	}
	if len(p.CompletedSessions) != 1 || p.CompletedSessions[0] != "0_1" {
		t.Errorf("completion not recorded: %v", p.CompletedSessions)
	}
	if p.Scores["0_1"] != 0.8 {
		t.Errorf("score not recorded: %v", p.Scores)
	}

	// Completing the same session again must not duplicate the entry.
	p, err = s.UpdateSessionProgress("c1", 0, 1, true, 0.9)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if len(p.CompletedSessions) != 1 {
		t.Errorf("completion duplicated: %v", p.CompletedSessions)
	}
	if p.Scores["0_1"] != 0.9 {
		t.Errorf("score not overwritten: %v", p.Scores)
	}

	// Round trip through the database.
	got, err := s.LoadProgress("c1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.CurrentSession != 1 || got.Scores["0_1"] != 0.9 {
		t.Errorf("progress did not persist: %+v", got)
	}
}

func TestUpdateSessionProgressNegativeScore(t *testing.T) {
	s := testStore(t)

	p, err := s.UpdateSessionProgress("c1", 1, 0, false, -1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(p.Scores) != 0 {
		t.Errorf("negative score should not be recorded: %v", p.Scores)
	}
	if len(p.CompletedSessions) != 0 {
		t.Errorf("incomplete session should not be recorded: %v", p.CompletedSessions)
	}
	if p.CurrentModule != 1 {
		t.Errorf("position should still move: %+v", p)
	}
}

func TestExport(t *testing.T) {
	doc := testDocument()

	y, err := Export(doc, "yaml")
	if err != nil {
		t.Fatalf("yaml export: %v", err)
	}
	if !strings.Contains(string(y), "topic: Async Programming") {
		t.Errorf("yaml export missing topic: %s", y)
	}

	j, err := Export(doc, "json")
	if err != nil {
		t.Fatalf("json export: %v", err)
	}
	if !strings.Contains(string(j), `"topic": "Async Programming"`) {
		t.Errorf("json export missing topic: %s", j)
	}

	if _, err := Export(doc, "xml"); err == nil {
		t.Error("unsupported format should be rejected")
	}
}
