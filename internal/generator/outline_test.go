package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// An outline reply with more modules than the cap keeps the first five
// and drops the rest.
func TestCreateOutlineTruncates(t *testing.T) {
	var reply strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&reply, "### Module %d: Part %d\n#### Description and Key Points:\nAbout part %d.\n", i, i, i)
	}

	b := &stubBackend{reply: func(user string) (string, error) {
		return reply.String(), nil
	}}
	p := New(b, testLogger(t), DefaultOptions())
	r := &run{Pipeline: p, state: &State{Topic: "Wide Topic", Language: "English"}, est: NewEstimator(), ch: make(chan Event, 1)}

	outline, err := r.createOutline(context.Background(), "Wide Topic", "English")
	if err != nil {
		t.Fatalf("createOutline: %v", err)
	}

	if len(outline.Modules) != 5 {
		t.Fatalf("expected 5 modules after truncation, got %d", len(outline.Modules))
	}
	for i, m := range outline.Modules {
		if want := fmt.Sprintf("%d", i+1); m.Number != want {
			t.Errorf("module %d has number %s, want %s", i, m.Number, want)
		}
	}
}

func TestCreateOutlineKeepsSmallReplies(t *testing.T) {
	b := &stubBackend{reply: func(user string) (string, error) {
		return outlineReply, nil
	}}
	p := New(b, testLogger(t), DefaultOptions())
	r := &run{Pipeline: p, state: &State{Topic: "Async Programming", Language: "English"}, est: NewEstimator(), ch: make(chan Event, 1)}

	outline, err := r.createOutline(context.Background(), "Async Programming", "English")
	if err != nil {
		t.Fatalf("createOutline: %v", err)
	}
	if len(outline.Modules) != 2 {
		t.Errorf("expected 2 modules, got %d", len(outline.Modules))
	}
}
