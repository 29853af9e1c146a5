package parse

import (
	"testing"

	"github.com/meera/gurukul/internal/course"
)

const assessmentFixture = `Here is the assessment.

1. What is the primary purpose of the event loop?
a) To run code in parallel threads
b) To schedule and resume coroutines
c) To allocate memory
Answer: b
Explanation: The event loop multiplexes coroutines on one thread.

2) Describe in your own words how awaiting works.
Answer: Awaiting suspends the coroutine until the awaited result is ready.
`

func TestAssessment(t *testing.T) {
	questions, _ := Assessment(assessmentFixture, true)

	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Type != course.MultipleChoice {
		t.Errorf("expected multiple_choice, got %s", q.Type)
	}
	if q.Text != "What is the primary purpose of the event loop?" {
		t.Errorf("unexpected question text: %q", q.Text)
	}
	if len(q.Options) != 3 || q.Options[1] != "To schedule and resume coroutines" {
		t.Errorf("unexpected options: %v", q.Options)
	}
	if q.CorrectAnswer != "b" {
		t.Errorf("unexpected answer: %q", q.CorrectAnswer)
	}
	if q.Explanation != "The event loop multiplexes coroutines on one thread." {
		t.Errorf("unexpected explanation: %q", q.Explanation)
	}

	q = questions[1]
	if q.Type != course.FreeForm {
		t.Errorf("expected free_form, got %s", q.Type)
	}
	if len(q.Options) != 0 {
		t.Errorf("free form question should have no options: %v", q.Options)
	}
	if q.CorrectAnswer == "" {
		t.Error("expected answer text on the free form question")
	}
}

func TestAssessmentSingleQuestion(t *testing.T) {
	questions, _ := Assessment("1. What is X?\na) foo\nb) bar\nAnswer: a\nExplanation: because", true)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]
	if q.Type != course.MultipleChoice {
		t.Errorf("type = %s, want multiple_choice", q.Type)
	}
	if len(q.Options) != 2 || q.Options[0] != "foo" || q.Options[1] != "bar" {
		t.Errorf("options = %v", q.Options)
	}
	if q.CorrectAnswer != "a" {
		t.Errorf("answer = %q", q.CorrectAnswer)
	}
	if q.Explanation != "because" {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

// The two classification rules disagree on questions whose options
// arrive only on later lines: counting parsed options sees them, while
// reading the opening line alone does not.
func TestAssessmentClassificationRules(t *testing.T) {
	input := "1. What is X?\na) first\nb) second\nAnswer: a\n"

	byOptions, _ := Assessment(input, true)
	if len(byOptions) != 1 || byOptions[0].Type != course.MultipleChoice {
		t.Errorf("option counting should classify as multiple_choice: %+v", byOptions)
	}

	byOpeningLine, _ := Assessment(input, false)
	if len(byOpeningLine) != 1 || byOpeningLine[0].Type != course.FreeForm {
		t.Errorf("opening-line rule should classify as free_form: %+v", byOpeningLine)
	}

	inline := "1. Which is true? a) this b) that\nAnswer: a\n"
	byOpeningLine, _ = Assessment(inline, false)
	if len(byOpeningLine) != 1 || byOpeningLine[0].Type != course.MultipleChoice {
		t.Errorf("opening-line rule should see inline markers: %+v", byOpeningLine)
	}
}

func TestAssessmentSingleOptionIsFreeForm(t *testing.T) {
	questions, _ := Assessment("1. Only one option follows.\na) lonely\n", true)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Type != course.FreeForm {
		t.Errorf("one option is not enough for multiple_choice, got %s", questions[0].Type)
	}
}

func TestAssessmentCorrectPrefix(t *testing.T) {
	questions, _ := Assessment("1. Pick one.\na) yes\nb) no\nCorrect: a\n", true)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "a" {
		t.Errorf("Correct: prefix not honored, got %q", questions[0].CorrectAnswer)
	}
}

func TestAssessmentLinesBeforeFirstQuestion(t *testing.T) {
	questions, diags := Assessment("a) stray option\nAnswer: stray\n1. Real question?\nAnswer: yes\n", true)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "yes" {
		t.Errorf("stray lines attached to the question: %+v", questions[0])
	}
	if len(diags) != 2 {
		t.Errorf("expected 2 diagnostics for stray lines, got %d", len(diags))
	}
}

func TestAssessmentNoise(t *testing.T) {
	questions, _ := Assessment("no questions here\njust prose\n", true)
	if len(questions) != 0 {
		t.Errorf("expected no questions from noise, got %d", len(questions))
	}
}
