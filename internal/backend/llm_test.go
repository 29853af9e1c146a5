package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

// fakeModel returns a fixed response and records the messages it saw.
type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	return m.resp, m.err
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func textResponse(content string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: content}}}
}

func TestLLMComplete(t *testing.T) {
	m := &fakeModel{resp: textResponse("the reply")}
	l := NewLLM(m)

	got, err := l.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "the reply" {
		t.Errorf("reply = %q", got)
	}

	if len(m.messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(m.messages))
	}
	if m.messages[0].Role != llms.ChatMessageTypeSystem {
		t.Errorf("first message role = %s", m.messages[0].Role)
	}
	if m.messages[1].Role != llms.ChatMessageTypeHuman {
		t.Errorf("second message role = %s", m.messages[1].Role)
	}
}

func TestLLMCompleteOmitsEmptySystemPrompt(t *testing.T) {
	m := &fakeModel{resp: textResponse("ok")}
	l := NewLLM(m)

	if _, err := l.Complete(context.Background(), "", "user text"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(m.messages) != 1 {
		t.Errorf("expected only the user message, got %d", len(m.messages))
	}
}

func TestLLMCompleteWrapsFailures(t *testing.T) {
	cases := []struct {
		name string
		m    *fakeModel
	}{
		{"transport error", &fakeModel{err: errors.New("connection refused")}},
		{"nil response", &fakeModel{}},
		{"no choices", &fakeModel{resp: &llms.ContentResponse{}}},
		{"blank content", &fakeModel{resp: textResponse("   \n")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLLM(tc.m).Complete(context.Background(), "s", "u")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsError(err) {
				t.Errorf("failure should be a backend error, got %T: %v", err, err)
			}
		})
	}
}

func TestIsError(t *testing.T) {
	if !IsError(Errorf("boom")) {
		t.Error("Errorf result should be a backend error")
	}
	wrapped := errors.Join(errors.New("outer"), Errorf("inner"))
	if !IsError(wrapped) {
		t.Error("wrapped backend error should be detected")
	}
	if IsError(errors.New("plain")) {
		t.Error("plain error misdetected as backend error")
	}
}
