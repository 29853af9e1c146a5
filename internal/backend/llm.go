package backend

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// LLM adapts a langchaingo model to the Backend interface.
type LLM struct {
	Model llms.Model
	Opts  []llms.CallOption
}

// NewLLM wraps a model with the sampling settings used for course
// generation (temperature 0.7, top-k 50, top-p 0.9) unless the caller
// supplies its own call options.
func NewLLM(model llms.Model, opts ...llms.CallOption) *LLM {
	if len(opts) == 0 {
		opts = []llms.CallOption{
			llms.WithTemperature(0.7),
			llms.WithTopK(50),
			llms.WithTopP(0.9),
		}
	}
	return &LLM{Model: model, Opts: opts}
}

func (l *LLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var messages []llms.MessageContent
	if systemPrompt != "" {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		})
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
	})

	resp, err := l.Model.GenerateContent(ctx, messages, l.Opts...)
	if err != nil {
		return "", &Error{Err: err}
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", Errorf("completion returned no choices")
	}
	content := resp.Choices[0].Content
	if strings.TrimSpace(content) == "" {
		return "", Errorf("completion returned empty content")
	}
	return content, nil
}
