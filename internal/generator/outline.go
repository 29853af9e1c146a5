package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/meera/gurukul/internal/course"
	"github.com/meera/gurukul/internal/parse"
)

// maxOutlineModules caps how many module stubs the outline stage keeps,
// however many the backend decided to produce.
const maxOutlineModules = 5

func (r *run) stageOutline(ctx context.Context) error {
	s := r.state
	s.Stage = StageOutlineCreation
	s.Status = "Creating course outline"
	r.logger.LogStage(s.Topic, string(s.Stage), s.Status)
	r.progress(ctx, "Creating course outline...", r.est.Outline())

	outline, err := r.createOutline(ctx, s.Topic, s.Language)
	if err != nil {
		return err
	}

	s.Outline = outline
	s.Stage = StageOutlineCreated
	return nil
}

// createOutline issues the outline prompt and parses the reply into
// module stubs. Backend errors propagate unchanged; the retry decision
// belongs to the orchestrator, not this layer.
func (r *run) createOutline(ctx context.Context, topic, language string) (*course.Outline, error) {
	system, user := outlineSystem, outlinePrompt(topic, language)
	reply, err := r.backend.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	r.logger.LogLLM(topic, string(StageOutlineCreation), system, user, reply)

	stubs, diags := parse.ModuleOutline(reply)
	r.logger.LogParse(topic, "module_outline", len(stubs), diags)

	if len(stubs) > maxOutlineModules {
		log.Printf("outline: got %d modules, truncating to %d", len(stubs), maxOutlineModules)
		stubs = stubs[:maxOutlineModules]
	}

	return &course.Outline{
		Topic:         topic,
		Language:      language,
		Description:   fmt.Sprintf("A comprehensive course on %s", topic),
		Prerequisites: []string{},
		Modules:       stubs,
	}, nil
}
