package generator

import (
	"context"
	"fmt"

	"github.com/meera/gurukul/internal/course"
	"github.com/meera/gurukul/internal/parse"
)

func (r *run) stageModules(ctx context.Context) error {
	s := r.state
	s.Stage = StageModuleCreation
	s.Status = "Creating module content"
	r.logger.LogStage(s.Topic, string(s.Stage), s.Status)

	stubs := s.Outline.Modules
	plans := make([]course.ModulePlan, len(stubs))

	if r.opts.Workers <= 1 {
		for i, stub := range stubs {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.progress(ctx, fmt.Sprintf("Generating content for Module %d: %s...", i+1, stub.Title), r.est.Module(i))
			plan, err := r.expandModule(ctx, stub, s.Language)
			if err != nil {
				return err
			}
			plans[i] = plan
		}
	} else {
		r.progress(ctx, fmt.Sprintf("Expanding %d modules (up to %d at a time)...", len(stubs), r.opts.Workers), r.est.Module(0))
		err := inOrder(ctx, len(stubs), r.opts.Workers,
			func(ctx context.Context, i int) error {
				plan, err := r.expandModule(ctx, stubs[i], s.Language)
				if err != nil {
					return err
				}
				plans[i] = plan
				return nil
			},
			func(i int) {
				r.progress(ctx, fmt.Sprintf("Generated content for Module %d: %s", i+1, stubs[i].Title), r.est.Module(i))
			})
		if err != nil {
			return err
		}
	}

	s.Modules = plans
	s.Stage = StageModulesCreated
	return nil
}

// expandModule fills in a module stub with two independent backend
// calls: one for the module body, one for the session outline. The
// second call never sees the first's output, so the overview sections
// and the session list are not reconciled against each other.
func (r *run) expandModule(ctx context.Context, stub course.ModuleStub, language string) (course.ModulePlan, error) {
	system, user := moduleSystem, modulePrompt(stub, language)
	reply, err := r.backend.Complete(ctx, system, user)
	if err != nil {
		return course.ModulePlan{}, err
	}
	r.logger.LogLLM(r.state.Topic, string(StageModuleCreation), system, user, reply)

	sections, diags := parse.Sections(reply)
	r.logger.LogParse(r.state.Topic, "section_content", len(sections), diags)

	system, user = sessionOutlineSystem, sessionOutlinePrompt(stub, language)
	reply, err = r.backend.Complete(ctx, system, user)
	if err != nil {
		return course.ModulePlan{}, err
	}
	r.logger.LogLLM(r.state.Topic, string(StageModuleCreation), system, user, reply)

	stubs, diags := parse.SessionOutline(reply)
	r.logger.LogParse(r.state.Topic, "session_outline", len(stubs), diags)

	return course.ModulePlan{
		Number:      stub.Number,
		Title:       stub.Title,
		Description: stub.Description,
		Objectives:  stub.Objectives,
		Exercises:   stub.Exercises,
		Sections:    sections,
		Outline:     stubs,
	}, nil
}
