package generator

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/meera/gurukul/internal/course"
	"github.com/meera/gurukul/internal/parse"
)

func (r *run) stageSessions(ctx context.Context) error {
	s := r.state
	s.Stage = StageSessionCreation
	s.Status = "Creating session content"
	r.logger.LogStage(s.Topic, string(s.Stage), s.Status)

	for mi := range s.Modules {
		m := &s.Modules[mi]
		if err := r.expandModuleSessions(ctx, mi, m); err != nil {
			return err
		}
		r.progress(ctx, fmt.Sprintf("[Module %d/%d] Completed module '%s'", mi+1, len(s.Modules), m.Title),
			r.est.Session(mi, len(m.Outline)))
	}

	s.Stage = StageSessionsCreated
	return nil
}

// expandModuleSessions generates content for every session stub of one
// module. A session that fails to generate is recorded and skipped
// rather than aborting the module; the validator decides later whether
// the module kept enough sessions. This is the only recoverable failure
// point in the pipeline.
func (r *run) expandModuleSessions(ctx context.Context, mi int, m *course.ModulePlan) error {
	s := r.state
	total := len(s.Modules)
	stubs := m.Outline
	results := make([]*course.SessionContent, len(stubs))

	var mu sync.Mutex
	fail := func(stub course.SessionStub, err error) {
		msg := fmt.Sprintf("failed to generate session %s: %v", stub.Number, err)
		log.Printf("module %s: %s", m.Number, msg)
		mu.Lock()
		s.SessionErrors = append(s.SessionErrors, msg)
		mu.Unlock()
	}

	if r.opts.Workers <= 1 {
		for si, stub := range stubs {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.progress(ctx, fmt.Sprintf("[Module %d/%d] Generating Session %d: %s", mi+1, total, si+1, stub.Title),
				r.est.Session(mi, si))
			sc, err := r.expandSession(ctx, mi, si, m.Number, stub, s.Language)
			if err != nil {
				fail(stub, err)
				continue
			}
			results[si] = sc
		}
	} else {
		err := inOrder(ctx, len(stubs), r.opts.Workers,
			func(ctx context.Context, si int) error {
				sc, err := r.expandSession(ctx, mi, si, m.Number, stubs[si], s.Language)
				if err != nil {
					fail(stubs[si], err)
					return nil
				}
				results[si] = sc
				return nil
			},
			func(si int) {
				r.progress(ctx, fmt.Sprintf("[Module %d/%d] Generated Session %d: %s", mi+1, total, si+1, stubs[si].Title),
					r.est.Session(mi, si))
			})
		if err != nil {
			return err
		}
	}

	for _, sc := range results {
		if sc != nil {
			m.Sessions = append(m.Sessions, *sc)
		}
	}
	return nil
}

// expandSession issues the content prompt and the assessment prompt for
// one session stub and assembles the finished session. The parsed
// assessment is validated against the configured shape before the
// session is accepted.
func (r *run) expandSession(ctx context.Context, mi, si int, moduleNumber string, stub course.SessionStub, language string) (*course.SessionContent, error) {
	system, user := sessionContentSystem, sessionContentPrompt(moduleNumber, stub.Number, stub.Title, language)
	reply, err := r.backend.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	r.logger.LogLLM(r.state.Topic, string(StageSessionCreation), system, user, reply)

	sections, diags := parse.Sections(reply)
	r.logger.LogParse(r.state.Topic, "section_content", len(sections), diags)

	r.progress(ctx, fmt.Sprintf("[Module %s] Generating assessment for Session %s", moduleNumber, stub.Number),
		r.est.Section(mi, si, 1))

	system, user = assessmentSystem, assessmentPrompt(moduleNumber, stub.Number, stub.Title, language, r.opts.AssessmentQuestions)
	reply, err = r.backend.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	r.logger.LogLLM(r.state.Topic, string(StageSessionCreation), system, user, reply)

	questions, diags := parse.Assessment(reply, !r.opts.ClassifyByOpeningLine)
	r.logger.LogParse(r.state.Topic, "assessment", len(questions), diags)

	assessment := course.Assessment{Questions: questions}
	if err := r.opts.Limits.ValidateAssessment(assessment, stub.Number); err != nil {
		r.logger.LogValidation(r.state.Topic, false, err.Error())
		return nil, err
	}

	return &course.SessionContent{
		Number:       stub.Number,
		Title:        stub.Title,
		ModuleNumber: moduleNumber,
		Language:     language,
		Sections:     sections,
		Assessment:   assessment,
	}, nil
}

func (r *run) stageFinalize(ctx context.Context) error {
	s := r.state
	s.Stage = StageFinalizing
	s.Status = "Finalizing course"
	r.logger.LogStage(s.Topic, string(s.Stage), s.Status)
	r.progress(ctx, "Finalizing course...", r.est.Module(len(s.Modules)))

	doc := &course.Document{
		Topic:         s.Topic,
		Language:      s.Language,
		Description:   s.Outline.Description,
		Prerequisites: s.Outline.Prerequisites,
		Modules:       s.Modules,
	}

	if err := r.opts.Limits.Validate(doc); err != nil {
		r.logger.LogValidation(s.Topic, false, err.Error())
		return fmt.Errorf("course validation failed: %w", err)
	}
	r.logger.LogValidation(s.Topic, true, "course structure valid")

	s.Course = doc
	s.Completed = true
	s.Stage = StageCompleted
	return nil
}
