// Package generator drives the course generation pipeline: a staged
// workflow that prompts the backend, parses its markdown replies into
// course records and validates the assembled document, reporting its
// progress as a lazy event sequence.
package generator

import (
	"context"

	"github.com/meera/gurukul/internal/backend"
	"github.com/meera/gurukul/internal/course"
	"github.com/meera/gurukul/internal/observability"
)

// Options carries the tunable behaviour of a pipeline. The assessment
// sizing and question-type classification were inconsistent between
// call sites historically, so both are explicit knobs here instead of a
// hard-coded pick.
type Options struct {
	// Limits is the structural shape the finished document must have.
	Limits course.Limits

	// AssessmentQuestions is the question count requested from the
	// backend per session assessment.
	AssessmentQuestions int

	// ClassifyByOpeningLine switches the assessment parser to the
	// older rule that reads the question type off the numbered line
	// alone instead of counting parsed options.
	ClassifyByOpeningLine bool

	// Workers bounds concurrent module/session expansion. 1 keeps
	// expansion strictly sequential.
	Workers int

	// MaxRetries bounds backend-failure retries across a run.
	MaxRetries int
}

// DefaultOptions matches the strict validation path: 10 questions per
// assessment, option-counted classification, sequential expansion.
func DefaultOptions() Options {
	return Options{
		Limits:              course.DefaultLimits(),
		AssessmentQuestions: 10,
		Workers:             1,
		MaxRetries:          5,
	}
}

// Pipeline generates course documents. It is safe to run multiple
// generations from one Pipeline concurrently: all per-run state lives
// in the State value a run threads through its stages.
type Pipeline struct {
	backend backend.Backend
	logger  *observability.Logger
	opts    Options
}

func New(b backend.Backend, logger *observability.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = observability.NewLogger()
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 5
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.AssessmentQuestions <= 0 {
		opts.AssessmentQuestions = 10
	}
	return &Pipeline{backend: b, logger: logger, opts: opts}
}

// Generate runs the full pipeline for a topic and returns the event
// sequence. The channel is unbuffered: the pipeline suspends until the
// consumer reads each event, and cancelling ctx stops further backend
// calls. The sequence ends with exactly one Failure or Complete event,
// after which the channel closes.
func (p *Pipeline) Generate(ctx context.Context, topic, language string) <-chan Event {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		p.run(ctx, topic, language, ch)
	}()
	return ch
}
