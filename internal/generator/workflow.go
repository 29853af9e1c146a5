package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meera/gurukul/internal/backend"
	"github.com/meera/gurukul/internal/course"
)

// Stage names the steps of the generation workflow.
type Stage string

const (
	StageStart           Stage = "start"
	StageOutlineCreation Stage = "outline_creation"
	StageOutlineCreated  Stage = "outline_created"
	StageModuleCreation  Stage = "module_creation"
	StageModulesCreated  Stage = "modules_created"
	StageSessionCreation Stage = "session_creation"
	StageSessionsCreated Stage = "sessions_created"
	StageFinalizing      Stage = "finalizing"
	StageCompleted       Stage = "completed"
	StageEnd             Stage = "end"
)

// State is the workflow record threaded through the stages of one run.
// Exactly one stage writes to it at a time; it is never shared between
// runs.
type State struct {
	Topic    string
	Language string

	Stage     Stage
	Status    string
	Err       error
	Retries   int
	Completed bool

	Outline *course.Outline
	Modules []course.ModulePlan
	Course  *course.Document

	// SessionErrors records sessions that failed to generate. Session
	// failures do not abort the module they belong to; the validator
	// decides later whether the module survived with enough sessions.
	SessionErrors []string
}

// RetryBaseDelay controls the base duration for exponential backoff on
// backend failures. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// next implements the transition function. The checks run in priority
// order: an exhausted retry budget is fatal, then a recorded error,
// then completion, and only then does the current stage pick the next
// one. An unrecognized stage is itself an error.
func (p *Pipeline) next(s *State) Stage {
	switch {
	case s.Retries >= p.opts.MaxRetries:
		log.Printf("workflow: max retries reached, ending")
		if s.Err == nil {
			s.Err = fmt.Errorf("max retries (%d) reached", p.opts.MaxRetries)
		}
		return StageEnd
	case s.Err != nil:
		log.Printf("workflow: error detected: %v", s.Err)
		return StageEnd
	case s.Completed:
		log.Printf("workflow: course generation completed")
		return StageEnd
	}

	switch s.Stage {
	case StageStart:
		return StageOutlineCreation
	case StageOutlineCreated:
		return StageModuleCreation
	case StageModulesCreated:
		return StageSessionCreation
	case StageSessionsCreated:
		return StageFinalizing
	default:
		log.Printf("workflow: unknown stage: %s", s.Stage)
		s.Err = fmt.Errorf("unknown stage %q", s.Stage)
		return StageEnd
	}
}

// run is the body of one generation. It owns the State for its whole
// lifetime and is the only writer.
func (p *Pipeline) run(ctx context.Context, topic, language string, ch chan<- Event) {
	if language == "" {
		language = "English"
	}

	s := &State{
		Topic:    topic,
		Language: language,
		Stage:    StageStart,
		Status:   "Initializing course generation",
	}
	if topic == "" {
		s.Err = errors.New("topic must not be empty")
	}

	r := &run{Pipeline: p, state: s, est: NewEstimator(), ch: ch}

	for {
		stage := p.next(s)
		if stage == StageEnd {
			break
		}
		r.runStage(ctx, stage)
	}

	if s.Err != nil {
		s.Status = fmt.Sprintf("Course generation failed: %v", s.Err)
		p.logger.LogStage(s.Topic, string(s.Stage), s.Status)
		r.emit(ctx, Event{
			Type:    EventFailure,
			Status:  s.Status,
			Percent: r.est.Done(),
			Error:   s.Err.Error(),
		})
		return
	}

	s.Status = "Course generation completed!"
	p.logger.LogStage(s.Topic, string(s.Stage), s.Status)
	r.emit(ctx, Event{
		Type:     EventComplete,
		Status:   s.Status,
		Percent:  r.est.Done(),
		Document: s.Course,
	})
}

// run bundles the per-run collaborators so stage methods stay readable.
type run struct {
	*Pipeline
	state *State
	est   *Estimator
	ch    chan<- Event
}

func (r *run) emit(ctx context.Context, e Event) bool {
	select {
	case r.ch <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *run) progress(ctx context.Context, status string, percent int) {
	r.logger.LogProgress(r.state.Topic, status, percent)
	r.emit(ctx, Event{Type: EventProgress, Status: status, Percent: percent})
}

func (r *run) runStage(ctx context.Context, stage Stage) {
	var fn func(context.Context) error
	switch stage {
	case StageOutlineCreation:
		fn = r.stageOutline
	case StageModuleCreation:
		fn = r.stageModules
	case StageSessionCreation:
		fn = r.stageSessions
	case StageFinalizing:
		fn = r.stageFinalize
	default:
		r.state.Err = fmt.Errorf("no step for stage %q", stage)
		return
	}
	r.withRetry(ctx, stage, fn)
}

// withRetry runs a stage and, when it fails with a backend error,
// retries it with exponential backoff against the run's shared retry
// budget. Any other failure is recorded on the state, which routes the
// next transition to the end stage.
func (r *run) withRetry(ctx context.Context, stage Stage, fn func(context.Context) error) {
	s := r.state
	for {
		if err := ctx.Err(); err != nil {
			s.Err = err
			return
		}
		err := fn(ctx)
		if err == nil {
			return
		}
		if !backend.IsError(err) || ctx.Err() != nil {
			s.Err = err
			return
		}

		s.Retries++
		if s.Retries >= r.opts.MaxRetries {
			s.Err = fmt.Errorf("max retries (%d) reached: %w", r.opts.MaxRetries, err)
			return
		}

		backoff := time.Duration(math.Pow(2, float64(s.Retries-1))) * RetryBaseDelay
		log.Printf("stage %s: backend error: %v; retrying in %v (attempt %d/%d)",
			stage, err, backoff, s.Retries, r.opts.MaxRetries)

		select {
		case <-ctx.Done():
			s.Err = ctx.Err()
			return
		case <-time.After(backoff):
		}
	}
}

// inOrder runs work for indices 0..n-1 with at most workers goroutines
// and calls merged for each index in input order as soon as that index
// and all before it have finished. A work error cancels outstanding
// work and is returned; merged is not called for unfinished indices.
func inOrder(ctx context.Context, n, workers int, work func(ctx context.Context, i int) error, merged func(i int)) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	doneCh := make(chan int, n)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := work(gctx, i); err != nil {
				return err
			}
			doneCh <- i
			return nil
		})
	}

	mergeDone := make(chan struct{})
	go func() {
		defer close(mergeDone)
		seen := make(map[int]bool, n)
		next := 0
		for i := range doneCh {
			seen[i] = true
			for seen[next] {
				merged(next)
				next++
			}
		}
	}()

	err := g.Wait()
	close(doneCh)
	<-mergeDone
	return err
}
