package generator

import "sync"

// Estimator computes the percentage attached to progress events. The
// outline lands at 10%, then each module owns a linear band of the
// 20-100 range with session and section sub-bands nested inside it.
//
// The denominators are fixed assumptions, not the counts the parsers
// eventually produce, so the estimate is only an estimate and the final
// jump to 100 can be non-linear. What the estimator does guarantee is
// monotonicity: a watermark clamps every value to at least the previous
// one, even when concurrent expansion reports out of order.
type Estimator struct {
	AssumedModules  int
	AssumedSessions int
	AssumedSections int

	mu   sync.Mutex
	last int
}

func NewEstimator() *Estimator {
	return &Estimator{
		AssumedModules:  3,
		AssumedSessions: 4,
		AssumedSections: 3,
	}
}

func (e *Estimator) clamp(v int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v < e.last {
		v = e.last
	}
	if v > 100 {
		v = 100
	}
	e.last = v
	return v
}

// Outline marks the start of outline generation.
func (e *Estimator) Outline() int {
	return e.clamp(10)
}

func (e *Estimator) moduleWidth() float64 {
	return 80.0 / float64(e.AssumedModules)
}

// Module marks the start of the i-th module's band (0-based).
func (e *Estimator) Module(i int) int {
	return e.clamp(int(20 + e.moduleWidth()*float64(i)))
}

// Session marks the start of session j inside module i's band.
func (e *Estimator) Session(i, j int) int {
	base := 20 + e.moduleWidth()*float64(i)
	sub := e.moduleWidth() * float64(j) / float64(e.AssumedSessions)
	return e.clamp(int(base + sub))
}

// Section marks section (or generation step) k inside session j of
// module i.
func (e *Estimator) Section(i, j, k int) int {
	base := 20 + e.moduleWidth()*float64(i)
	sessionWidth := e.moduleWidth() / float64(e.AssumedSessions)
	sub := sessionWidth*float64(j) + sessionWidth*float64(k)/float64(e.AssumedSections)
	return e.clamp(int(base + sub))
}

// Done pins the watermark at 100 for the terminal event.
func (e *Estimator) Done() int {
	return e.clamp(100)
}
