package course

import (
	"fmt"
	"log"
)

// Limits defines the structural shape a finished Document must satisfy.
// Questions is the exact number of questions an assessment must carry;
// zero switches to the lenient rule where any non-empty assessment is
// accepted and the mixed-type requirement is skipped.
type Limits struct {
	MinModules  int
	MaxModules  int
	MinSessions int
	MaxSessions int
	MinSections int
	MaxSections int

	Questions         int
	RequireMixedTypes bool
}

// DefaultLimits returns the strict shape: 2-3 modules, 3-5 sessions per
// module, 2-4 non-empty sections per session, and assessments of exactly
// 10 questions mixing both question types.
func DefaultLimits() Limits {
	return Limits{
		MinModules:        2,
		MaxModules:        3,
		MinSessions:       3,
		MaxSessions:       5,
		MinSections:       2,
		MaxSections:       4,
		Questions:         10,
		RequireMixedTypes: true,
	}
}

// LenientLimits keeps the cardinality checks but accepts any non-empty
// assessment.
func LenientLimits() Limits {
	l := DefaultLimits()
	l.Questions = 0
	l.RequireMixedTypes = false
	return l
}

// check logs the outcome of a single validation step and reports whether
// it passed. Validation short-circuits on the first failure, but every
// check that ran has a log line.
func check(ok bool, format string, args ...any) error {
	if ok {
		log.Printf("validate: ok: "+format, args...)
		return nil
	}
	log.Printf("validate: FAIL: "+format, args...)
	return fmt.Errorf(format, args...)
}

// Validate checks the assembled document against the limits. The first
// violation is returned; nothing is partially accepted.
func (l Limits) Validate(doc *Document) error {
	if doc == nil {
		return check(false, "no document to validate")
	}
	if err := check(len(doc.Modules) >= l.MinModules && len(doc.Modules) <= l.MaxModules,
		"course has %d modules (want %d-%d)", len(doc.Modules), l.MinModules, l.MaxModules); err != nil {
		return err
	}

	for _, m := range doc.Modules {
		if err := check(len(m.Sessions) >= l.MinSessions && len(m.Sessions) <= l.MaxSessions,
			"module %s has %d sessions (want %d-%d)", m.Number, len(m.Sessions), l.MinSessions, l.MaxSessions); err != nil {
			return err
		}
		for _, s := range m.Sessions {
			if err := check(len(s.Sections) >= l.MinSections && len(s.Sections) <= l.MaxSections,
				"session %s has %d sections (want %d-%d)", s.Number, len(s.Sections), l.MinSections, l.MaxSections); err != nil {
				return err
			}
			for _, sec := range s.Sections {
				if err := check(sec.Content != "",
					"session %s section %q has empty content", s.Number, sec.Title); err != nil {
					return err
				}
			}
			if err := l.ValidateAssessment(s.Assessment, s.Number); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateAssessment checks a single assessment against the limits. With
// Questions set it must match exactly; otherwise any non-empty question
// list passes. Multiple-choice questions must carry at least two options
// in either mode.
func (l Limits) ValidateAssessment(a Assessment, session string) error {
	if l.Questions > 0 {
		if err := check(len(a.Questions) == l.Questions,
			"session %s assessment has %d questions (want %d)", session, len(a.Questions), l.Questions); err != nil {
			return err
		}
	} else {
		if err := check(len(a.Questions) > 0,
			"session %s assessment has no questions", session); err != nil {
			return err
		}
	}

	for _, q := range a.Questions {
		if q.Type != MultipleChoice {
			continue
		}
		if err := check(len(q.Options) >= 2,
			"session %s multiple_choice question %q has %d options (want at least 2)", session, q.Text, len(q.Options)); err != nil {
			return err
		}
	}

	if l.RequireMixedTypes {
		var mc, ff bool
		for _, q := range a.Questions {
			switch q.Type {
			case MultipleChoice:
				mc = true
			case FreeForm:
				ff = true
			}
		}
		if err := check(mc && ff,
			"session %s assessment needs both multiple_choice and free_form questions", session); err != nil {
			return err
		}
	}
	return nil
}
