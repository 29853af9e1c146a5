package parse

import (
	"regexp"
	"strings"

	"github.com/meera/gurukul/internal/course"
)

var (
	questionStart = regexp.MustCompile(`^[0-9]+[).]\s`)
	optionLine    = regexp.MustCompile(`^[a-d][).]\s`)
)

// Assessment scans an assessment reply into questions. A numbered line
// (`1. ` or `1) `) opens a question, `a)`-`d)` lines append options, and
// `Answer:`/`Correct:`/`Explanation:` lines fill the answer fields.
//
// classifyByOptions picks the question-type rule. When true (the
// default), a question is multiple choice iff at least two option lines
// were parsed for it. When false, the type is read off the opening line
// alone: the question is multiple choice iff that line itself mentions
// an option marker, which misclassifies questions whose options arrive
// only on later lines.
func Assessment(text string, classifyByOptions bool) ([]course.Question, Diagnostics) {
	var (
		questions []course.Question
		current   *course.Question
		diags     Diagnostics
	)

	flush := func() {
		if current == nil {
			return
		}
		if classifyByOptions {
			if len(current.Options) >= 2 {
				current.Type = course.MultipleChoice
			} else {
				current.Type = course.FreeForm
			}
		}
		questions = append(questions, *current)
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if loc := questionStart.FindStringIndex(line); loc != nil {
			flush()
			typ := course.FreeForm
			for _, marker := range []string{"a)", "b)", "c)", "d)"} {
				if strings.Contains(lower, marker) {
					typ = course.MultipleChoice
					break
				}
			}
			current = &course.Question{
				Type: typ,
				Text: strings.TrimSpace(line[loc[1]:]),
			}
			continue
		}

		if current == nil {
			diags.skip(line)
			continue
		}

		if loc := optionLine.FindStringIndex(lower); loc != nil {
			current.Options = append(current.Options, strings.TrimSpace(line[loc[1]:]))
			continue
		}

		switch {
		case strings.HasPrefix(lower, "answer:"), strings.HasPrefix(lower, "correct:"):
			current.CorrectAnswer = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
		case strings.HasPrefix(lower, "explanation:"):
			current.Explanation = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
		default:
			diags.skip(line)
		}
	}

	flush()
	return questions, diags
}
