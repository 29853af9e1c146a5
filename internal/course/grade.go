package course

import "strings"

// Grade reports whether a submitted answer matches any accepted answer
// for the question. Matching is a case-insensitive substring check: the
// submission is correct when it contains one of the accepted answers.
func Grade(answer string, q Question) bool {
	accepted := q.CorrectAnswers
	if len(accepted) == 0 && q.CorrectAnswer != "" {
		accepted = []string{q.CorrectAnswer}
	}
	if len(accepted) == 0 {
		return false
	}

	got := strings.ToLower(strings.TrimSpace(answer))
	for _, want := range accepted {
		want = strings.ToLower(strings.TrimSpace(want))
		if want != "" && strings.Contains(got, want) {
			return true
		}
	}
	return false
}

// Score grades a full set of answers against an assessment and returns
// the fraction answered correctly. Missing answers count as wrong.
func Score(answers []string, a Assessment) float64 {
	if len(a.Questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range a.Questions {
		if i < len(answers) && Grade(answers[i], q) {
			correct++
		}
	}
	return float64(correct) / float64(len(a.Questions))
}
