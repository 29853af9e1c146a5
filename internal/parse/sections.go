package parse

import (
	"strings"

	"github.com/meera/gurukul/internal/course"
)

// Sections scans a content reply for markdown headings. A `#` heading
// opens a new section, folding the pending lines into the previous
// section's content; a `##` heading instead folds the pending lines
// into a subsection of the current section. Sections that end up with
// no body are dropped rather than emitted empty.
func Sections(text string) ([]course.Section, Diagnostics) {
	var (
		sections []course.Section
		current  *course.Section
		pending  []string
		diags    Diagnostics
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(pending, "\n")
		pending = nil
		if current.Content == "" && len(current.Subsections) == 0 {
			diags.skip("(empty section) " + current.Title)
		} else {
			sections = append(sections, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "##") {
			title := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if current != nil && len(pending) > 0 {
				current.Subsections = append(current.Subsections, course.Subsection{
					Title:   title,
					Content: strings.Join(pending, "\n"),
				})
				pending = nil
			} else {
				diags.skip(line)
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			flush()
			current = &course.Section{Title: strings.TrimSpace(strings.TrimLeft(line, "#"))}
			continue
		}

		pending = append(pending, line)
	}

	flush()
	return sections, diags
}
