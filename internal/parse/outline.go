package parse

import (
	"regexp"
	"strings"

	"github.com/meera/gurukul/internal/course"
)

var moduleHeading = regexp.MustCompile(`^#{1,3}\s*Module\s+(\d+)[:.]\s*(.+)$`)

// ModuleOutline scans an outline reply for `### Module N: Title`
// headings and the `####` sub-headings underneath them. Lines below a
// sub-heading are appended to whichever field the sub-heading selected,
// with bullet markers stripped. Description lines are space-joined into
// one paragraph.
func ModuleOutline(text string) ([]course.ModuleStub, Diagnostics) {
	var (
		modules []course.ModuleStub
		current *course.ModuleStub
		field   string
		diags   Diagnostics
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "**") || strings.HasPrefix(line, "---") {
			continue
		}

		if m := moduleHeading.FindStringSubmatch(line); m != nil {
			if current != nil {
				modules = append(modules, *current)
			}
			current = &course.ModuleStub{Number: m[1], Title: strings.TrimSpace(m[2])}
			field = ""
			continue
		}

		if strings.HasPrefix(line, "####") {
			name := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(line, "#", "")))
			switch {
			case strings.Contains(name, "title:"):
				field = "title"
			case strings.Contains(name, "description"):
				field = "description"
			case strings.Contains(name, "objectives"):
				field = "objectives"
			case strings.Contains(name, "exercise"):
				field = "exercises"
			default:
				diags.skip(line)
			}
			continue
		}

		if current == nil || field == "" {
			diags.skip(line)
			continue
		}

		content := strings.TrimLeft(line, "*+-• \t")
		if content == "" {
			continue
		}

		switch field {
		case "description":
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += content
		case "objectives":
			// The prompt's label sometimes comes back as a bullet;
			// it is not an objective.
			if strings.HasPrefix(content, "Learning Objectives:") {
				continue
			}
			current.Objectives = append(current.Objectives, content)
		case "exercises":
			current.Exercises = append(current.Exercises, content)
		default:
			diags.skip(line)
		}
	}

	if current != nil {
		modules = append(modules, *current)
	}
	return modules, diags
}
