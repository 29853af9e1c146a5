package parse

import (
	"regexp"
	"strings"

	"github.com/meera/gurukul/internal/course"
)

var sessionNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// SessionOutline scans a session-outline reply. A `**Session` line with
// a colon and a decimal session number opens a new session; `* ` lines
// select one of the sub-fields, and `+`/`-` bullets are appended to the
// selected list. A `**Session` line without a usable number is skipped
// entirely and no session is opened.
func SessionOutline(text string) ([]course.SessionStub, Diagnostics) {
	var (
		sessions []course.SessionStub
		current  *course.SessionStub
		field    string
		diags    Diagnostics
	)

	flush := func() {
		if current != nil && current.Title != "" {
			sessions = append(sessions, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "**Session") {
			body := strings.TrimSpace(strings.Trim(line, "*"))
			parts := strings.SplitN(body, ":", 2)
			if len(parts) != 2 {
				diags.skip(line)
				continue
			}
			number := sessionNumber.FindString(parts[0])
			if number == "" {
				diags.skip(line)
				continue
			}
			flush()
			current = &course.SessionStub{
				Number: number,
				Title:  strings.TrimSpace(parts[1]),
			}
			field = ""
			continue
		}

		if current != nil && strings.HasPrefix(line, "* ") {
			switch {
			case strings.Contains(line, "Description:"):
				field = "description"
				current.Description = strings.TrimSpace(strings.SplitN(line, "Description:", 2)[1])
			case strings.Contains(line, "Key Concepts:"):
				field = "key_concepts"
			case strings.Contains(line, "Visual Elements:"):
				field = "visual_elements"
			case strings.Contains(line, "Resources:"):
				field = "resources"
			default:
				diags.skip(line)
			}
			continue
		}

		if current != nil && field != "" && (strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-")) {
			content := strings.TrimSpace(strings.Trim(line, "+-\t"))
			switch field {
			case "key_concepts":
				current.KeyConcepts = append(current.KeyConcepts, content)
			case "visual_elements":
				current.VisualElements = append(current.VisualElements, content)
			case "resources":
				current.Resources = append(current.Resources, content)
			default:
				diags.skip(line)
			}
			continue
		}

		diags.skip(line)
	}

	flush()
	return sessions, diags
}
