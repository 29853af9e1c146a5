package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meera/gurukul/internal/course"
)

var studyCmd = &cobra.Command{
	Use:   "study <course-id>",
	Short: "Work through a stored course session by session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		doc, err := st.LoadCourse(args[0])
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("course %s not found", args[0])
		}

		progress, err := st.LoadProgress(args[0])
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		for mi := progress.CurrentModule; mi < len(doc.Modules); mi++ {
			m := doc.Modules[mi]
			fmt.Printf("\n=== Module %s: %s ===\n%s\n", m.Number, m.Title, m.Description)

			si := 0
			if mi == progress.CurrentModule {
				si = progress.CurrentSession
			}
			for ; si < len(m.Sessions); si++ {
				session := m.Sessions[si]
				printSession(session)

				score := runAssessment(reader, session.Assessment)
				fmt.Printf("\nAssessment score: %.0f%%\n", score*100)

				if _, err := st.UpdateSessionProgress(args[0], mi, si, true, score); err != nil {
					return err
				}

				if !askYes(reader, "Continue to the next session? [y/N] ") {
					return nil
				}
			}
		}

		fmt.Println("\nCongratulations! You have completed all sessions in this course.")
		return nil
	},
}

func printSession(s course.SessionContent) {
	fmt.Printf("\n--- Session %s: %s ---\n", s.Number, s.Title)
	for _, sec := range s.Sections {
		fmt.Printf("\n# %s\n%s\n", sec.Title, sec.Content)
		for _, sub := range sec.Subsections {
			fmt.Printf("\n## %s\n%s\n", sub.Title, sub.Content)
		}
	}
}

// runAssessment asks every question on stdin and returns the fraction
// answered correctly.
func runAssessment(reader *bufio.Reader, a course.Assessment) float64 {
	if len(a.Questions) == 0 {
		return 0
	}

	correct := 0
	for i, q := range a.Questions {
		fmt.Printf("\nQ%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'a'+j, opt)
		}
		fmt.Print("> ")

		answer, err := reader.ReadString('\n')
		if err != nil {
			break
		}

		if course.Grade(answer, q) {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Println("Incorrect.")
		}
		if q.Explanation != "" {
			fmt.Println(q.Explanation)
		}
	}
	return float64(correct) / float64(len(a.Questions))
}

func askYes(reader *bufio.Reader, prompt string) bool {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
