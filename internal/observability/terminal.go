package observability

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	colorReset    = "\033[0m"
	colorPurple   = "\033[35m"
	colorNeonCyan = "\033[96m"
	colorNeonMag  = "\033[95m"
)

// termMu synchronizes ALL terminal output so that the in-place progress
// bar redraw can never be interrupted by a log write.
var termMu sync.Mutex

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ------------------------------------------------------------
// TermWriter – a mutex-guarded io.Writer for log output.
// Every log.Println call will go through this writer, keeping log
// lines and progress bar redraws from interleaving mid-line.
// ------------------------------------------------------------

type termWriter struct{}

func (tw termWriter) Write(p []byte) (n int, err error) {
	termMu.Lock()
	defer termMu.Unlock()
	// Clear any partially drawn progress bar before the log line.
	os.Stderr.WriteString("\r\033[K")
	return os.Stderr.Write(p)
}

// NewTermWriter returns an io.Writer suitable for log.SetOutput().
// It serialises writes with PrintProgress via termMu.
func NewTermWriter() *termWriter {
	return &termWriter{}
}

// ------------------------------------------------------------
// Banner
// ------------------------------------------------------------

func PrintBanner() {
	banner := `
   ________  ______  __  ____ ____  ____
  / ____/ / / / __ \/ / / / //_/ / / / /
 / / __/ / / / /_/ / / / / ,<  / / / / /
/ /_/ / /_/ / _, _/ /_/ / /| |/ /_/ / /___
\____/\____/_/ |_|\____/_/ |_|\____/_____/

      >> COURSES GROWN FROM A TOPIC <<
`

	width := termWidth()
	for _, l := range strings.Split(banner, "\n") {
		padding := (width - len(l)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Printf("%s%s%s\n", strings.Repeat(" ", padding), colorNeonCyan+l, colorReset)
	}
}

// ------------------------------------------------------------
// Progress bar
// ------------------------------------------------------------

// PrintProgress redraws a single-line progress bar for the current
// generation status. Call FinishProgress once the run is over so the
// shell prompt lands on a fresh line.
func PrintProgress(status string, percent int) {
	percent = clamp(percent, 0, 100)

	width := termWidth()
	barWidth := clamp(width/4, 10, 30)
	filled := clamp(percent*barWidth/100, 0, barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("▒", barWidth-filled)

	// Leave room for the bar, the percent and the brackets.
	maxStatus := width - barWidth - 12
	if maxStatus < 10 {
		maxStatus = 10
	}
	if len(status) > maxStatus {
		status = status[:maxStatus-3] + "..."
	}

	barColor := colorPurple
	if percent >= 100 {
		barColor = colorNeonMag
	}

	line := fmt.Sprintf("\r\033[K%s[%s]%s %3d%% %s", barColor, bar, colorReset, percent, status)

	termMu.Lock()
	fmt.Print(line)
	termMu.Unlock()
}

// FinishProgress terminates the progress bar line.
func FinishProgress() {
	termMu.Lock()
	fmt.Println()
	termMu.Unlock()
}
