package output

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerCharSet selects the braille-dot spinner frames.
const spinnerCharSet = 14

// StartSpinner starts a spinner on stderr with the given message and
// returns a stop function. When the printer is in plain mode or stdout is
// not an interactive terminal the spinner is suppressed and the stop
// function is a no-op, so callers never need to branch on TTY state.
func (p *Printer) StartSpinner(message string) (stop func()) {
	if p.plain || !IsInteractive() {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
