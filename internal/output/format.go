// Package output provides terminal output formatting for the relbump CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ruleWidthCap bounds the summary divider on very wide terminals.
const ruleWidthCap = 60

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// IsInteractive reports whether stdout is a terminal with color support.
// NO_COLOR disables colored and animated output.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

// Printer renders step and summary lines for one command run. In plain
// mode color, icons, and animation are replaced by ASCII markers.
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, plain bool) *Printer {
	return &Printer{out: out, plain: plain}
}

// Plain reports whether the printer runs in plain mode.
func (p *Printer) Plain() bool {
	return p.plain
}

// StepSuccess prints a completed step with a green checkmark and the
// detail in cyan.
func (p *Printer) StepSuccess(message string) {
	if p.plain {
		fmt.Fprintf(p.out, "[OK] %s\n", message)
		return
	}
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(p.out, "%s %s\n", green("✓"), cyan(message))
}

// StepSkipped prints a skipped step in dim text.
func (p *Printer) StepSkipped(message string) {
	if p.plain {
		fmt.Fprintf(p.out, "[--] %s\n", message)
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(p.out, "%s %s\n", dim("-"), dim(message))
}

// Rule prints a dim horizontal divider sized to the terminal. Suppressed
// in plain mode.
func (p *Printer) Rule() {
	if p.plain {
		return
	}
	width := GetTerminalWidth()
	if width > ruleWidthCap {
		width = ruleWidthCap
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(p.out, "%s\n", dim(strings.Repeat("─", width)))
}

// BumpSummary prints the resulting version of the run.
func (p *Printer) BumpSummary(version string, dryRun bool) {
	if p.plain {
		if dryRun {
			fmt.Fprintf(p.out, "New version: %s (dry run, nothing written)\n", version)
			return
		}
		fmt.Fprintf(p.out, "New version: %s\n", version)
		return
	}
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	if dryRun {
		dim := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(p.out, "%s %s %s\n", white("New version:"), white(version), dim("(dry run, nothing written)"))
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", white("New version:"), white(version))
}
