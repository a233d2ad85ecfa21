package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss-styled, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the string representation of an OutputMode.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// terminalProbe reports whether stdin/stdout are terminals.
type terminalProbe struct {
	stdinTTY  bool
	stdoutTTY bool
	lookupEnv func(string) (string, bool)
}

func systemProbe() terminalProbe {
	return terminalProbe{
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		lookupEnv: os.LookupEnv,
	}
}

// DetectOutputMode picks the output mode for the current process.
// plain forces plain text, noColor (or NO_COLOR / TERM=dumb) disables styling,
// noInteractive keeps styling but never starts the interactive program.
func DetectOutputMode(plain, noColor, noInteractive bool) OutputMode {
	return detectOutputMode(systemProbe(), plain, noColor, noInteractive)
}

func detectOutputMode(p terminalProbe, plain, noColor, noInteractive bool) OutputMode {
	if plain || !p.stdoutTTY {
		return OutputModePlain
	}
	if _, ok := p.lookupEnv("NO_COLOR"); ok || noColor {
		return OutputModePlain
	}
	if termName, ok := p.lookupEnv("TERM"); ok && termName == "dumb" {
		return OutputModePlain
	}
	if _, ok := p.lookupEnv("CI"); ok || noInteractive || !p.stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the stdout width, or DefaultWidth when it cannot be determined.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
