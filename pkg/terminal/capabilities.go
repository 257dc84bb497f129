package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarises one output stream.
type Capabilities struct {
	Term    Terminal
	Profile termenv.Profile
	Width   int
	TTY     bool
	SSH     bool
}

// DetectCapabilities inspects f and the environment. noColor forces plain
// text; so does output that is not a terminal.
func DetectCapabilities(f *os.File, noColor bool) Capabilities {
	c := Capabilities{
		Term: Detect(),
		TTY:  isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		SSH:  IsSSH(),
	}
	if c.TTY {
		c.Width = Width(f)
	}
	c.Profile = outputProfile(c.Term, c.TTY, noColor)
	return c
}

func outputProfile(t Terminal, tty, noColor bool) termenv.Profile {
	if noColor || !tty {
		return termenv.Ascii
	}
	p := termenv.EnvColorProfile()
	if p != termenv.Ascii && p != termenv.TrueColor && t.SupportsTrueColor() {
		p = termenv.TrueColor
	}
	return p
}

// PromptProfile is the color profile for text a shell prompt embeds, where
// stdout is captured and never a terminal. NO_COLOR and noColor give
// plain text; emulators without 24-bit color get 256 colors.
func PromptProfile(noColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return termenv.TrueColor
	}
	t := Detect()
	if t == TermGeneric || t.SupportsTrueColor() {
		return termenv.TrueColor
	}
	return termenv.ANSI256
}
