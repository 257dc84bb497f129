// Package terminal works out how badges can be drawn on the current output:
// which emulator is running, what color depth it takes and how wide it is.
// Everything here reads environment variables and file descriptors only.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermGeneric Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermTilix
	TermGNOME
	TermVSCode
	TermTmux
	TermScreen
	TermEmacs
)

var terminalNames = [...]string{
	TermGeneric:   "generic",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermTilix:     "tilix",
	TermGNOME:     "gnome-terminal",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermEmacs:     "emacs",
}

func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "generic"
}

// SupportsTrueColor reports whether the emulator renders 24-bit color
// even when COLORTERM is not set, e.g. across ssh.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermTilix, TermGNOME, TermVSCode:
		return true
	}
	return false
}

// Multiplexer reports whether t is tmux or screen.
func (t Terminal) Multiplexer() bool {
	return t == TermTmux || t == TermScreen
}

var termPrograms = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

// markerVars maps emulator-specific variables to their terminal, checked
// in order.
var markerVars = []struct {
	name string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
	{"TILIX_ID", TermTilix},
	{"VTE_VERSION", TermGNOME},
	{"INSIDE_EMACS", TermEmacs},
	{"TMUX", TermTmux},
	{"STY", TermScreen},
}

// Detect identifies the terminal emulator from TERM_PROGRAM, then TERM,
// then emulator-specific variables. Unknown terminals are TermGeneric.
func Detect() Terminal {
	if t, ok := termPrograms[strings.ToLower(os.Getenv("TERM_PROGRAM"))]; ok {
		return t
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}

	for _, m := range markerVars {
		if os.Getenv(m.name) != "" {
			return m.term
		}
	}
	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	return TermGeneric
}

// IsSSH reports whether the session runs over ssh.
func IsSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
