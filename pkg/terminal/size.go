package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Width returns the column count of f, then of stderr, then $COLUMNS.
// Zero means unknown.
func Width(f *os.File) int {
	for _, fd := range []uintptr{f.Fd(), os.Stderr.Fd()} {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return envInt("COLUMNS", 0)
}

// envInt reads a positive integer from the named variable, or fallback.
func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
