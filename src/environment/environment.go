package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides terminal detection, for tests and for
// output that is piped but should still be colored.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive undoes ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if f is a terminal a user is looking at, false
// if it is redirected to a file or a pipe.
func IsInteractive(f *os.File) bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
