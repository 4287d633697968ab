package session

import (
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// Environment markers whose presence indicates a graphical session.
// The value does not matter, only that the variable is set.
const (
	displayEnv        = "DISPLAY"
	waylandDisplayEnv = "WAYLAND_DISPLAY"
)

// displayServerNames are process names of common display servers,
// matched case-insensitively against the process list.
var displayServerNames = []string{"xorg", "xwayland", "xinit", "sway", "weston", "kwin_wayland"}

// IsGraphical reports whether a graphical session marker is present in
// the environment. The keyboard-layout apply step only runs inside one.
func IsGraphical() bool {
	return os.Getenv(displayEnv) != "" || os.Getenv(waylandDisplayEnv) != ""
}

// DisplayServer returns the name of a running display server process, or
// empty when none is found. Best effort, used only for the trace: the
// process list can be unreadable in restricted environments.
func DisplayServer() string {
	processes, err := ps.Processes()
	if err != nil {
		return ""
	}

	for _, p := range processes {
		name := strings.ToLower(p.Executable())
		for _, known := range displayServerNames {
			if strings.Contains(name, known) {
				return p.Executable()
			}
		}
	}

	return ""
}
