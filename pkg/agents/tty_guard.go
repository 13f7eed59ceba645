package agents

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// init runs before Bubble Tea acquires the terminal (and before any TUI starts).
//
// In some PTY/TTY capture environments (notably agent runners), Bubble Tea's
// init triggers Lipgloss/Termenv background detection, which can emit OSC/DSR
// control sequences to stdout. Those sequences are harmless in a real terminal
// but corrupt exported HTML/SVG when cv runs in pipe-to-file mode.
//
// We treat export and robot invocations as non-interactive and set CI=1 early.
// Termenv uses CI to disable TTY probing, preventing those sequences from
// being written.
func init() {
	if os.Getenv("CI") != "" {
		return
	}

	if !shouldSuppressTTYQueries(os.Args, os.Getenv("CV_ROBOT") == "1") {
		return
	}

	_ = os.Setenv("CI", "1")
}

func shouldSuppressTTYQueries(args []string, envRobot bool) bool {
	if envRobot {
		return true
	}

	for _, arg := range args {
		if strings.HasPrefix(arg, "-export") || strings.HasPrefix(arg, "--export") {
			return true
		}
		switch arg {
		case "-version", "--version", "-help", "--help":
			return true
		}
	}

	return false
}

// Interactive reports whether stdout is a real terminal. cv refuses to start
// the TUI when it isn't, steering the caller toward -export instead.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
