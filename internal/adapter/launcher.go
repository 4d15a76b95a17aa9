package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens image URLs in an external viewer
type Launcher struct {
	command string   // configured viewer command, empty for auto-detect
	args    []string // additional arguments for the viewer
	logger  *slog.Logger

	// lookPath and start are swapped out in tests
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// launchPath defines a single way to launch a viewer
type launchPath struct {
	path string // Command path: "feh", "imv", or "open-a:AppName"
}

// viewers registry - platform-specific launch paths per viewer
var viewers = map[string]map[string][]launchPath{
	"feh": {
		"linux": {{path: "feh"}},
	},
	"imv": {
		"linux": {{path: "imv"}},
	},
	"eog": {
		"linux": {{path: "eog"}},
	},
	"preview": {
		"darwin": {{path: "open-a:Preview"}},
	},
}

// candidateViewers defines the preferred viewer order for each platform.
// Most viewers cannot open http URLs, so only the ones that can are listed.
var candidateViewers = map[string][]string{
	"darwin":  {"preview"},
	"linux":   {"feh", "imv"},
	"windows": {},
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Launcher{
		command:  command,
		args:     args,
		logger:   logger,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Launch opens a URL in the configured viewer, a detected viewer, or the
// system default handler, in that order.
func (l *Launcher) Launch(url string) error {
	if url == "" {
		return fmt.Errorf("no image to open")
	}

	// Tier 1: User configured a specific viewer
	if l.command != "" {
		l.logger.Info("launching configured viewer", "command", l.command, "args", l.args, "url", url)
		return l.start(l.command, append(append([]string{}, l.args...), url)...)
	}

	// Tier 2: Try candidate chain
	if _, err := l.detectAndLaunch(url); err == nil {
		return nil
	}

	// Tier 3: Fall back to system default (open/xdg-open/start)
	l.logger.Info("no candidate viewers found, using system default")
	return l.launchDefault(url)
}

// detectAndLaunch tries candidate viewers in order.
// Returns the viewer name that succeeded.
func (l *Launcher) detectAndLaunch(url string) (string, error) {
	candidates, ok := candidateViewers[runtime.GOOS]
	if !ok {
		candidates = candidateViewers["linux"]
	}

	for _, name := range candidates {
		paths, ok := viewers[name][runtime.GOOS]
		if !ok {
			continue
		}

		for _, lp := range paths {
			var err error
			if strings.HasPrefix(lp.path, "open-a:") {
				appName := strings.TrimPrefix(lp.path, "open-a:")
				err = l.start("open", "-a", appName, url)
			} else if _, err = l.lookPath(lp.path); err == nil {
				err = l.start(lp.path, url)
			}

			if err == nil {
				l.logger.Info("launched with detected viewer", "viewer", name, "path", lp.path)
				return name, nil
			}
			l.logger.Debug("launch path not available", "viewer", name, "path", lp.path, "error", err)
		}
	}

	return "", fmt.Errorf("no candidate viewers found")
}

// launchDefault opens the URL using the system default handler
func (l *Launcher) launchDefault(url string) error {
	l.logger.Info("launching with system default", "os", runtime.GOOS, "url", url)

	switch runtime.GOOS {
	case "darwin":
		return l.start("open", url)
	case "windows":
		return l.start("cmd", "/c", "start", "", url)
	default:
		return l.start("xdg-open", url)
	}
}
