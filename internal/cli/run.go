// Package cli holds the entry-point logic shared by the launcher commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/crafted-tech/isolaunch/launch"
	"github.com/crafted-tech/isolaunch/logging"
	"github.com/crafted-tech/isolaunch/platform"
)

// Exit codes.
const (
	ExitOK   = 0
	ExitFail = 1
)

// Env carries the process-level dependencies of a run.
type Env struct {
	Args   []string
	Stderr io.Writer
	Log    *logging.Logger

	// Executable resolves the launcher's own path (default: os.Executable).
	// The sibling script is looked up in its directory.
	Executable func() (string, error)

	// ShowError reports a fatal error to the user (default: platform.ShowError).
	ShowError func(title, message string)

	// Options are appended after the mode, logger and executable options.
	Options []launch.Option
}

// Run executes one launch in the given mode and returns the process exit code.
func Run(name string, mode launch.Mode, env Env) int {
	executable := env.Executable
	if executable == nil {
		executable = os.Executable
	}

	opts := append([]launch.Option{
		launch.WithMode(mode),
		launch.WithLogger(env.Log),
		launch.WithExecutable(executable),
	}, env.Options...)

	_, err := launch.New(opts...).Run(env.Args)
	if err == nil {
		return ExitOK
	}

	msg := Describe(name, err)
	if env.Stderr != nil {
		fmt.Fprintf(env.Stderr, "%s: %s\n", name, msg)
	}
	if path := env.Log.Path(); path != "" {
		msg += "\n\nLog file: " + path
	}

	show := env.ShowError
	if show == nil {
		show = platform.ShowError
	}
	show(name, msg)
	return ExitFail
}

// Describe turns a launch error into a user-facing message.
func Describe(name string, err error) string {
	switch {
	case errors.Is(err, launch.ErrMissingImagePath):
		return fmt.Sprintf("no disk image path given\n\nUsage: %s <imagePath> [-HideDrive]", name)
	case errors.Is(err, platform.ErrElevationDeclined):
		return "administrator consent was declined; the drive cannot be hidden"
	default:
		return err.Error()
	}
}
