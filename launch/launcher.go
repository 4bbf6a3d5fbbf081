package launch

import (
	"github.com/crafted-tech/isolaunch/logging"
	"github.com/crafted-tech/isolaunch/platform"
)

// Spawner starts a child process without waiting for it.
type Spawner interface {
	Start(file, cmdLine string, elevate bool) error
}

// Launcher runs one resolve, build and spawn pass per call to Run.
type Launcher struct {
	mode       Mode
	spawner    Spawner
	elevated   func() (bool, error)
	executable func() (string, error)
	log        *logging.Logger
}

// New creates a Launcher. Without options it runs in ModeStandard, spawns
// through platform.HiddenSpawner and queries the real process token.
func New(opts ...Option) *Launcher {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Launcher{
		mode:       cfg.Mode,
		spawner:    cfg.Spawner,
		elevated:   cfg.Elevated,
		executable: cfg.Executable,
		log:        cfg.Logger,
	}
	if l.spawner == nil {
		l.spawner = platform.HiddenSpawner{}
	}
	if l.elevated == nil {
		l.elevated = platform.IsElevatedErr
	}
	return l
}

// Mode returns the mode the Launcher was created with.
func (l *Launcher) Mode() Mode {
	return l.mode
}

// Run resolves args, builds the PowerShell command line and starts it.
// It returns as soon as the spawn request was accepted; the child's exit
// status is never observed.
//
// Returns ErrMissingImagePath when args has no image path, and the wrapped
// spawner error (e.g. platform.ErrElevationDeclined) when the start fails.
func (l *Launcher) Run(args []string) (Request, error) {
	req, err := ResolveArgs(args, l.mode)
	if err != nil {
		l.log.Error("Resolve arguments: %v", err)
		return req, err
	}

	if l.executable != nil {
		self, err := l.executable()
		switch {
		case err != nil:
			l.log.Warn("Locate executable: %v; using %q", err, req.SelfPath)
		case self != "":
			req.SelfPath = self
		}
	}

	l.log.Info("Mode: %s", l.mode)
	l.log.Info("Image: %s", req.ImagePath)
	if req.HideDrive != "" {
		l.log.Info("Hide drive: %s", req.HideDrive)
	}

	if l.mode == ModeStandard {
		req.Elevate = NeedsElevation(req.HideDrive, l.checkElevated)
		l.log.Info("Request elevation: %t", req.Elevate)
	}

	req.CommandLine = BuildCommandLine(ScriptDir(req.SelfPath), req.ImagePath, req.HideDrive)
	l.log.Info("Command: %s %s", Interpreter, req.CommandLine)

	if err := l.spawner.Start(Interpreter, req.CommandLine, req.Elevate); err != nil {
		l.log.Error("Start failed: %v", err)
		return req, err
	}

	l.log.Info("Started")
	return req, nil
}

func (l *Launcher) checkElevated() (bool, error) {
	admin, err := l.elevated()
	if err != nil {
		l.log.Warn("Privilege query failed, assuming standard user: %v", err)
	}
	return admin, err
}
