package launch

import "github.com/crafted-tech/isolaunch/logging"

// Config holds the configuration for creating a new Launcher.
type Config struct {
	Mode       Mode                   // Launcher behavior (default: ModeStandard)
	Spawner    Spawner                // Child process starter (default: platform.HiddenSpawner)
	Elevated   func() (bool, error)   // Privilege query (default: platform.IsElevatedErr)
	Executable func() (string, error) // Own path; nil or failure uses args[0]
	Logger     *logging.Logger        // nil disables logging
}

// Option is a function that configures a Launcher.
type Option func(*Config)

// WithMode sets the launcher mode.
func WithMode(mode Mode) Option {
	return func(c *Config) {
		c.Mode = mode
	}
}

// WithSpawner sets the component that starts the interpreter.
func WithSpawner(s Spawner) Option {
	return func(c *Config) {
		c.Spawner = s
	}
}

// WithPrivilegeCheck sets the function that reports whether the current
// process is elevated. It is only called in ModeStandard with a hide-drive token.
func WithPrivilegeCheck(fn func() (bool, error)) Option {
	return func(c *Config) {
		c.Elevated = fn
	}
}

// WithExecutable sets how the launcher finds its own path, typically
// os.Executable. Without it, or when fn fails, args[0] is used.
func WithExecutable(fn func() (string, error)) Option {
	return func(c *Config) {
		c.Executable = fn
	}
}

// WithLogger sets the run logger.
func WithLogger(log *logging.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}
