// Package launch turns launcher arguments into a hidden PowerShell invocation
// of Expand-IsoDiskImage.ps1.
//
// A run goes through four steps:
//
//   - ResolveArgs interprets the process arguments into a Request
//   - NeedsElevation decides whether the child needs a UAC prompt
//   - BuildCommandLine renders the interpreter parameters
//   - a Spawner starts the child and returns without waiting
//
// Launcher ties the steps together. The process arguments, the executable
// path and the privilege query are all inputs, so the package has no
// dependency on the running process and tests run on any OS.
//
// # Modes
//
// ModeStandard backs expand-iso: the optional second argument is accepted
// when it is a case-insensitive prefix of -HideDrive, and elevation is
// requested only for that switch when the process is not already elevated.
//
// ModeElevated backs expand-iso-runas, the continuation started after
// elevation: it always forwards -HideDrive and never queries privilege.
//
// # Example Usage
//
//	l := launch.New(launch.WithMode(launch.ModeStandard))
//	if _, err := l.Run(os.Args); err != nil {
//	    log.Fatal(err)
//	}
package launch
