// Command expand-iso mounts a disk image by starting Expand-IsoDiskImage.ps1
// in a hidden PowerShell window.
//
// Usage:
//
//	expand-iso <imagePath> [-HideDrive]
//
// The switch may be abbreviated to any case-insensitive prefix (-h, -Hide).
// When it is given and the process is not elevated, Windows shows the UAC
// prompt before the script starts.
//
// Build with -ldflags "-H windowsgui" so no console window appears.
package main

import (
	"os"

	"github.com/crafted-tech/isolaunch/internal/cli"
	"github.com/crafted-tech/isolaunch/launch"
	"github.com/crafted-tech/isolaunch/logging"
)

func main() {
	log, _ := logging.New("expand-iso")

	code := cli.Run("expand-iso", launch.ModeStandard, cli.Env{
		Args:   os.Args,
		Stderr: os.Stderr,
		Log:    log,
	})
	log.Close()
	os.Exit(code)
}
