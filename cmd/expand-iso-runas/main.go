// Command expand-iso-runas is the elevated continuation of expand-iso: it
// starts Expand-IsoDiskImage.ps1 in a hidden PowerShell window and always
// passes -HideDrive. It does not check or request elevation itself.
//
// Usage:
//
//	expand-iso-runas <imagePath>
package main

import (
	"os"

	"github.com/crafted-tech/isolaunch/internal/cli"
	"github.com/crafted-tech/isolaunch/launch"
	"github.com/crafted-tech/isolaunch/logging"
)

func main() {
	log, _ := logging.New("expand-iso-runas")

	code := cli.Run("expand-iso-runas", launch.ModeElevated, cli.Env{
		Args:   os.Args,
		Stderr: os.Stderr,
		Log:    log,
	})
	log.Close()
	os.Exit(code)
}
