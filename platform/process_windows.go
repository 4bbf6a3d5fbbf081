//go:build windows

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// StartHidden asks the shell to start file with the given parameter string
// and a hidden window. With elevate set the "runas" verb is used, so Windows
// shows the consent prompt and the child runs in a separate elevated context.
//
// params is handed to the child verbatim; no quoting or escaping is applied.
// file is resolved through the search path when it is not absolute.
// The call returns once the shell has accepted the request; the child is
// never waited on.
//
// Returns ErrElevationDeclined if the user rejects the UAC prompt.
func StartHidden(file, params string, elevate bool) error {
	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return fmt.Errorf("invalid file: %w", err)
	}
	paramsPtr, err := windows.UTF16PtrFromString(params)
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	var verb *uint16
	if elevate {
		verb = windows.StringToUTF16Ptr("runas")
	}

	err = windows.ShellExecute(0, verb, filePtr, paramsPtr, nil, windows.SW_HIDE)
	if err != nil {
		if errors.Is(err, windows.ERROR_CANCELLED) {
			return ErrElevationDeclined
		}
		return err
	}
	return nil
}
