//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// IsElevated checks if the current process is running with administrator privileges.
// A failed token query counts as not elevated.
func IsElevated() bool {
	elevated, _ := IsElevatedErr()
	return elevated
}

// IsElevatedErr reports whether the current process token carries UAC
// elevation. The error is set only when the token cannot be opened; a
// failed TokenElevation query inside x/sys reads as not elevated.
func IsElevatedErr() (bool, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, fmt.Errorf("open process token: %w", err)
	}
	defer token.Close()

	return token.IsElevated(), nil
}
