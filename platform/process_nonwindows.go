//go:build !windows

package platform

// StartHidden is not supported on non-Windows platforms.
// On Windows it starts file through ShellExecute with a hidden window.
func StartHidden(file, params string, elevate bool) error {
	return ErrUnsupported
}
