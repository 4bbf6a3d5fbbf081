//go:build !windows

package platform

// ShowError is a no-op on non-Windows platforms.
func ShowError(title, message string) {}
