//go:build !windows

package platform

// IsElevated always reports false on non-Windows platforms.
func IsElevated() bool {
	return false
}

// IsElevatedErr is not supported on non-Windows platforms.
func IsElevatedErr() (bool, error) {
	return false, ErrUnsupported
}
