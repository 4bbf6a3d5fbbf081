package launch

// NeedsElevation reports whether the child must be started elevated: only
// when a hide-drive token is present and the process is not an administrator.
//
// elevated is only consulted when hideDrive is non-empty. If it fails the
// process is treated as not elevated, so the user gets a consent prompt
// rather than a script that cannot hide the drive.
func NeedsElevation(hideDrive string, elevated func() (bool, error)) bool {
	if hideDrive == "" {
		return false
	}
	if elevated == nil {
		return true
	}
	admin, err := elevated()
	if err != nil {
		return true
	}
	return !admin
}
