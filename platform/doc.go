// Package platform wraps the Windows calls the launchers depend on.
//
// # Features
//
//   - Elevation: query whether the current token is elevated (UAC)
//   - Process: start a hidden child through ShellExecute, optionally with
//     the "runas" verb so Windows shows the consent prompt
//   - Dialogs: report a fatal error in a message box (GUI binaries have no console)
//
// Only Windows is supported at runtime. On other platforms the package still
// builds so the OS-independent packages can be tested, but every call
// returns ErrUnsupported.
//
// # Example Usage
//
//	var s platform.HiddenSpawner
//	err := s.Start("powershell.exe", "-NoProfile -File x.ps1", !platform.IsElevated())
//	if errors.Is(err, platform.ErrElevationDeclined) {
//	    // the user dismissed the UAC prompt
//	}
package platform
