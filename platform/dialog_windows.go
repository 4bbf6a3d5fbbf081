//go:build windows

package platform

import "golang.org/x/sys/windows"

// ShowError displays a modal error message box.
func ShowError(title, message string) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	msgPtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	windows.MessageBox(0, msgPtr, titlePtr, windows.MB_OK|windows.MB_ICONERROR)
}
