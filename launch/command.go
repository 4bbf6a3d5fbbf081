package launch

import (
	"fmt"
	"strings"
)

const (
	// Interpreter is resolved through the search path.
	Interpreter = "powershell.exe"

	// ScriptName is expected next to the launcher executable.
	ScriptName = "Expand-IsoDiskImage.ps1"
)

// BuildCommandLine renders the interpreter parameters:
//
//	-ExecutionPolicy Bypass -NoProfile -WindowStyle Hidden -File "<dir>\Expand-IsoDiskImage.ps1" -ImagePath "<image>" <hideDrive>
//
// The separator before hideDrive is kept even when it is empty.
// imagePath is inserted verbatim: a '"' inside it closes the quoted
// argument early and the remainder is parsed as separate tokens.
func BuildCommandLine(scriptDir, imagePath, hideDrive string) string {
	return fmt.Sprintf(
		`-ExecutionPolicy Bypass -NoProfile -WindowStyle Hidden -File "%s\%s" -ImagePath "%s" %s`,
		scriptDir, ScriptName, imagePath, hideDrive,
	)
}

// ScriptDir returns the directory part of a Windows executable path, with
// the rules .NET Path.GetDirectoryName applies on that OS:
//
//	C:\Tools\expand-iso.exe          -> C:\Tools
//	C:\expand-iso.exe                -> C:\
//	C:expand-iso.exe                 -> C:
//	\\server\share\expand-iso.exe    -> \\server\share
//	expand-iso.exe                   -> ""
//
// A path that is only a root (C:, C:\, \\server\share) has no directory
// and yields "". Forward slashes are accepted and normalized to backslashes.
func ScriptDir(selfPath string) string {
	p := strings.ReplaceAll(selfPath, "/", `\`)

	root := rootLen(p)
	if len(p) <= root {
		return ""
	}

	i := len(p)
	for i > root {
		i--
		if p[i] == '\\' {
			break
		}
	}
	return p[:i]
}

// rootLen returns the length of the root of a backslash-separated path:
// "\\server\share", "C:\", "C:", "\" or nothing.
func rootLen(p string) int {
	if strings.HasPrefix(p, `\\`) {
		n := 2
		for sep := 0; sep < 2 && n < len(p); n++ {
			if p[n] == '\\' {
				sep++
				if sep == 2 {
					return n
				}
			}
		}
		return len(p)
	}
	if len(p) >= 2 && p[1] == ':' {
		if len(p) > 2 && p[2] == '\\' {
			return 3
		}
		return 2
	}
	if strings.HasPrefix(p, `\`) {
		return 1
	}
	return 0
}
