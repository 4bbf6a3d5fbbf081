package launch

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// HideDriveSwitch is the script switch that hides the mounted drive.
const HideDriveSwitch = "-HideDrive"

// ErrMissingImagePath is returned when no image path argument was given.
var ErrMissingImagePath = errors.New("missing image path argument")

// Mode selects which launcher behavior a run follows.
type Mode int

const (
	ModeStandard Mode = iota // Optional -HideDrive, elevate on demand
	ModeElevated             // Always -HideDrive, never query privilege
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeElevated:
		return "elevated"
	default:
		return "unknown"
	}
}

// Request is the resolved invocation for a single run.
type Request struct {
	// ImagePath is argument 1, verbatim.
	ImagePath string

	// HideDrive is the switch token forwarded to the script: "" or the
	// argument exactly as the user typed it (ModeElevated: HideDriveSwitch).
	HideDrive string

	// SelfPath is the launcher's own path, used to find the sibling script.
	SelfPath string

	// Elevate reports whether the child is started with the runas verb.
	Elevate bool

	// CommandLine holds the interpreter parameters once built.
	CommandLine string
}

// MatchHideDrive reports whether arg is a non-empty, case-insensitive
// prefix of -HideDrive. "-h", "-Hide" and "-HIDEDRIVE" match;
// "-HideDriveX" and "HideDrive" do not.
func MatchHideDrive(arg string) bool {
	n := len(arg)
	if n == 0 || n > len(HideDriveSwitch) || !utf8.ValidString(arg) {
		return false
	}
	return strings.EqualFold(HideDriveSwitch[:n], arg)
}

// ResolveArgs interprets process arguments into a Request. args[0] is the
// executable path and args[1] the image path.
//
// In ModeStandard the hide-drive token is set only when exactly three
// arguments were given and the third matches MatchHideDrive; any other count
// leaves it empty. In ModeElevated the token is always HideDriveSwitch and
// arguments past the image path are ignored.
func ResolveArgs(args []string, mode Mode) (Request, error) {
	var req Request
	if len(args) > 0 {
		req.SelfPath = args[0]
	}
	if len(args) < 2 {
		return req, ErrMissingImagePath
	}
	req.ImagePath = args[1]

	switch mode {
	case ModeElevated:
		req.HideDrive = HideDriveSwitch
	default:
		if len(args) == 3 && MatchHideDrive(args[2]) {
			req.HideDrive = args[2]
		}
	}
	return req, nil
}
