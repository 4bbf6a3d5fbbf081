package platform

import "errors"

// ErrElevationDeclined indicates the user rejected the UAC prompt.
var ErrElevationDeclined = errors.New("administrator elevation declined")

// ErrUnsupported is returned by every OS call on platforms other than Windows.
var ErrUnsupported = errors.New("not supported on this platform")
