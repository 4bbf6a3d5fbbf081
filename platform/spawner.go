package platform

import "fmt"

// HiddenSpawner starts child processes with StartHidden.
type HiddenSpawner struct{}

// Start launches file with cmdLine as its parameters and a hidden window,
// requesting elevation when elevate is true. It does not wait for the child.
func (HiddenSpawner) Start(file, cmdLine string, elevate bool) error {
	if err := StartHidden(file, cmdLine, elevate); err != nil {
		return fmt.Errorf("start %s: %w", file, err)
	}
	return nil
}
