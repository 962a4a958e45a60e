package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// execCommand allows mocking in tests.
var execCommand = exec.Command

// Show opens path in the platform image viewer. This stands in for an
// interactive plot window: on darwin and windows the call waits for the
// viewer to close; xdg-open hands off to the desktop opener and may return
// at once, so callers must keep path alive after Show returns.
func Show(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = execCommand("open", "-W", path)
	case "windows":
		cmd = execCommand("cmd", "/c", "start", "/wait", "", path)
	default:
		cmd = execCommand("xdg-open", path)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open viewer for %s: %w", path, err)
	}
	return nil
}
