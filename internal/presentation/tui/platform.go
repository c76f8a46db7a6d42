package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OSOpenCmd allows mocking the open command.
var OSOpenCmd = func(path string) *exec.Cmd {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		cmd = "xdg-open"
		args = []string{path}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		cmd = "open"
		args = []string{path}
	default:
		return nil
	}
	return exec.Command(cmd, args...) //nolint:gosec
}

// openFile hands an exported card to the platform's default viewer.
func openFile(path string) error {
	cmd := OSOpenCmd(path)
	if cmd == nil {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
