package cli

import (
	"os/exec"
	"runtime"
)

// openURL hands a URL to the platform's generic opener. No response is
// awaited; a missing mail client fails silently on some platforms and that
// is acceptable for the fire-and-forget contact flow. Tests replace this
// seam.
var openURL = func(raw string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", raw).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", raw).Start()
	default:
		return exec.Command("xdg-open", raw).Start()
	}
}
