package cmd

import (
	"os/exec"
)

// Hidden creates an exec.Cmd that does not flash a console window when the
// process runs from the GUI.
func Hidden(name string, args ...string) *exec.Cmd {
	c := exec.Command(name, args...)
	hide(c)
	return c
}
