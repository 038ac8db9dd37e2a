package main

import (
	"log"
	"os/exec"
	"runtime"
)

// showAll opens every artifact with the platform image viewer. Viewer failures
// are reported but never fail the run.
func showAll(paths []string) {
	for _, p := range paths {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", p)
		case "windows":
			cmd = exec.Command("cmd", "/C", "start", "", p)
		default:
			cmd = exec.Command("xdg-open", p)
		}
		if err := cmd.Start(); err != nil {
			log.Printf("could not open %s: %s", p, err)
		}
	}
}
