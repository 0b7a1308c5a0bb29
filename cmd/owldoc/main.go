// Package main implements the owldoc command line tool. It loads a graph
// snapshot, runs the extraction pipeline, and writes the documentation
// model as JSON.
package main

import (
	"fmt"
	"os"
	"runtime"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "owldoc"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
