package main

import (
	"os"
	"path/filepath"
	"strings"

	"ansiconsole/pkg/console"
	"ansiconsole/pkg/toggler"
)

func programName() string {
	name := filepath.Base(os.Args[0])
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func main() {
	t := &toggler.Toggler{
		Name:   programName(),
		Mode:   console.Stdout(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(t.Run(os.Args[1:]))
}
