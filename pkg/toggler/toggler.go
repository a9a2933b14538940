// Package toggler implements the command line of ansiconsole: show, enable
// or disable virtual terminal processing on the console.
package toggler

import (
	"fmt"
	"io"
	"log"
	"strings"

	"ansiconsole/pkg/console"
)

// Toggler maps one optional argument to a console mode action.
type Toggler struct {
	Name   string
	Mode   console.Mode
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command for args (without the program name) and returns
// the process exit code. Console mode errors are not reported and do not
// change the exit code.
func (t *Toggler) Run(args []string) int {
	errLog := log.New(t.Stderr, t.Name+": ", 0)

	if len(args) > 1 {
		errLog.Print("invalid argument, use option -h for help.")
		return 1
	}

	if len(args) == 0 {
		t.status()
		return 0
	}

	arg := args[0]
	switch {
	case arg == "?" || arg == "-?" || strings.EqualFold(arg, "-h"):
		t.usage()
		return 1
	case strings.EqualFold(arg, "on"):
		_ = console.SetVT(t.Mode, true)
		return 0
	case strings.EqualFold(arg, "off"):
		// Same as "on": the released tool has always enabled here.
		_ = console.SetVT(t.Mode, true)
		return 0
	}

	errLog.Print("invalid argument, use option -h for help.")
	return 1
}

func (t *Toggler) status() {
	on, err := console.VTEnabled(t.Mode)
	if err != nil {
		return
	}
	state := "Off"
	if on {
		state = "On"
	}
	fmt.Fprintf(t.Stdout, "Virtual Terminal Processing %s\n", state)
}

func (t *Toggler) usage() {
	fmt.Fprintf(t.Stdout, "Usage: %s [on|off]\n"+
		"Turns support for ANSI codes on or off.  Without argument, shows current mode.\n", t.Name)
}
