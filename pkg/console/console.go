// Package console reads and updates the output mode of the process console.
package console

import (
	"errors"
	"fmt"
)

// VirtualTerminalProcessing is the console mode bit that makes the console
// interpret ANSI/VT escape sequences instead of printing them.
const VirtualTerminalProcessing uint32 = 0x0004

var (
	ErrUnsupported = errors.New("console modes are not supported on this platform")
	ErrNoHandle    = errors.New("no standard output handle")
	ErrNotConsole  = errors.New("standard output is not a console")
)

// Mode gets and sets a console mode bitmask.
type Mode interface {
	GetMode() (uint32, error)
	SetMode(mode uint32) error
}

// VTEnabled reports whether virtual terminal processing is on.
func VTEnabled(m Mode) (bool, error) {
	mode, err := m.GetMode()
	if err != nil {
		return false, fmt.Errorf("get console mode: %w", err)
	}
	return mode&VirtualTerminalProcessing == VirtualTerminalProcessing, nil
}

// SetVT turns virtual terminal processing on or off, leaving the other mode
// bits untouched.
func SetVT(m Mode, on bool) error {
	mode, err := m.GetMode()
	if err != nil {
		return fmt.Errorf("get console mode: %w", err)
	}
	if on {
		mode |= VirtualTerminalProcessing
	} else {
		mode &^= VirtualTerminalProcessing
	}
	if err := m.SetMode(mode); err != nil {
		return fmt.Errorf("set console mode: %w", err)
	}
	return nil
}
