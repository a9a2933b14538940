//go:build windows

package console

import (
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

type stdout struct{}

// Stdout returns the mode of the console attached to standard output. The
// handle is looked up on every call.
func Stdout() Mode {
	return stdout{}
}

func (stdout) handle() (windows.Handle, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil || h == windows.InvalidHandle || h == 0 {
		return 0, ErrNoHandle
	}
	if !term.IsTerminal(int(h)) {
		return 0, ErrNotConsole
	}
	return h, nil
}

func (s stdout) GetMode() (uint32, error) {
	h, err := s.handle()
	if err != nil {
		return 0, err
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return 0, fmt.Errorf("GetConsoleMode: %w", err)
	}
	return mode, nil
}

func (s stdout) SetMode(mode uint32) error {
	h, err := s.handle()
	if err != nil {
		return err
	}
	if err := windows.SetConsoleMode(h, mode); err != nil {
		return fmt.Errorf("SetConsoleMode: %w", err)
	}
	return nil
}
