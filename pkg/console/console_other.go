//go:build !windows

package console

type stdout struct{}

// Stdout returns a Mode whose calls always fail with ErrUnsupported.
func Stdout() Mode {
	return stdout{}
}

func (stdout) GetMode() (uint32, error) {
	return 0, ErrUnsupported
}

func (stdout) SetMode(_ uint32) error {
	return ErrUnsupported
}
