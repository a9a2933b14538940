package console

// Memory is a Mode backed by a plain bitmask. GetErr and SetErr, when set,
// are returned instead of touching the bitmask.
type Memory struct {
	Bits   uint32
	GetErr error
	SetErr error

	Gets int
	Sets int
}

func (m *Memory) GetMode() (uint32, error) {
	m.Gets++
	if m.GetErr != nil {
		return 0, m.GetErr
	}
	return m.Bits, nil
}

func (m *Memory) SetMode(mode uint32) error {
	m.Sets++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Bits = mode
	return nil
}

// Calls returns the total number of GetMode and SetMode calls.
func (m *Memory) Calls() int {
	return m.Gets + m.Sets
}
