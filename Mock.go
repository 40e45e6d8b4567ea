package hashiter

func NewMock[K comparable, V any](h Hash[K, V]) *Mock[K, V] {
	return &Mock[K, V]{
		Hash:               h,
		StubCursorState:    h.CursorState,
		StubSetCursorState: h.SetCursorState,
		StubResetCursor:    h.ResetCursor,
		StubStep:           h.Step,
	}
}

// Mock is a Hash wrapper where each contract method can be stubbed out
// individually, while the rest keeps delegating to the wrapped Hash.
type Mock[K comparable, V any] struct {
	Hash               Hash[K, V]
	StubCursorState    func() any
	StubSetCursorState func(state any)
	StubResetCursor    func()
	StubStep           func() (K, V, bool)
}

// wrapper

func (m *Mock[K, V]) CursorState() any {
	return m.StubCursorState()
}

func (m *Mock[K, V]) SetCursorState(state any) {
	m.StubSetCursorState(state)
}

func (m *Mock[K, V]) ResetCursor() {
	m.StubResetCursor()
}

func (m *Mock[K, V]) Step() (K, V, bool) {
	return m.StubStep()
}

// Reseting stubs

func (m *Mock[K, V]) ResetCursorStateStub() {
	m.StubCursorState = m.Hash.CursorState
}

func (m *Mock[K, V]) ResetSetCursorStateStub() {
	m.StubSetCursorState = m.Hash.SetCursorState
}

func (m *Mock[K, V]) ResetResetCursorStub() {
	m.StubResetCursor = m.Hash.ResetCursor
}

func (m *Mock[K, V]) ResetStepStub() {
	m.StubStep = m.Hash.Step
}
