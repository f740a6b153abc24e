package logging

// MockLogger records messages for test assertions.
type MockLogger struct {
	DebugMessages []string
	InfoMessages  []string
	WarnMessages  []string
	ErrorMessages []string
}

// NewMockLogger creates an empty recording logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.DebugMessages = append(m.DebugMessages, msg)
}

func (m *MockLogger) Info(msg string, fields ...Field) {
	m.InfoMessages = append(m.InfoMessages, msg)
}

func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.WarnMessages = append(m.WarnMessages, msg)
}

func (m *MockLogger) Error(msg string, fields ...Field) {
	m.ErrorMessages = append(m.ErrorMessages, msg)
}

// WithError returns the same recorder; the error context is not tracked.
func (m *MockLogger) WithError(err error) Logger { return m }

// WithField returns the same recorder; field context is not tracked.
func (m *MockLogger) WithField(key string, value interface{}) Logger { return m }
