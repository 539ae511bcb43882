package port

// Fields carries structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract the core depends on.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a logger with the fields pre-attached.
	WithFields(fields Fields) LoggerPort
}

type noopLogger struct{}

func (noopLogger) Info(string, Fields)         {}
func (noopLogger) Warn(string, Fields)         {}
func (noopLogger) Error(string, error, Fields) {}
func (noopLogger) Debug(string, Fields)        {}
func (n noopLogger) WithFields(Fields) LoggerPort {
	return n
}

// NewNoopLogger returns a logger that discards everything. Used as the
// fallback when no logger was put into the request context.
func NewNoopLogger() LoggerPort {
	return noopLogger{}
}
