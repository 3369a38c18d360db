package calculation

// Logger is the minimal logging surface used by the calculators and the
// engines built on them. The CLI backs it with zerolog.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// OrNop returns l, or a NopLogger when l is nil
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
