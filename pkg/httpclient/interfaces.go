package httpclient

// TokenSource returns the current access token. An empty token means the
// caller is not signed in.
type TokenSource interface {
	Token() (string, error)
}

// TokenSourceFunc adapts a function to a TokenSource.
type TokenSourceFunc func() (string, error)

func (f TokenSourceFunc) Token() (string, error) { return f() }

// Logger defines the logging surface the client relies on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}
