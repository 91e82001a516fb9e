package middleware

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPObserver получатель HTTP-метрик
type HTTPObserver interface {
	ObserveHTTPRequest(method, path, status string, seconds float64)
}
