package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type MetricsCollector interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}
