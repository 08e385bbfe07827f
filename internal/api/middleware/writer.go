package middleware

import (
	"bytes"
	"net/http"
)

// statusWriter запоминает код ответа
type statusWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sw *statusWriter) WriteHeader(statusCode int) {
	if sw.written {
		return
	}
	sw.statusCode = statusCode
	sw.written = true
	sw.ResponseWriter.WriteHeader(statusCode)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.written {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// captureWriter дополнительно копирует тело ответа
type captureWriter struct {
	*statusWriter
	body bytes.Buffer
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.statusWriter.Write(b)
}
