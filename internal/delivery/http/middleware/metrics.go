package middleware

import (
	"net/http"
	"strconv"
	"time"

	"yatube/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics records request count and duration per named handler.
func Metrics(name string, provider metrics.Provider, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		status := strconv.Itoa(recorder.status)
		provider.IncrementHTTPRequests(name, status)
		provider.RecordHTTPRequestDuration(name, status, time.Since(start))
	})
}
