package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/api"
	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIdHeader = "X-Request-ID"

// responseRecorder wraps http.ResponseWriter to capture status code
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	if !rr.wroteHeader {
		rr.statusCode = statusCode
		rr.wroteHeader = true
	}
	rr.ResponseWriter.WriteHeader(statusCode)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.wroteHeader = true
	return rr.ResponseWriter.Write(b)
}

func (rr *responseRecorder) Unwrap() http.ResponseWriter {
	return rr.ResponseWriter
}

/*
RequestIdMiddleware gives each request an id, echoed in the X-Request-ID
header, and a zap logger carrying that id, the method and the path.
- Logs when a request is received
- Logs when the response is sent, with the duration and status code

Handlers retrieve the logger with logx.FromContext(r.Context()).
*/
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := uuid.NewString()
		startTime := time.Now()

		logger := logx.FromContext(r.Context()).With(
			zap.String("requestId", requestId),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		logger.Debug("request received")

		w.Header().Set(RequestIdHeader, requestId)
		r = r.WithContext(logx.WithLogger(r.Context(), logger))

		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info("request completed",
			zap.Int("status", recorder.statusCode),
			zap.Duration("duration", time.Since(startTime)),
		)
	})
}

// Recoverer turns a panic inside a request into a 500 answered by the error
// handler. The process keeps serving.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logx.FromContext(r.Context()).Error("panic recovered", zap.Any("panic", rec), zap.Stack("stack"))
			api.ErrorHandler(w, r, fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}
