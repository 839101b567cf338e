package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/rs/cors"
	nuts "github.com/vaudience/go-nuts"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// RequestID tags the request with a fresh id, exposed on the context and the response
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := nuts.NID("req", 12)
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id set by RequestID, or a new one when absent
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return nuts.NID("req", 12)
}

// Wrap applies the outer middleware stack: CORS, panic recovery and access logging
func Wrap(h http.Handler, cfg config.ServerConfig) http.Handler {
	logged := handlers.CombinedLoggingHandler(os.Stdout, h)
	recovered := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(logged)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(recovered)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	nuts.L.Errorf("[API] Recovered from panic: %s", fmt.Sprint(v...))
}
