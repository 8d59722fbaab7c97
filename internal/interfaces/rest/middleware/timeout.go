package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest"
)

// Timeout bounds request handling. The request context carries the deadline
// so repository and gateway calls stop with it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	_, body := rest.BuildErrorResponse(application.NewTimeoutError())
	msg, _ := json.Marshal(body)

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(msg))
	}
}
