package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// ThrottlePublic limits requests per client IP on the public surface. This
// is coarse infrastructure protection against scripted floods; the
// per-(origin, email) admission quota in the intake service is the product
// rule and is enforced separately against the datastore.
func ThrottlePublic(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.LimitByIP(requestsPerMinute, time.Minute)
}
