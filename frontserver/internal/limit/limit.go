// Package limit rate limits requests per client IP.
package limit

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/errors"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/replicante-io/docsite/frontserver/httperr"
	"github.com/replicante-io/docsite/frontserver/internal/middleware"
)

// RateLimit allows n requests per second from each client.
func RateLimit(n float64) middleware.F {
	l := tollbooth.NewLimiter(n, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Hour,
	})
	l.SetIPLookups([]string{"X-Forwarded-For", "RemoteAddr", "X-Real-IP"})

	return middleware.P(func(w http.ResponseWriter, r *http.Request) bool {
		if err := tollbooth.LimitByRequest(l, w, r); err != nil {
			httperr.WriteErr(w, rateErr{err})
			return false
		}
		return true
	})
}

type rateErr struct {
	*errors.HTTPError
}

func (r rateErr) StatusCode() int {
	return r.HTTPError.StatusCode
}
