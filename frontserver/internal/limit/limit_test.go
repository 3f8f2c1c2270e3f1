package limit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimit(t *testing.T) {
	var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	h := RateLimit(1)(ok)

	serve := func(remote string) int {
		r := httptest.NewRequest("GET", "/footer", nil)
		r.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	if code := serve("192.0.2.1:4000"); code != http.StatusNoContent {
		t.Fatal("First request was limited:", code)
	}

	if code := serve("192.0.2.1:4001"); code != http.StatusTooManyRequests {
		t.Fatal("Second request was not limited:", code)
	}

	if code := serve("192.0.2.2:4000"); code != http.StatusNoContent {
		t.Fatal("Request from another client was limited:", code)
	}
}
