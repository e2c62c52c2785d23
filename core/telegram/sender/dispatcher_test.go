package sender

import (
	"context"
	"net/http"
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"api 5xx", tele.NewError(502, "Bad Gateway"), "http_5xx"},
		{"flood", tele.FloodError{RetryAfter: 8}, "http_4xx"},
		{"group migration", tele.GroupError{MigratedTo: -100123456789}, "http_4xx"},
	}
	for _, tc := range cases {
		if got := classifyError(tc.err); got != tc.want {
			t.Errorf("%s: classifyError = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestHTTPStatusFromGroupError(t *testing.T) {
	err := tele.GroupError{MigratedTo: -100123456789}
	if status := httpStatusFromError(err); status != http.StatusBadRequest {
		t.Fatalf("httpStatusFromError = %d, want %d", status, http.StatusBadRequest)
	}
}
