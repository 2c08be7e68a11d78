package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/justsurfingit/job-board/internal/apperr"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  *apperr.Error
		want int
	}{
		{apperr.Validation("bad"), http.StatusBadRequest},
		{apperr.Auth("who"), http.StatusUnauthorized},
		{apperr.Forbidden("no"), http.StatusForbidden},
		{apperr.NotFound("gone"), http.StatusNotFound},
		{apperr.Conflict("dup"), http.StatusConflict},
		{apperr.TooManyRequests("slow down"), http.StatusTooManyRequests},
		{apperr.Upstream("upload", errors.New("boom")), http.StatusBadGateway},
		{apperr.Internal("db", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.err.Status(); got != tt.want {
			t.Errorf("%q: status %d, want %d", tt.err.Message, got, tt.want)
		}
	}
}

func TestAs_WrappedError(t *testing.T) {
	err := fmt.Errorf("services/job: %w", apperr.NotFound("Job not found."))

	e := apperr.As(err)
	if e.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", e.Kind)
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatal("Is should see through wrapping")
	}
}

func TestAs_PlainErrorIsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	e := apperr.As(cause)
	if e.Kind != apperr.KindInternal {
		t.Fatalf("expected internal, got %v", e.Kind)
	}
	if !errors.Is(e, cause) {
		t.Fatal("internal error should unwrap to the cause")
	}
}
