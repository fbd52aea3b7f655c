package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindNotFound, http.StatusNotFound},
		{KindUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(E(tc.kind, "boom")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusNilError(t *testing.T) {
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
}

func TestHTTPStatusUntypedError(t *testing.T) {
	if got := HTTPStatus(stderrors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(plain) = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestWrapPreservesCauseChain(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(KindUnavailable, "github fetch failed", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to match errors.Is")
	}
	wrapped := fmt.Errorf("load: %w", err)
	if KindOf(wrapped) != KindUnavailable {
		t.Fatalf("KindOf = %s, want %s", KindOf(wrapped), KindUnavailable)
	}
}

func TestLocalizationKey(t *testing.T) {
	err := EK(KindUnavailable, "error.loading", "github fetch failed")
	if got := LocalizationKey(err); got != "error.loading" {
		t.Fatalf("LocalizationKey = %q, want %q", got, "error.loading")
	}
	if got := LocalizationKey(stderrors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}
