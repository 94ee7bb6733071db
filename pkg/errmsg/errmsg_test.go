package errmsg

import (
	"errors"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"firebase wrapper", "Firebase: Error (auth/wrong-password).", "Error (wrong-password)."},
		{"bare code", "auth/too-many-requests", "too-many-requests"},
		{"plain", "  product not found ", "product not found"},
		{"mongo prefix", "mongo: no documents in result", "no documents in result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(errors.New(tt.in)); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeNil(t *testing.T) {
	if got := Sanitize(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
