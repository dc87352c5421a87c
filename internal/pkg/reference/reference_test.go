package reference

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		ref := Generate(rng, now)
		if !IsValid(ref) {
			t.Fatalf("generated malformed reference %q", ref)
		}
		if !strings.HasPrefix(ref, "BU-TXN-2024-") {
			t.Fatalf("reference %q does not carry the year", ref)
		}

		n, err := strconv.Atoi(ref[len("BU-TXN-2024-"):])
		if err != nil {
			t.Fatalf("non-numeric suffix in %q", ref)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("suffix %d out of range [100000, 999999]", n)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"BU-TXN-2024-001234", true},
		{"BU-TXN-2024-123456", true},
		{"BU-TXN-24-123456", false},
		{"BU-TXN-2024-12345", false},
		{"bu-txn-2024-123456", false},
		{"BU-TXN-2024-1234567", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.ref); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestIsValidMatric(t *testing.T) {
	tests := []struct {
		matric string
		want   bool
	}{
		{"BU/22/10234", true},
		{"BU/00/00000", true},
		{"BU/21/0456", false},
		{"BU/2/10234", false},
		{"bu/22/10234", false},
		{"BU-22-10234", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidMatric(tt.matric); got != tt.want {
			t.Errorf("IsValidMatric(%q) = %v, want %v", tt.matric, got, tt.want)
		}
	}
}
