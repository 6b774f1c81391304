package security

import (
	"regexp"
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: "abc"},
		{name: "single alphabet character", length: 8, alphabet: "X"},
		{name: "reference alphabet", length: 32, alphabet: ReferenceAlphabet},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			value, err := RandomString(tc.length, tc.alphabet)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(value) != tc.length {
				t.Fatalf("expected length %d, got %d", tc.length, len(value))
			}
			for _, char := range value {
				if !strings.ContainsRune(tc.alphabet, char) {
					t.Fatalf("unexpected character %q", char)
				}
			}
		})
	}
}

func TestReferenceCodeShape(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^PEP-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)
	code, err := ReferenceCode("PEP")
	if err != nil {
		t.Fatalf("reference code: %v", err)
	}
	if !pattern.MatchString(code) {
		t.Fatalf("unexpected reference code %q", code)
	}
}

func TestPseudonymizerIsKeyedAndStable(t *testing.T) {
	t.Parallel()

	first := NewPseudonymizer("secret-one")
	second := NewPseudonymizer("secret-two")

	a, err := first.Digest("203.0.113.7")
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	again, _ := first.Digest("203.0.113.7")
	other, _ := second.Digest("203.0.113.7")

	if a != again {
		t.Fatalf("expected stable digest, got %q and %q", a, again)
	}
	if a == other {
		t.Fatal("expected different keys to produce different digests")
	}
	if len(a) != 32 || strings.Contains(a, "203.0.113.7") {
		t.Fatalf("unexpected digest %q", a)
	}
}
