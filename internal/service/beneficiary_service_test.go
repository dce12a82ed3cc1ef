package service

import (
	"regexp"
	"testing"
)

func TestGenerateUniqueIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{3}-\d{3}-\d{3}-\d{3}$`)

	for i := 0; i < 1000; i++ {
		id := GenerateUniqueID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected format: %q", id)
		}
		// Twelve digits means no leading-zero truncation.
		if id[0] == '0' {
			t.Fatalf("leading zero in %q", id)
		}
	}
}

func TestGenerateUniqueIDDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateUniqueID()
		if seen[id] {
			t.Fatalf("collision after %d draws: %q", i, id)
		}
		seen[id] = true
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Ram Kumar", "Ram Kumar"},
		{"  Ram Kumar  ", "Ram Kumar"},
		{"Ram   Kumar", "Ram Kumar"},
		{"\tRam\nKumar ", "Ram Kumar"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
