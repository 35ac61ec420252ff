package utils

import (
	"strings"
	"testing"
)

// TestSanitizeFilename checks the allowed character set and trimming.
func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "Acme Corp"},
		{"  Acme Corp  ", "Acme Corp"},
		{"Acme/Corp\\Inc", "AcmeCorpInc"},
		{"PO-1001_b", "PO-1001_b"},
		{"Vendor, Inc. (US)", "Vendor Inc US"},
		{"../../etc/passwd", "etcpasswd"},
		{"!!!", ""},
		{"", ""},
		{"Ünïcode Véndor", "ncode Vndor"},
	}

	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestSanitizeFilenameCharset: for any input the output holds only
// [A-Za-z0-9 _-] and never has surrounding whitespace.
func TestSanitizeFilenameCharset(t *testing.T) {
	inputs := []string{
		"normal name", "  spaced  ", "tabs\tand\nnewlines", "symbols #$%^&*()",
		"mixed: Acme #1, \"quoted\"", string([]byte{0x00, 0x7f}) + "x",
	}

	for _, in := range inputs {
		got := SanitizeFilename(in)
		if got != strings.TrimSpace(got) {
			t.Errorf("SanitizeFilename(%q) = %q: not trimmed", in, got)
		}
		for _, r := range got {
			ok := r == ' ' || r == '-' || r == '_' ||
				(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			if !ok {
				t.Errorf("SanitizeFilename(%q) = %q: illegal rune %q", in, got, r)
			}
		}
	}
}

// TestSanitizeFilenameOr checks the fallback for fully-stripped inputs.
func TestSanitizeFilenameOr(t *testing.T) {
	if got := SanitizeFilenameOr("###", "Invoice"); got != "Invoice" {
		t.Fatalf("SanitizeFilenameOr(###) = %q, want Invoice", got)
	}
	if got := SanitizeFilenameOr("Acme", "Invoice"); got != "Acme" {
		t.Fatalf("SanitizeFilenameOr(Acme) = %q, want Acme", got)
	}
}

// TestBuildOutputName checks placeholder replacement and the zip extension.
func TestBuildOutputName(t *testing.T) {
	name := BuildOutputName("invoices_{source}_{timestamp}", "/tmp/My Export!.csv")

	if strings.Contains(name, "{") || strings.Contains(name, "}") {
		t.Fatalf("BuildOutputName left placeholders in %q", name)
	}
	if !strings.HasPrefix(name, "invoices_My Export_") {
		t.Fatalf("BuildOutputName = %q, want invoices_My Export_ prefix", name)
	}
	if !strings.HasSuffix(name, ".zip") {
		t.Fatalf("BuildOutputName = %q, want .zip suffix", name)
	}

	// Distinct UUIDs per call.
	a := BuildOutputName("{uuid}.zip", "x.csv")
	b := BuildOutputName("{uuid}.zip", "x.csv")
	if a == b {
		t.Fatalf("BuildOutputName produced identical uuid names %q", a)
	}
}
