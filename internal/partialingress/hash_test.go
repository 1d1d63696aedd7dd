package partialingress

import "testing"

func TestHash8IsDeterministicAndShort(t *testing.T) {
	a := Hash8("app.example.com", "nginx")
	b := Hash8("app.example.com", "nginx")
	if a != b {
		t.Fatalf("Hash8 is not deterministic: %q != %q", a, b)
	}
	if len(a) != 8 {
		t.Fatalf("expected 8 hex characters, got %d (%q)", len(a), a)
	}
}

func TestHash8VariesByHostnameAndClass(t *testing.T) {
	base := Hash8("app.example.com", "nginx")

	if Hash8("other.example.com", "nginx") == base {
		t.Fatal("expected different hostname to produce a different hash")
	}
	if Hash8("app.example.com", "traefik") == base {
		t.Fatal("expected different class to produce a different hash")
	}
}

func TestMatchesHostPattern(t *testing.T) {
	cases := []struct {
		pattern  string
		hostname string
		want     bool
	}{
		{"*.example.com", "app.example.com", true},
		{"*.example.com", "example.com", false},
		{"app-*.example.com", "app-staging.example.com", true},
		{"app-*.example.com", "web-staging.example.com", false},
		{"app.example.com", "app.example.com", true},
		{"app.example.com", "app.example.org", false},
		{"[", "anything", false},
	}

	for _, tc := range cases {
		got := MatchesHostPattern(tc.pattern, tc.hostname)
		if got != tc.want {
			t.Errorf("MatchesHostPattern(%q, %q) = %v, want %v", tc.pattern, tc.hostname, got, tc.want)
		}
	}
}
