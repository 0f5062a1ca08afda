package middleware

import "testing"

func TestParseWildcardOrigin(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantNil bool
		scheme  string
		suffix  string
	}{
		{
			name:    "valid https wildcard",
			pattern: "https://*.example.com",
			wantNil: false,
			scheme:  "https://",
			suffix:  ".example.com",
		},
		{
			name:    "valid http wildcard",
			pattern: "http://*.localhost.dev",
			wantNil: false,
			scheme:  "http://",
			suffix:  ".localhost.dev",
		},
		{
			name:    "valid pages pattern",
			pattern: "https://*.innerlog.pages.dev",
			wantNil: false,
			scheme:  "https://",
			suffix:  ".innerlog.pages.dev",
		},
		{
			name:    "invalid - no scheme",
			pattern: "*.example.com",
			wantNil: true,
		},
		{
			name:    "invalid - bare wildcard",
			pattern: "*",
			wantNil: true,
		},
		{
			name:    "invalid - wildcard at end",
			pattern: "https://example.*",
			wantNil: true,
		},
		{
			name:    "invalid - multiple wildcards",
			pattern: "https://*.*.example.com",
			wantNil: true,
		},
		{
			name:    "invalid - single part domain",
			pattern: "https://*.com",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWildcardOrigin(tt.pattern)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil for %q, got %+v", tt.pattern, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected pattern %q to parse", tt.pattern)
			}
			if got.scheme != tt.scheme {
				t.Errorf("scheme: expected %q, got %q", tt.scheme, got.scheme)
			}
			if got.suffix != tt.suffix {
				t.Errorf("suffix: expected %q, got %q", tt.suffix, got.suffix)
			}
		})
	}
}

func TestWildcardOriginMatches(t *testing.T) {
	w := parseWildcardOrigin("https://*.innerlog.app")
	if w == nil {
		t.Fatal("expected pattern to parse")
	}

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://app.innerlog.app", true},
		{"https://staging.innerlog.app", true},
		{"https://innerlog.app", false},      // no subdomain label
		{"http://app.innerlog.app", false},   // wrong scheme
		{"https://evil.com", false},          // wrong suffix
		{"https://.innerlog.app", false},     // empty label
	}

	for _, tt := range tests {
		if got := w.matches(tt.origin); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
