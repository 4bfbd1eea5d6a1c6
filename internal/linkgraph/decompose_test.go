package linkgraph

import "testing"

// TestSubdomainOf verifies host label extraction and the sentinel values
func TestSubdomainOf(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"three labels", "https://shop.example.com/a/b/", "shop"},
		{"four labels", "https://api.eu.example.com/", "api"},
		{"two labels", "https://example.com/page", "www"},
		{"one label", "https://localhost/page", "www"},
		{"no host", "not a url", "unknown"},
		{"empty", "", "unknown"},
		{"relative path only", "/just/a/path", "unknown"},
		{"malformed", "https://exa mple.com/%zz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubdomainOf(tt.url); got != tt.want {
				t.Errorf("SubdomainOf(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

// TestPathComponentsOf verifies the first two path segments are wrapped
// as /segment/ and missing slots come back empty
func TestPathComponentsOf(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		want1 string
		want2 string
	}{
		{"two segments", "https://shop.example.com/a/b/", "/a/", "/b/"},
		{"three segments keeps first two", "https://example.com/x/y/z", "/x/", "/y/"},
		{"one segment", "https://example.com/products/", "/products/", ""},
		{"root path", "https://example.com/", "", ""},
		{"no path", "https://example.com", "", ""},
		{"malformed", "://%zz", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := PathComponentsOf(tt.url)
			if got1 != tt.want1 || got2 != tt.want2 {
				t.Errorf("PathComponentsOf(%q) = (%q, %q), want (%q, %q)",
					tt.url, got1, got2, tt.want1, tt.want2)
			}
		})
	}
}

// TestRootDomainOf verifies registrable-domain extraction with fallback
func TestRootDomainOf(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://shop.example.com/a/", "example.com"},
		{"https://example.com/", "example.com"},
		{"nonsense", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := RootDomainOf(tt.url); got != tt.want {
				t.Errorf("RootDomainOf(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
