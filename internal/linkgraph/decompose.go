package linkgraph

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SubdomainOf extracts the subdomain label from a target URL.
// Hosts with more than two dot-separated labels yield the first label;
// shorter hosts yield "www". Malformed URLs and URLs without a host
// yield "unknown" so the row is retained, just uncategorized.
func SubdomainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	labels := strings.Split(u.Hostname(), ".")
	if len(labels) > 2 {
		return labels[0]
	}
	return "www"
}

// RootDomainOf returns the registrable domain (eTLD+1) of the URL's
// host, for display grouping. Falls back to the full host when the
// public suffix list cannot resolve it, and "unknown" when the URL has
// no usable host.
func RootDomainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	host := strings.ToLower(u.Hostname())
	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return root
}

// PathComponentsOf returns the first two path segments of a URL, each
// wrapped as "/segment/". An empty string marks an absent component:
// ("", "") for an empty or unparseable path, (c1, "") when the path has
// a single segment.
func PathComponentsOf(raw string) (string, string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ""
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return "", ""
	}
	parts := strings.Split(path, "/")
	component1 := "/" + parts[0] + "/"
	component2 := ""
	if len(parts) > 1 {
		component2 = "/" + parts[1] + "/"
	}
	return component1, component2
}
