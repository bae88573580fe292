// Package url formats selected text and builds search URLs from templates.
package url

import (
	"net/url"
	"strings"
)

// ExtractDomain extracts the host of a search template, without "www.".
// Templates are parsed with their placeholder in place, so
// "https://www.imdb.com/find?q=%s" yields "imdb.com".
func ExtractDomain(template string) string {
	if template == "" {
		return ""
	}
	parsed, err := url.Parse(strings.ReplaceAll(template, "%s", ""))
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

// LooksLikeHTTPURL checks that template has an http or https scheme and a host.
func LooksLikeHTTPURL(template string) bool {
	parsed, err := url.Parse(strings.ReplaceAll(template, "%s", ""))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
