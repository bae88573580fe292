package url

import (
	"strings"

	"github.com/bnema/selsearch/internal/domain/entity"
)

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way ECMAScript encodeURIComponent
// does: every UTF-8 byte outside A-Z a-z 0-9 - _ . ! ~ * ' ( ) becomes %XX.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// FormatQuery turns the selected text into the query fragment for a search URL.
//
// Examples:
//
//	"Breaking Bad", encodeURIComponent → "Breaking%20Bad"
//	"  a  b ", plus                    → "a+b"
//	"a b", dash                        → "a-b"
//	"a b", none                        → "a b"
//
// Unknown encodings fall back to encodeURIComponent.
func FormatQuery(selection string, encoding entity.QueryEncoding) string {
	switch encoding {
	case entity.EncodePlus:
		return strings.Join(strings.Fields(selection), "+")
	case entity.EncodeDash:
		return strings.Join(strings.Fields(selection), "-")
	case entity.EncodeNone:
		return selection
	default:
		return EncodeURIComponent(selection)
	}
}

// BuildSearchURL replaces the first placeholder of template with query.
// Templates without a placeholder are returned unchanged.
func BuildSearchURL(template, query string) string {
	return strings.Replace(template, entity.QueryPlaceholder, query, 1)
}

// HasPlaceholder reports whether template contains the query placeholder.
func HasPlaceholder(template string) bool {
	return strings.Contains(template, entity.QueryPlaceholder)
}
