package url

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		encoding  entity.QueryEncoding
		want      string
	}{
		{
			name:      "encodeURIComponent spaces",
			selection: "Breaking Bad",
			encoding:  entity.EncodeURIComponent,
			want:      "Breaking%20Bad",
		},
		{
			name:      "encodeURIComponent reserved characters",
			selection: "a&b=c/d?e#f",
			encoding:  entity.EncodeURIComponent,
			want:      "a%26b%3Dc%2Fd%3Fe%23f",
		},
		{
			name:      "encodeURIComponent keeps unreserved marks",
			selection: "it's (fine)!*~._-",
			encoding:  entity.EncodeURIComponent,
			want:      "it's%20(fine)!*~._-",
		},
		{
			name:      "encodeURIComponent multibyte",
			selection: "café 東京",
			encoding:  entity.EncodeURIComponent,
			want:      "caf%C3%A9%20%E6%9D%B1%E4%BA%AC",
		},
		{
			name:      "plus trims and collapses whitespace",
			selection: "  Breaking   Bad\t",
			encoding:  entity.EncodePlus,
			want:      "Breaking+Bad",
		},
		{
			name:      "dash",
			selection: "Breaking Bad",
			encoding:  entity.EncodeDash,
			want:      "Breaking-Bad",
		},
		{
			name:      "dash on blank selection",
			selection: "   ",
			encoding:  entity.EncodeDash,
			want:      "",
		},
		{
			name:      "none is verbatim",
			selection: " Breaking Bad ",
			encoding:  entity.EncodeNone,
			want:      " Breaking Bad ",
		},
		{
			name:      "unknown encoding falls back to encodeURIComponent",
			selection: "a b",
			encoding:  entity.QueryEncoding("rot13"),
			want:      "a%20b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuery(tt.selection, tt.encoding))
		})
	}
}

// The JavaScript engine's own encodeURIComponent is the reference.
func TestEncodeURIComponent_MatchesJavaScript(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"Breaking Bad",
		"100% pure",
		"a+b c-d",
		"ünïcödé ✓",
		"emoji 🎬 test",
		"quotes \"double\" 'single'",
		"[brackets]{braces}<angles>|pipe\\back^caret`tick",
		"$dollar,comma;semi:colon@at",
		"tab\tnewline\n",
	}

	vm := sobek.New()
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			require.NoError(t, vm.Set("input", in))
			v, err := vm.RunString("encodeURIComponent(input)")
			require.NoError(t, err)
			assert.Equal(t, v.String(), EncodeURIComponent(in))
		})
	}
}

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		template string
		query    string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "https://simkl.com/search?q=%s&type=tv",
			query:    "Breaking%20Bad",
			want:     "https://simkl.com/search?q=Breaking%20Bad&type=tv",
		},
		{
			name:     "only first placeholder is replaced",
			template: "https://example.com/%s/%s",
			query:    "x",
			want:     "https://example.com/x/%s",
		},
		{
			name:     "no placeholder returns template",
			template: "https://example.com/",
			query:    "x",
			want:     "https://example.com/",
		},
		{
			name:     "escaped prefix before placeholder",
			template: "https://chatgpt.com/?q=Summarize:%20%s",
			query:    "hello",
			want:     "https://chatgpt.com/?q=Summarize:%20hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSearchURL(tt.template, tt.query))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "imdb.com", ExtractDomain("https://www.imdb.com/find?q=%s&s=all"))
	assert.Equal(t, "letterboxd.com", ExtractDomain("https://letterboxd.com/search/%s/"))
	assert.Equal(t, "", ExtractDomain(""))
	assert.Equal(t, "", ExtractDomain("not a url"))
}

func TestLooksLikeHTTPURL(t *testing.T) {
	assert.True(t, LooksLikeHTTPURL("https://example.com/search?q=%s"))
	assert.True(t, LooksLikeHTTPURL("http://localhost:8080/?q=%s"))
	assert.False(t, LooksLikeHTTPURL("example.com/search?q=%s"))
	assert.False(t, LooksLikeHTTPURL("ftp://example.com"))
	assert.False(t, LooksLikeHTTPURL(""))
}
