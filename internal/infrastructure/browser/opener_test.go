package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func TestArgv(t *testing.T) {
	tests := []struct {
		name    string
		command []string
		want    []string
	}{
		{
			name:    "appends url",
			command: []string{"firefox", "--new-tab"},
			want:    []string{"firefox", "--new-tab", "https://x.example/?q=a"},
		},
		{
			name:    "replaces placeholder",
			command: []string{"qutebrowser", "--target", "tab", "open {url}"},
			want:    []string{"qutebrowser", "--target", "tab", "open https://x.example/?q=a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Argv(tt.command, "https://x.example/?q=a"))
		})
	}
}

func TestTabOpener_DefaultBrowser(t *testing.T) {
	var opened []string
	o := &TabOpener{openURL: func(url string) error {
		opened = append(opened, url)
		return nil
	}}

	req := entity.NavigationRequest{URL: "https://x.example/?q=a", Index: 3, OpenerTabID: 1}
	require.NoError(t, o.OpenTab(context.Background(), req))
	assert.Equal(t, []string{"https://x.example/?q=a"}, opened)
}

func TestTabOpener_Command(t *testing.T) {
	var got []string
	o := &TabOpener{
		command: []string{"chromium"},
		run: func(_ context.Context, name string, args ...string) error {
			got = append([]string{name}, args...)
			return nil
		},
	}

	require.NoError(t, o.OpenTab(context.Background(), entity.NavigationRequest{URL: "https://y.example"}))
	assert.Equal(t, []string{"chromium", "https://y.example"}, got)
}

func TestTabOpener_Errors(t *testing.T) {
	o := &TabOpener{openURL: func(string) error { return errors.New("xdg-open missing") }}

	assert.ErrorIs(t, o.OpenTab(context.Background(), entity.NavigationRequest{}), ErrEmptyURL)
	assert.ErrorContains(t, o.OpenTab(context.Background(), entity.NavigationRequest{URL: "https://z.example"}), "xdg-open missing")
}
