package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSelection_WlPaste(t *testing.T) {
	var gotArgs []string
	a := &Adapter{
		pasteCmd: "/usr/bin/wl-paste",
		run: func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotArgs = append([]string{name}, args...)
			return []byte("  golang generics \n"), nil
		},
	}

	text, err := a.ReadSelection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "golang generics", text)
	assert.Equal(t, []string{"/usr/bin/wl-paste", "--primary", "--no-newline"}, gotArgs)
}

func TestReadSelection_EmptySelectionIsNotAnError(t *testing.T) {
	a := &Adapter{
		pasteCmd: "wl-paste",
		run: func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("exit status 1")
		},
	}

	text, err := a.ReadSelection(context.Background())
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestReadSelection_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		fallback func() (string, error)
		want     string
		wantErr  bool
	}{
		{name: "reads", fallback: func() (string, error) { return "dune\n", nil }, want: "dune"},
		{name: "fails", fallback: func() (string, error) { return "", errors.New("xclip missing") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Adapter{fallback: tt.fallback}
			text, err := a.ReadSelection(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestReadSelection_NoTool(t *testing.T) {
	_, err := (&Adapter{}).ReadSelection(context.Background())
	assert.ErrorIs(t, err, ErrNoSelectionTool)
}
