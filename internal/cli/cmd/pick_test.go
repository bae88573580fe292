package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/application/port/mocks"
)

func TestReadSelection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		clip     string
		clipErr  error
		want     string
		wantErr  error
		readClip bool
	}{
		{name: "flag text is sent verbatim", text: "  two  words \n", want: "  two  words \n"},
		{name: "clipboard text is sent verbatim", clip: "\tfoo bar ", want: "\tfoo bar ", readClip: true},
		{name: "whitespace only is no selection", text: " \n\t", wantErr: errNoSelection},
		{name: "empty clipboard is no selection", clip: "", wantErr: errNoSelection, readClip: true},
		{name: "clipboard error", clipErr: errors.New("no display"), readClip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mocks.NewMockSelectionReader(t)
			if tt.readClip {
				reader.EXPECT().ReadSelection(mock.Anything).Return(tt.clip, tt.clipErr).Once()
			}

			got, err := readSelection(ctx, tt.text, reader)
			switch {
			case tt.clipErr != nil:
				assert.ErrorIs(t, err, tt.clipErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
