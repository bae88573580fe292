package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// confirm asks a yes/no question. assumeYes skips the prompt.
func confirm(label string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// selectEncoding lets the user pick a query encoding.
func selectEncoding(current entity.QueryEncoding) (entity.QueryEncoding, error) {
	encodings := entity.QueryEncodings()
	cursor := 0
	for i, enc := range encodings {
		if enc == current {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Query encoding",
		Items:     encodings,
		CursorPos: cursor,
		Templates: &promptui.SelectTemplates{
			Active:   `› {{ .Label | cyan }} {{ printf "(%s)" . | faint }}`,
			Inactive: `  {{ .Label }} {{ printf "(%s)" . | faint }}`,
			Selected: `{{ "✓" | green }} {{ .Label }}`,
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return encodings[i], nil
}

// parseEncoding accepts an encoding key, case-insensitively.
func parseEncoding(s string) (entity.QueryEncoding, error) {
	for _, enc := range entity.QueryEncodings() {
		if strings.EqualFold(string(enc), s) {
			return enc, nil
		}
	}
	keys := make([]string, 0, len(entity.QueryEncodings()))
	for _, enc := range entity.QueryEncodings() {
		keys = append(keys, string(enc))
	}
	return "", fmt.Errorf("unknown encoding %q (want one of %s)", s, strings.Join(keys, ", "))
}
