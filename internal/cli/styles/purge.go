package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// RenderPurgeTargets lists purge targets with their size. Missing targets
// are shown dimmed.
func (t *Theme) RenderPurgeTargets(targets []entity.PurgeTarget) string {
	width := 0
	for _, tg := range targets {
		width = max(width, len([]rune(tg.Description)))
	}

	lines := make([]string, 0, len(targets))
	for _, tg := range targets {
		label := padRight(tg.Description, width)
		if !tg.Exists {
			lines = append(lines, t.Subtle.Render(fmt.Sprintf("  %s  %s (absent)", label, tg.Path)))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s  %s %s",
			t.Normal.Render(label),
			t.Highlight.Render(tg.Path),
			t.Subtle.Render(FormatSize(tg.Size))))
	}
	return strings.Join(lines, "\n")
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
