package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/selsearch/internal/domain/build"
)

// RenderVersion renders build info as aligned key/value lines.
func (t *Theme) RenderVersion(info build.Info) string {
	rows := [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Repo", build.RepoURL()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", t.Subtle.Width(8).Render(row[0]), t.Highlight.Render(row[1])))
	}
	return strings.Join(lines, "\n")
}
