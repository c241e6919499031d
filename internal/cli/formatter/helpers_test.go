package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDay(t *testing.T) {
	ref := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", ref, "Today"},
		{"earlier same day", ref.Add(-11 * time.Hour), "Today"},
		{"tomorrow", ref.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", ref.AddDate(0, 0, -1), "Yesterday"},
		{"3 days future", ref.AddDate(0, 0, 3), "In 3d"},
		{"3 days past", ref.AddDate(0, 0, -3), "3d ago"},
		{"3 weeks future", ref.AddDate(0, 0, 21), "In 3w"},
		{"3 months future", ref.AddDate(0, 0, 90), "In 3mo"},
		{"2 weeks past", ref.AddDate(0, 0, -14), "2w ago"},
		{"3 months past", ref.AddDate(0, 0, -90), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(tt.input, ref))
		})
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xxx", "y"}}))
	assert.Equal(t, "A    BB\n───  ──\nxxx  y\n", got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
