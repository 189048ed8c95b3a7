package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name   string
		frac   float64
		width  int
		filled int
	}{
		{"empty", 0, 4, 0},
		{"half", 0.5, 4, 2},
		{"full", 1, 4, 4},
		{"over full clamps", 1.5, 4, 4},
		{"negative clamps", -0.5, 4, 0},
		{"tiny width clamps to 2", 0.5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.frac, tt.width, true)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderProgress_LabelNotClamped(t *testing.T) {
	got := RenderProgress(133, 6)
	assert.Contains(t, got, "133%")
	assert.Equal(t, 6, strings.Count(got, filledBlock))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "N"}, [][]string{{"x", "5"}, {"longer", "10"}}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], " 5"))
	assert.True(t, strings.HasSuffix(lines[3], "10"))
}
