package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"zero", 0.0, "  0%"},
		{"half", 0.5, " 50%"},
		{"full", 1.0, "100%"},
		{"over clamps", 1.5, "100%"},
		{"negative clamps", -0.5, "  0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
		})
	}
}

func TestRenderProgress_BlockCounts(t *testing.T) {
	assert.Contains(t, RenderProgress(0.0, 4), emptyBlock)
	assert.Contains(t, RenderProgress(1.0, 4), filledBlock)
}
