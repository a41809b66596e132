package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		width  int
		filled int
		total  int
	}{
		{"empty", 0, 4, 0, 4},
		{"half", 0.5, 4, 2, 4},
		{"full", 1, 4, 4, 4},
		{"over clamps", 1.5, 4, 4, 4},
		{"negative clamps", -1, 4, 0, 4},
		{"tiny width clamps to 2", 0.5, 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := stripANSI(RenderBar(tt.pct, tt.width, true))
			assert.Equal(t, tt.filled, strings.Count(bar, filledBlock))
			assert.Equal(t, tt.total, strings.Count(bar, filledBlock)+strings.Count(bar, emptyBlock))
		})
	}
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[██░░]  50%", stripANSI(RenderProgress(0.5, 4)))
}

func TestTimerBar_TracksElapsedTime(t *testing.T) {
	idle := testutil.NewTestTimer("Idle", testutil.WithDuration(10))
	assert.Equal(t, 0, strings.Count(stripANSI(TimerBar(idle, 10)), filledBlock))

	running := testutil.NewTestTimer("Run", testutil.WithDuration(10),
		testutil.WithStatus(domain.TimerRunning), testutil.WithRemaining(3))
	assert.Equal(t, 7, strings.Count(stripANSI(TimerBar(running, 10)), filledBlock))

	done := testutil.NewTestTimer("Done", testutil.WithDuration(10), testutil.WithStatus(domain.TimerCompleted))
	assert.Equal(t, 10, strings.Count(stripANSI(TimerBar(done, 10)), filledBlock))
}
