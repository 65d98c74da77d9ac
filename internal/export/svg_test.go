package export

import (
	"strings"
	"testing"

	"github.com/san-kum/axesim/internal/geometry"
)

func TestTrajectoryToSVG(t *testing.T) {
	points := []geometry.Vec2{{X: 0, Y: 2}, {X: 4, Y: 2.8}, {X: 8, Y: 1.1}}

	svg := TrajectoryToSVG(points, 800, 400, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `width="800" height="400"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestTrajectoryToSVGTooFewPoints(t *testing.T) {
	if svg := TrajectoryToSVG([]geometry.Vec2{{X: 1, Y: 1}}, 800, 400, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
}

func TestPosesToSVG(t *testing.T) {
	trajectory := []geometry.Vec2{{X: 0, Y: 2}, {X: 4, Y: 2.8}, {X: 8, Y: 1.1}}
	poses := []geometry.Pose{
		geometry.AxePose(trajectory[0], 2, 0.6, 0.1),
		geometry.AxePose(trajectory[2], -5, 0.6, 0.1),
	}

	svg := PosesToSVG(trajectory, poses, 900, 500)

	if got := strings.Count(svg, "<line"); got != 4 {
		t.Errorf("expected 4 line elements (2 poses x handle+blade), got %d", got)
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 COG markers, got %d", got)
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("COG path should be dashed")
	}
}

func TestPosesToSVGYAxisFlipped(t *testing.T) {
	// Higher world y must land at a smaller pixel y.
	lo := geometry.Vec2{X: 0, Y: 0}
	hi := geometry.Vec2{X: 0, Y: 10}
	m := newSVGMapper([]geometry.Vec2{lo, hi}, 100, 100)

	_, yLo := m.to(lo)
	_, yHi := m.to(hi)
	if yHi >= yLo {
		t.Errorf("y axis not flipped: hi=%.1f lo=%.1f", yHi, yLo)
	}
}
