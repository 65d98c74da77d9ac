// Package export renders finished runs into static figures: SVG pose strips
// and gonum/plot PNG charts.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/axesim/internal/geometry"
)

type svgMapper struct {
	minX, minY, rangeX, rangeY float64
	width, height              int
}

func newSVGMapper(points []geometry.Vec2, width, height int) svgMapper {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1

	return svgMapper{
		minX: minX, minY: minY,
		rangeX: maxX - minX, rangeY: maxY - minY,
		width: width, height: height,
	}
}

// to maps world coordinates to SVG pixel coordinates (y flipped).
func (m svgMapper) to(p geometry.Vec2) (float64, float64) {
	x := (p.X - m.minX) / m.rangeX * float64(m.width)
	y := float64(m.height) - (p.Y-m.minY)/m.rangeY*float64(m.height)
	return x, y
}

// TrajectoryToSVG draws the COG path as a single stroked polyline.
func TrajectoryToSVG(points []geometry.Vec2, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}
	m := newSVGMapper(points, width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x, y := m.to(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// PosesToSVG draws the COG trajectory with the axe geometry overlaid at each
// given pose: handle from butt to head, blade edge across the head, and a dot
// at the COG.
func PosesToSVG(trajectory []geometry.Vec2, poses []geometry.Pose, width, height int) string {
	if len(trajectory) < 2 {
		return ""
	}

	// Bounds must cover the swung geometry, not just the COG path.
	bounds := make([]geometry.Vec2, 0, len(trajectory)+4*len(poses))
	bounds = append(bounds, trajectory...)
	for _, p := range poses {
		bounds = append(bounds, p.Butt, p.Head, p.BladeTop, p.BladeBottom)
	}
	m := newSVGMapper(bounds, width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#555555" stroke-width="1" stroke-dasharray="4 3" d="M`,
		width, height, width, height))

	for i, p := range trajectory {
		x, y := m.to(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	line := func(a, b geometry.Vec2, color string, w float64) {
		x1, y1 := m.to(a)
		x2, y2 := m.to(b)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
`, x1, y1, x2, y2, color, w))
	}

	for _, p := range poses {
		line(p.Butt, p.Head, "#c08040", 2.0)
		line(p.BladeTop, p.BladeBottom, "#9fb4c7", 3.0)
		cx, cy := m.to(p.COG)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.0" fill="#00ff00"/>
`, cx, cy))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
