package geometry

import "math"

// Frame is the local orthonormal basis at orientation theta: the radial
// vector points along the handle toward the head, the tangential vector is
// the radial rotated +90 degrees. Stateless; recompute per displayed sample.
type Frame struct {
	Radial     Vec2
	Tangential Vec2
}

func NewFrame(theta float64) Frame {
	sin, cos := math.Sincos(theta)
	radial := Vec2{cos, sin}
	return Frame{Radial: radial, Tangential: radial.Perp()}
}

// Pose holds the four geometric points of the axe plus its center of
// gravity, all in world coordinates.
type Pose struct {
	COG         Vec2
	Butt        Vec2 // lower handle end, below the COG
	Head        Vec2 // upper handle end, where the blade mounts
	BladeTop    Vec2
	BladeBottom Vec2
}

// AxePose places the axe geometry around cog at orientation theta.
// below is the handle length beneath the COG, above the length from COG to
// head; the blade corners sit at distance above on either side of the head.
func AxePose(cog Vec2, theta, below, above float64) Pose {
	f := NewFrame(theta)
	head := cog.Add(f.Radial.Scale(above))
	return Pose{
		COG:         cog,
		Butt:        cog.Sub(f.Radial.Scale(below)),
		Head:        head,
		BladeTop:    head.Add(f.Tangential.Scale(above)),
		BladeBottom: head.Sub(f.Tangential.Scale(above)),
	}
}
