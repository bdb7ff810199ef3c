// Package viz computes the torus-mesh projection cmd/hashlife-view uses to
// draw a Life universe as a rotating 3D torus instead of a flat grid —
// visually appropriate for the Torus boundary mode, and a reasonable
// default for the others since Life's own canvas wraps for free.
package viz

import "math"

// Mesh holds the parametric torus cmd/hashlife-view projects each live
// cell onto. MajorRadius is the distance from the torus's center to the
// center of its tube; MinorRadius is the tube's own radius.
type Mesh struct {
	MajorRadius float64
	MinorRadius float64
}

// NewMesh returns a Mesh sized so a minorRadius-thick tube comfortably
// encloses a side x side grid of cells.
func NewMesh(side int) Mesh {
	minor := float64(side) / (2 * math.Pi)
	if minor < 1 {
		minor = 1
	}
	return Mesh{MajorRadius: minor * 2.5, MinorRadius: minor}
}

// Point3D is a point in 3D space, rows tall along the tube's circle,
// columns wide around the torus's ring.
type Point3D struct {
	X, Y, Z float64
}

// Surface maps a grid cell (row, col) of a rows x cols canvas onto the
// mesh's torus surface. u runs around the ring (columns), v runs around
// the tube (rows) — the natural parametrization of a torus, and exactly
// the wraparound topology a Torus-mode Life canvas already has.
func (m Mesh) Surface(row, col, rows, cols int64) Point3D {
	u := 2 * math.Pi * float64(col) / float64(cols)
	v := 2 * math.Pi * float64(row) / float64(rows)

	ringRadius := m.MajorRadius + m.MinorRadius*math.Cos(v)
	return Point3D{
		X: ringRadius * math.Cos(u),
		Y: ringRadius * math.Sin(u),
		Z: m.MinorRadius * math.Sin(v),
	}
}

// RotateY rotates p by theta radians around the Y axis, the spin
// cmd/hashlife-view applies once per frame so the torus visibly turns.
func RotateY(p Point3D, theta float64) Point3D {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return Point3D{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// Camera is a fixed-position perspective projector looking down the Z
// axis toward the origin.
type Camera struct {
	Distance   float64
	FocalLen   float64
	ScreenW    int
	ScreenH    int
}

// NewCamera places a camera far enough back to frame a mesh of the given
// major+minor radius within screenW x screenH.
func NewCamera(mesh Mesh, screenW, screenH int) Camera {
	return Camera{
		Distance: (mesh.MajorRadius + mesh.MinorRadius) * 3,
		FocalLen: float64(screenH),
		ScreenW:  screenW,
		ScreenH:  screenH,
	}
}

// Project maps a 3D point to a 2D screen coordinate. visible is false
// when the point lies behind the camera and should not be drawn.
func (c Camera) Project(p Point3D) (x, y int, visible bool) {
	depth := c.Distance - p.Z
	if depth <= 1 {
		return 0, 0, false
	}
	scale := c.FocalLen / depth
	sx := p.X*scale + float64(c.ScreenW)/2
	sy := -p.Y*scale + float64(c.ScreenH)/2
	return int(math.Round(sx)), int(math.Round(sy)), true
}
