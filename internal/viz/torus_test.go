package viz

import (
	"math"
	"testing"
)

func TestSurfaceLiesOnExpectedRadius(t *testing.T) {
	mesh := NewMesh(16)
	p := mesh.Surface(0, 0, 16, 16)
	dist := math.Hypot(p.X, p.Y)
	expected := mesh.MajorRadius + mesh.MinorRadius
	if math.Abs(dist-expected) > 1e-9 {
		t.Fatalf("expected row=0 col=0 at ring radius %f, got %f", expected, dist)
	}
}

func TestRotateYPreservesDistanceFromAxis(t *testing.T) {
	p := Point3D{X: 3, Y: 4, Z: 5}
	r := RotateY(p, math.Pi/3)
	before := p.X*p.X + p.Z*p.Z
	after := r.X*r.X + r.Z*r.Z
	if math.Abs(before-after) > 1e-9 {
		t.Fatalf("rotation about Y changed X-Z distance from axis: %f vs %f", before, after)
	}
	if math.Abs(p.Y-r.Y) > 1e-9 {
		t.Fatalf("rotation about Y should not move Y, got %f vs %f", p.Y, r.Y)
	}
}

func TestProjectIsInvisibleBehindCamera(t *testing.T) {
	mesh := NewMesh(16)
	cam := NewCamera(mesh, 640, 480)
	_, _, visible := cam.Project(Point3D{X: 0, Y: 0, Z: cam.Distance + 10})
	if visible {
		t.Fatal("expected a point past the camera to be reported invisible")
	}
}

func TestProjectCentersOriginOnScreenCenter(t *testing.T) {
	cam := Camera{Distance: 100, FocalLen: 480, ScreenW: 640, ScreenH: 480}
	x, y, visible := cam.Project(Point3D{X: 0, Y: 0, Z: 0})
	if !visible {
		t.Fatal("expected the origin to be visible")
	}
	if x != 320 || y != 240 {
		t.Fatalf("expected the origin to project to screen center (320,240), got (%d,%d)", x, y)
	}
}
