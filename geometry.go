// geometry.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package desk

import "github.com/deskforms/go-desk/internal/geom"

// Rect is an axis-aligned rectangle in integer pixel coordinates.
type Rect = geom.Rect

// Point is an (X, Y) pixel coordinate.
type Point = geom.Point

// Size is a width/height pair in pixels.
type Size = geom.Size

// Edges is per-side spacing (margin or padding) in pixels.
type Edges = geom.Edges

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}
