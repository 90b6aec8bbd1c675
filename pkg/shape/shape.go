// Package shape builds the closed outlines used to fill and clip styled
// controls.
//
// Every builder is a pure function of (kind, parameter, radius, width,
// height): the same inputs always produce the same path. Outlines are
// rebuilt whenever a control changes size and are never cached across sizes.
package shape

import (
	"fmt"
	"math"

	"github.com/veilar-ui/veilar/pkg/graphics"
)

// Kind selects one of the supported outline families. The numeric values
// are the shape ids of the "<id>:<param>" shape bundle.
type Kind int

const (
	// KindRoundRect is a rectangle with uniform corner radius.
	KindRoundRect Kind = iota
	// KindOval is the ellipse inscribed in the bounds.
	KindOval
	// KindCutCorner is an octagon chamfered by the radius at each corner.
	KindCutCorner
	// KindPill is a round rect whose radius is forced to half the short side.
	KindPill
	// KindSquircle is a rounded rect with smoothed cubic corners.
	KindSquircle
	// KindPolygon is a regular polygon inscribed in the bounds.
	KindPolygon
)

// String returns a human-readable representation of the shape kind.
func (k Kind) String() string {
	switch k {
	case KindRoundRect:
		return "round_rect"
	case KindOval:
		return "oval"
	case KindCutCorner:
		return "cut_corner"
	case KindPill:
		return "pill"
	case KindSquircle:
		return "squircle"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromID maps a shape bundle id to a Kind.
func KindFromID(id int) (Kind, bool) {
	if id < int(KindRoundRect) || id > int(KindPolygon) {
		return KindRoundRect, false
	}
	return Kind(id), true
}

// IsSimple reports whether the platform can clip to this outline natively
// (ovals and round rects).
func (k Kind) IsSimple() bool {
	return k == KindRoundRect || k == KindOval || k == KindPill
}

// ClipKind describes the cheapest primitive that reproduces an outline.
type ClipKind int

const (
	// ClipPath clips to the outline path itself.
	ClipPath ClipKind = iota
	// ClipOval clips to the ellipse inscribed in Bounds.
	ClipOval
	// ClipRRect clips to Outline.RRect.
	ClipRRect
)

// Outline is a closed 2-D shape derived from a kind and a size.
type Outline struct {
	Kind   Kind
	Path   *graphics.Path
	Bounds graphics.Rect
	// Radius is the effective corner radius after clamping.
	Radius float64
	Clip   ClipKind
	// RRect is set when Clip is ClipRRect.
	RRect graphics.RRect
	// Degenerate is set when the requested shape could not be built (a
	// polygon with fewer than three sides); Path then holds the bounding oval.
	Degenerate bool
}

// Build returns the outline of the given kind for a width x height box with
// its top-left corner at the origin. Width and height must be positive.
//
// radius is the configured corner radius in pixels; it is used by
// round-rect, cut-corner and squircle. param is the side count for
// polygons and is ignored otherwise.
func Build(kind Kind, param int, radius, width, height float64) Outline {
	bounds := graphics.RectFromLTWH(0, 0, width, height)
	maxRadius := math.Min(width, height) / 2
	o := Outline{Kind: kind, Bounds: bounds}

	switch kind {
	case KindOval:
		o.Path = ovalPath(bounds)
		o.Clip = ClipOval
	case KindPill:
		o.Radius = maxRadius
		o.Path = roundRectPath(bounds, o.Radius)
		o.Clip = ClipRRect
		o.RRect = graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(o.Radius))
	case KindCutCorner:
		o.Radius = clampRadius(radius, maxRadius)
		o.Path = cutCornerPath(bounds, o.Radius)
	case KindSquircle:
		o.Radius = clampRadius(radius, maxRadius)
		o.Path = squirclePath(bounds, o.Radius)
	case KindPolygon:
		if param < 3 {
			o.Degenerate = true
			o.Path = ovalPath(bounds)
			o.Clip = ClipOval
			break
		}
		o.Path = polygonPath(bounds, param)
	default:
		o.Kind = KindRoundRect
		o.Radius = clampRadius(radius, maxRadius)
		o.Path = roundRectPath(bounds, o.Radius)
		o.Clip = ClipRRect
		o.RRect = graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(o.Radius))
	}
	return o
}

func clampRadius(r, limit float64) float64 {
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return math.Min(r, limit)
}
