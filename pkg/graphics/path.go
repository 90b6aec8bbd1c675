package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// Use with Canvas.DrawPath to fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// IsClosed reports whether the path is a single subpath terminated by Close.
func (p *Path) IsClosed() bool {
	if p.IsEmpty() || len(p.Commands) < 2 || p.Commands[0].Op != PathOpMoveTo {
		return false
	}
	for _, cmd := range p.Commands[1 : len(p.Commands)-1] {
		if cmd.Op == PathOpMoveTo || cmd.Op == PathOpClose {
			return false
		}
	}
	return p.Commands[len(p.Commands)-1].Op == PathOpClose
}

// Bounds returns the bounding box of every point in the path, control
// points included.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			r.Left = math.Min(r.Left, x)
			r.Top = math.Min(r.Top, y)
			r.Right = math.Max(r.Right, x)
			r.Bottom = math.Max(r.Bottom, y)
		}
	}
	return r
}

// Flatten approximates the path as a polygon, subdividing each curve into
// segments straight lines. Only the first subpath is returned.
func (p *Path) Flatten(segments int) []Offset {
	if p.IsEmpty() {
		return nil
	}
	if segments < 1 {
		segments = 1
	}
	var pts []Offset
	var cur Offset
	for i, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			if i > 0 {
				return pts
			}
			cur = Offset{cmd.Args[0], cmd.Args[1]}
			pts = append(pts, cur)
		case PathOpLineTo:
			cur = Offset{cmd.Args[0], cmd.Args[1]}
			pts = append(pts, cur)
		case PathOpQuadTo:
			c := Offset{cmd.Args[0], cmd.Args[1]}
			end := Offset{cmd.Args[2], cmd.Args[3]}
			for s := 1; s <= segments; s++ {
				t := float64(s) / float64(segments)
				u := 1 - t
				pts = append(pts, Offset{
					X: u*u*cur.X + 2*u*t*c.X + t*t*end.X,
					Y: u*u*cur.Y + 2*u*t*c.Y + t*t*end.Y,
				})
			}
			cur = end
		case PathOpCubicTo:
			c1 := Offset{cmd.Args[0], cmd.Args[1]}
			c2 := Offset{cmd.Args[2], cmd.Args[3]}
			end := Offset{cmd.Args[4], cmd.Args[5]}
			for s := 1; s <= segments; s++ {
				t := float64(s) / float64(segments)
				u := 1 - t
				pts = append(pts, Offset{
					X: u*u*u*cur.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*cur.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			cur = end
		case PathOpClose:
			return pts
		}
	}
	return pts
}
