package testing

import (
	"fmt"
	"math"

	"github.com/veilar-ui/veilar/pkg/graphics"
)

// DisplayOp is a serialized canvas operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: params("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: params("sx", round4(sx), "sy", round4(sy)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: params("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) ClipRRect(rrect graphics.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: params("rect", serializeRect(rrect.Rect), "radius", serializeRadius(rrect)),
	})
}

func (c *serializingCanvas) ClipPath(path *graphics.Path) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipPath",
		Params: serializePath(path),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: params("color", color.String()),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	p := serializePaint(paint)
	p["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: p})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	p := serializePaint(paint)
	for k, v := range serializePath(path) {
		p[k] = v
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: p})
}

func (c *serializingCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset, paint graphics.Paint) {
	p := serializePaint(paint)
	p["x"], p["y"] = round2(position.X), round2(position.Y)
	if layout != nil {
		p["text"] = layout.Text
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawText", Params: p})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays dl and returns its operations.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

func serializePaint(p graphics.Paint) map[string]any {
	m := params("color", p.Color.String())
	if p.Alpha != 1 {
		m["alpha"] = round2(p.Alpha)
	}
	if g := p.Gradient; g != nil {
		m["gradient"] = serializeGradient(g)
	}
	if f := p.ColorFilter; f != nil {
		m["colorFilter"] = params("color", f.Color.String(), "blend", f.BlendMode.String())
	}
	return m
}

func serializeGradient(g *graphics.Gradient) map[string]any {
	stops := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = fmt.Sprintf("%s@%g", s.Color, round4(s.Position))
	}
	m := params("type", g.Type.String(), "stops", stops, "tile", g.TileMode.String())
	switch g.Type {
	case graphics.GradientTypeLinear:
		m["start"] = serializeOffset(g.Linear.Start)
		m["end"] = serializeOffset(g.Linear.End)
	case graphics.GradientTypeRadial:
		m["center"] = serializeOffset(g.Radial.Center)
		m["radius"] = round2(g.Radial.Radius)
	case graphics.GradientTypeSweep:
		m["center"] = serializeOffset(g.Sweep.Center)
	}
	return m
}

// serializePath summarizes a path by its bounds and command count; the
// outline geometry itself is covered by the shape tests.
func serializePath(path *graphics.Path) map[string]any {
	if path == nil {
		return params("commands", 0)
	}
	return params("bounds", serializeRect(path.Bounds()), "commands", len(path.Commands))
}

func serializeRect(r graphics.Rect) map[string]any {
	return params(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeOffset(o graphics.Offset) [2]float64 {
	return [2]float64{round2(o.X), round2(o.Y)}
}

func serializeRadius(rr graphics.RRect) map[string]any {
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return params("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return params(
		"topLeft", params("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", params("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", params("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", params("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// params builds a map from alternating key-value pairs. encoding/json sorts
// the keys, so snapshots are stable.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
