package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/veilar-ui/veilar/pkg/graphics"
)

// transform maps local coordinates to pixels: x' = sx*x + tx.
type transform struct {
	sx, sy, tx, ty float64
}

var identity = transform{sx: 1, sy: 1}

func (t transform) translate(dx, dy float64) transform {
	t.tx += t.sx * dx
	t.ty += t.sy * dy
	return t
}

func (t transform) scale(sx, sy float64) transform {
	t.sx *= sx
	t.sy *= sy
	return t
}

func (t transform) apply(x, y float64) (float32, float32) {
	return float32(t.sx*x + t.tx), float32(t.sy*y + t.ty)
}

func (t transform) invert(x, y float64) graphics.Offset {
	out := graphics.Offset{X: x - t.tx, Y: y - t.ty}
	if t.sx != 0 {
		out.X /= t.sx
	}
	if t.sy != 0 {
		out.Y /= t.sy
	}
	return out
}

// newSource returns the image sampled for paint. Flat colors without a
// filter become a uniform image.
func newSource(paint graphics.Paint, xf transform, bounds image.Rectangle) image.Image {
	if (paint.Gradient == nil || !paint.Gradient.IsValid()) && paint.ColorFilter == nil {
		return image.NewUniform(paint.Color.NRGBA())
	}
	return &paintSource{paint: paint, xf: xf, bounds: bounds}
}

// paintSource samples a paint at pixel centers in local coordinates.
type paintSource struct {
	paint  graphics.Paint
	xf     transform
	bounds image.Rectangle
}

func (s *paintSource) ColorModel() color.Model { return color.NRGBAModel }

func (s *paintSource) Bounds() image.Rectangle { return s.bounds }

func (s *paintSource) At(x, y int) color.Color {
	c := s.paint.ColorAt(s.xf.invert(float64(x)+0.5, float64(y)+0.5))
	if f := s.paint.ColorFilter; f != nil {
		c = Filter(c, f)
	}
	return c.NRGBA()
}

// Filter applies a blend color filter to c. Src-atop keeps the alpha of c
// and mixes the filter color over it; src-over composites normally.
func Filter(c graphics.Color, f *graphics.ColorFilter) graphics.Color {
	if f == nil || f.Type != graphics.ColorFilterBlend {
		return c
	}
	fa := float64(f.Color.A()) / 255
	ca := float64(c.A()) / 255
	mix := func(fc, cc uint8, cw float64, total float64) uint8 {
		if total == 0 {
			return 0
		}
		return uint8(math.Round((float64(fc)*fa + float64(cc)*cw) / total))
	}
	switch f.BlendMode {
	case graphics.BlendModeSrcATop:
		return graphics.ARGB(c.A(),
			mix(f.Color.R(), c.R(), 1-fa, 1),
			mix(f.Color.G(), c.G(), 1-fa, 1),
			mix(f.Color.B(), c.B(), 1-fa, 1))
	default:
		cw := ca * (1 - fa)
		outA := fa + cw
		return graphics.ARGB(uint8(math.Round(outA*255)),
			mix(f.Color.R(), c.R(), cw, outA),
			mix(f.Color.G(), c.G(), cw, outA),
			mix(f.Color.B(), c.B(), cw, outA))
	}
}
