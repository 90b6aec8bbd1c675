// Package raster implements graphics.Canvas on an in-memory RGBA image.
//
// Paths are scan converted with golang.org/x/image/vector into coverage
// masks and composited with image/draw. Clips are kept as masks and
// multiplied together, so nested clips intersect. Transforms are limited to
// what graphics.Canvas exposes: translation and axis-aligned scaling.
// Stroke paints are not rasterized.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/veilar-ui/veilar/pkg/graphics"
)

// Canvas rasterizes drawing commands into an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	state state
	stack []state
}

type state struct {
	xf   transform
	clip *image.Alpha
}

// New returns a transparent width x height canvas.
func New(width, height int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		state: state{xf: identity},
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.xf = c.state.xf.translate(dx, dy)
}

func (c *Canvas) Scale(sx, sy float64) {
	c.state.xf = c.state.xf.scale(sx, sy)
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.clipTo(rectPath(rect))
}

func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	c.clipTo(rrectPath(rrect))
}

func (c *Canvas) ClipPath(path *graphics.Path) {
	if path == nil {
		return
	}
	c.clipTo(path)
}

// clipTo intersects the current clip with path. The mask is copied so
// states saved earlier keep their own clip.
func (c *Canvas) clipTo(path *graphics.Path) {
	mask := c.coverage(path)
	if prev := c.state.clip; prev != nil {
		multiply(mask, prev)
	}
	c.state.clip = mask
}

// Clear replaces every pixel with color, ignoring clip and transform.
func (c *Canvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.DrawPath(rectPath(rect), paint)
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() || paint.Style == graphics.PaintStyleStroke {
		return
	}
	c.composite(c.coverage(path), paint)
}

// DrawText draws layout with its top-left corner at position. Glyphs come
// from the layout's bitmap face: the transform moves them but does not
// resize them.
func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset, paint graphics.Paint) {
	if layout == nil || layout.Face == nil {
		return
	}
	mask := image.NewAlpha(c.img.Bounds())
	d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: layout.Face}
	for i, line := range layout.Lines {
		x, y := c.state.xf.apply(position.X, position.Y+layout.Ascent+float64(i)*layout.LineHeight)
		d.Dot = fixed.P(int(math.Round(float64(x))), int(math.Round(float64(y))))
		d.DrawString(line.Text)
	}
	c.composite(mask, paint)
}

func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// composite blends paint through mask onto the image after applying the
// current clip and the paint's alpha.
func (c *Canvas) composite(mask *image.Alpha, paint graphics.Paint) {
	if c.state.clip != nil {
		multiply(mask, c.state.clip)
	}
	if paint.Alpha < 1 {
		scaleAlpha(mask, paint.Alpha)
	}
	b := mask.Bounds()
	draw.DrawMask(c.img, b, newSource(paint, c.state.xf, b), b.Min, mask, b.Min, draw.Over)
}

// coverage scan converts path under the current transform.
func (c *Canvas) coverage(path *graphics.Path) *image.Alpha {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	open := false
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(c.state.xf.apply(a[0], a[1]))
			open = true
		case graphics.PathOpLineTo:
			z.LineTo(c.state.xf.apply(a[0], a[1]))
		case graphics.PathOpQuadTo:
			x1, y1 := c.state.xf.apply(a[0], a[1])
			x2, y2 := c.state.xf.apply(a[2], a[3])
			z.QuadTo(x1, y1, x2, y2)
		case graphics.PathOpCubicTo:
			x1, y1 := c.state.xf.apply(a[0], a[1])
			x2, y2 := c.state.xf.apply(a[2], a[3])
			x3, y3 := c.state.xf.apply(a[4], a[5])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case graphics.PathOpClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

func multiply(dst, src *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8((uint16(dst.Pix[i])*uint16(src.Pix[i]) + 127) / 255)
	}
}

func scaleAlpha(mask *image.Alpha, alpha float64) {
	alpha = math.Max(0, alpha)
	for i, v := range mask.Pix {
		mask.Pix[i] = uint8(math.Round(float64(v) * alpha))
	}
}

func rectPath(r graphics.Rect) *graphics.Path {
	p := graphics.NewPath()
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
	return p
}

// kappa places cubic handles so each corner approximates a quarter ellipse.
const kappa = 0.5522847498

func rrectPath(rr graphics.RRect) *graphics.Path {
	r := rr.Rect
	tl, tr, br, bl := rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft
	p := graphics.NewPath()
	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	p.CubicTo(r.Right-tr.X*(1-kappa), r.Top, r.Right, r.Top+tr.Y*(1-kappa), r.Right, r.Top+tr.Y)
	p.LineTo(r.Right, r.Bottom-br.Y)
	p.CubicTo(r.Right, r.Bottom-br.Y*(1-kappa), r.Right-br.X*(1-kappa), r.Bottom, r.Right-br.X, r.Bottom)
	p.LineTo(r.Left+bl.X, r.Bottom)
	p.CubicTo(r.Left+bl.X*(1-kappa), r.Bottom, r.Left, r.Bottom-bl.Y*(1-kappa), r.Left, r.Bottom-bl.Y)
	p.LineTo(r.Left, r.Top+tl.Y)
	p.CubicTo(r.Left, r.Top+tl.Y*(1-kappa), r.Left+tl.X*(1-kappa), r.Top, r.Left+tl.X, r.Top)
	p.Close()
	return p
}
