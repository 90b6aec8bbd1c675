package shape

import (
	"math"

	"github.com/veilar-ui/veilar/pkg/graphics"
)

// SquircleRatio is the cubic Bezier handle ratio that approximates a quarter
// circle. Squircle corners place both handles at radius*SquircleRatio from
// the outer corner, which flattens the curve toward a superellipse.
const SquircleRatio = 0.5522847498

func roundRectPath(b graphics.Rect, r float64) *graphics.Path {
	p := graphics.NewPath()
	if r <= 0 {
		p.MoveTo(b.Left, b.Top)
		p.LineTo(b.Right, b.Top)
		p.LineTo(b.Right, b.Bottom)
		p.LineTo(b.Left, b.Bottom)
		p.Close()
		return p
	}
	k := r * (1 - SquircleRatio)
	p.MoveTo(b.Left+r, b.Top)
	p.LineTo(b.Right-r, b.Top)
	p.CubicTo(b.Right-k, b.Top, b.Right, b.Top+k, b.Right, b.Top+r)
	p.LineTo(b.Right, b.Bottom-r)
	p.CubicTo(b.Right, b.Bottom-k, b.Right-k, b.Bottom, b.Right-r, b.Bottom)
	p.LineTo(b.Left+r, b.Bottom)
	p.CubicTo(b.Left+k, b.Bottom, b.Left, b.Bottom-k, b.Left, b.Bottom-r)
	p.LineTo(b.Left, b.Top+r)
	p.CubicTo(b.Left, b.Top+k, b.Left+k, b.Top, b.Left+r, b.Top)
	p.Close()
	return p
}

func ovalPath(b graphics.Rect) *graphics.Path {
	c := b.Center()
	rx, ry := b.Width()/2, b.Height()/2
	kx, ky := rx*SquircleRatio, ry*SquircleRatio

	p := graphics.NewPath()
	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+ky, c.X+kx, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-kx, c.Y+ry, c.X-rx, c.Y+ky, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-ky, c.X-kx, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+kx, c.Y-ry, c.X+rx, c.Y-ky, c.X+rx, c.Y)
	p.Close()
	return p
}

func cutCornerPath(b graphics.Rect, r float64) *graphics.Path {
	p := graphics.NewPath()
	p.MoveTo(b.Left+r, b.Top)
	p.LineTo(b.Right-r, b.Top)
	p.LineTo(b.Right, b.Top+r)
	p.LineTo(b.Right, b.Bottom-r)
	p.LineTo(b.Right-r, b.Bottom)
	p.LineTo(b.Left+r, b.Bottom)
	p.LineTo(b.Left, b.Bottom-r)
	p.LineTo(b.Left, b.Top+r)
	p.Close()
	return p
}

func squirclePath(b graphics.Rect, r float64) *graphics.Path {
	c := r * SquircleRatio
	p := graphics.NewPath()
	p.MoveTo(b.Left+r, b.Top)
	p.LineTo(b.Right-r, b.Top)
	p.CubicTo(b.Right-c, b.Top, b.Right, b.Top+c, b.Right, b.Top+r)
	p.LineTo(b.Right, b.Bottom-r)
	p.CubicTo(b.Right, b.Bottom-c, b.Right-c, b.Bottom, b.Right-r, b.Bottom)
	p.LineTo(b.Left+r, b.Bottom)
	p.CubicTo(b.Left+c, b.Bottom, b.Left, b.Bottom-c, b.Left, b.Bottom-r)
	p.LineTo(b.Left, b.Top+r)
	p.CubicTo(b.Left, b.Top+c, b.Left+c, b.Top, b.Left+r, b.Top)
	p.Close()
	return p
}

// polygonPath places sides vertices on the ellipse inscribed in b, starting
// at the top and walking clockwise.
func polygonPath(b graphics.Rect, sides int) *graphics.Path {
	c := b.Center()
	rx, ry := b.Width()/2, b.Height()/2
	p := graphics.NewPath()
	for i := 0; i < sides; i++ {
		angle := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		x := c.X + rx*math.Cos(angle)
		y := c.Y + ry*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}
