package surface

import (
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/shape"
)

// Drawable is the composited background of a surface at one instant.
type Drawable struct {
	Outline shape.Outline
	// Fill paints the outline; Fill.Gradient is nil when the style has no
	// gradient or shade.
	Fill    graphics.Paint
	HasFill bool
	// Base paints the host background when there is no fill.
	Base    graphics.Paint
	HasBase bool
	// Clip reports whether content is clipped to the outline.
	Clip bool
	// Ripple is set while a button is pressed.
	Ripple    graphics.Paint
	HasRipple bool
}

// Drawable returns the current background composition.
func (s *Surface) Drawable() Drawable {
	d := Drawable{Outline: s.outline}
	if s.fill != nil {
		d.Fill = graphics.DefaultPaint()
		d.Fill.Gradient = s.fill
		d.HasFill = true
		d.Clip = s.profile.ClipComplexShapes || s.outline.Kind.IsSimple()
	} else if s.opts.Background != nil {
		d.Base = graphics.DefaultPaint()
		d.Base.Color = *s.opts.Background
		d.Base.ColorFilter = s.tint
		d.HasBase = true
	}
	if s.profile.Ripple && s.pressed && d.HasFill {
		d.Ripple = graphics.DefaultPaint()
		d.Ripple.Color = s.profile.RippleColor
		d.HasRipple = true
	}
	return d
}

// TextPaint returns the paint for glyphs: the text shader when one is
// set, otherwise a flat fill of color.
func (s *Surface) TextPaint(color graphics.Color) graphics.Paint {
	p := graphics.DefaultPaint()
	p.Color = color
	p.Gradient = s.textShader
	return p
}

// Paint draws the background, then content, then the ripple, all scaled
// about the center by Scale and clipped to the outline when the drawable
// asks for it. content may be nil.
func (s *Surface) Paint(canvas graphics.Canvas, content func(graphics.Canvas)) {
	if !s.laidOut {
		if content != nil {
			content(canvas)
		}
		return
	}
	d := s.Drawable()
	bounds := graphics.RectFromLTWH(0, 0, s.size.Width, s.size.Height)

	canvas.Save()
	defer canvas.Restore()

	if sc := s.Scale(); sc != 1 {
		c := bounds.Center()
		canvas.Translate(c.X, c.Y)
		canvas.Scale(sc, sc)
		canvas.Translate(-c.X, -c.Y)
	}

	if d.Clip {
		switch d.Outline.Clip {
		case shape.ClipRRect:
			canvas.ClipRRect(d.Outline.RRect)
		default:
			canvas.ClipPath(d.Outline.Path)
		}
	}

	switch {
	case d.HasFill:
		canvas.DrawPath(d.Outline.Path, d.Fill)
	case d.HasBase:
		canvas.DrawRect(bounds, d.Base)
	}

	if content != nil {
		content(canvas)
	}

	if d.HasRipple {
		canvas.DrawPath(d.Outline.Path, d.Ripple)
	}
}
