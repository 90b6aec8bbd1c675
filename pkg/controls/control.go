// Package controls provides the styled Button, Container and Label.
//
// Each control parses its attributes once at construction and owns one
// surface.Surface that turns them into outlines, shaders and press effects.
// The host drives a control through four hooks:
//
//	b, err := controls.NewButton("Send", attrs, controls.Options{Density: 2.75})
//	b.Layout(w, h)               // on every size change
//	b.HandlePointer(ev)          // down, move, up, cancel
//	b.LongPress()                // when the host detects a long press
//	b.Paint(canvas)              // every frame the control is dirty
//
// All methods must be called from the UI goroutine.
package controls

import (
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/logging"
	"github.com/veilar-ui/veilar/pkg/platform"
	"github.com/veilar-ui/veilar/pkg/style"
	"github.com/veilar-ui/veilar/pkg/surface"
)

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a pointer sample in the control's local coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
}

// Painter draws itself at the canvas origin.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// Options configures a control.
type Options struct {
	// Density converts dp attribute values to pixels. Zero means 1.
	Density float64
	// Haptics receives the long-press pulse. Nil uses platform.Haptics.
	Haptics surface.Haptics
	// Background is the host-provided background color, tinted on press
	// when the style has no gradient or shade.
	Background *graphics.Color
	// TextColor colors button and label text that has no gradient.
	// Zero means black.
	TextColor graphics.Color
	// OnTap is called when a press is released inside the control.
	OnTap func()
	// OnLongPress is called after the long-press effects have run.
	OnLongPress func()
	// OnInvalidate is called whenever the control needs repainting.
	OnInvalidate func()
	// Logger overrides logging.Default.
	Logger *logging.Logger
}

// control holds what Button, Container and Label share.
type control struct {
	surface *surface.Surface
	opts    Options
}

func newControl(profile surface.Profile, attrs style.Attributes, opts Options) (control, error) {
	desc, err := style.Parse(attrs, opts.Density)
	if err != nil {
		return control{}, err
	}
	if opts.Haptics == nil {
		opts.Haptics = platform.Haptics
	}
	if opts.TextColor == 0 {
		opts.TextColor = graphics.ColorBlack
	}
	s := surface.New(profile, desc, surface.Options{
		Background:   opts.Background,
		Haptics:      opts.Haptics,
		OnInvalidate: opts.OnInvalidate,
		Logger:       opts.Logger,
	})
	return control{surface: s, opts: opts}, nil
}

// Layout reports the control's size in pixels.
func (c *control) Layout(width, height float64) {
	c.surface.OnResize(width, height)
}

// Size returns the last laid out size.
func (c *control) Size() graphics.Size {
	return c.surface.Size()
}

// HandlePointer updates the press state. A pointer that moves outside the
// bounds cancels the press; a release inside the bounds is a tap.
func (c *control) HandlePointer(ev PointerEvent) {
	switch ev.Phase {
	case PointerDown:
		c.surface.OnPressChange(true)
	case PointerMove:
		if c.surface.Pressed() && !c.contains(ev.Position) {
			c.surface.OnPressChange(false)
		}
	case PointerUp:
		tapped := c.surface.Pressed() && c.contains(ev.Position)
		c.surface.OnPressChange(false)
		if tapped && c.opts.OnTap != nil {
			c.opts.OnTap()
		}
	case PointerCancel:
		c.surface.OnPressChange(false)
	}
}

// LongPress runs the long-press effects.
func (c *control) LongPress() {
	c.surface.OnLongPress()
	if c.opts.OnLongPress != nil {
		c.opts.OnLongPress()
	}
}

// Pressed reports whether the control is pressed.
func (c *control) Pressed() bool {
	return c.surface.Pressed()
}

// Surface exposes the styled surface for inspection.
func (c *control) Surface() *surface.Surface {
	return c.surface
}

// Descriptor returns the parsed style.
func (c *control) Descriptor() *style.Descriptor {
	return c.surface.Descriptor()
}

// Dispose stops running animations.
func (c *control) Dispose() {
	c.surface.Dispose()
}

func (c *control) contains(p graphics.Offset) bool {
	size := c.surface.Size()
	return p.X >= 0 && p.Y >= 0 && p.X <= size.Width && p.Y <= size.Height
}

// paintText draws layout centered in the control.
func (c *control) paintText(canvas graphics.Canvas, layout *graphics.TextLayout) {
	if layout == nil || layout.Text == "" {
		return
	}
	size := c.surface.Size()
	pos := graphics.Offset{
		X: (size.Width - layout.Size.Width) / 2,
		Y: (size.Height - layout.Size.Height) / 2,
	}
	canvas.DrawText(layout, pos, c.surface.TextPaint(c.opts.TextColor))
}
