package controls

import (
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/style"
	"github.com/veilar-ui/veilar/pkg/surface"
)

// Button is a tappable control with a centered text label. While pressed
// it draws a ripple masked by its outline, and the shrink flag scales it to
// 0.95.
type Button struct {
	control
	text   string
	layout *graphics.TextLayout
}

// NewButton parses attrs and returns a button showing text. It fails when
// the radius or shape bundle attribute is malformed.
func NewButton(text string, attrs style.Attributes, opts Options) (*Button, error) {
	c, err := newControl(surface.ButtonProfile(), attrs, opts)
	if err != nil {
		return nil, err
	}
	b := &Button{control: c}
	b.SetText(text)
	return b, nil
}

// Text returns the label.
func (b *Button) Text() string { return b.text }

// SetText replaces the label.
func (b *Button) SetText(text string) {
	b.text = text
	b.layout = graphics.LayoutText(text, graphics.TextStyle{Color: b.opts.TextColor})
	if b.opts.OnInvalidate != nil {
		b.opts.OnInvalidate()
	}
}

// Paint draws the button.
func (b *Button) Paint(canvas graphics.Canvas) {
	b.surface.Paint(canvas, func(canvas graphics.Canvas) {
		b.paintText(canvas, b.layout)
	})
}
