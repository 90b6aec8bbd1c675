package controls

import (
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/style"
	"github.com/veilar-ui/veilar/pkg/surface"
)

// Label is a text control whose glyphs can be filled with a gradient. A
// press shifts the text gradient with the background, and the pop flag
// bounces the label on long press.
type Label struct {
	control
	text   string
	layout *graphics.TextLayout
}

// NewLabel parses attrs and returns a label showing text.
func NewLabel(text string, attrs style.Attributes, opts Options) (*Label, error) {
	c, err := newControl(surface.LabelProfile(), attrs, opts)
	if err != nil {
		return nil, err
	}
	l := &Label{control: c}
	l.SetText(text)
	return l, nil
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text.
func (l *Label) SetText(text string) {
	l.text = text
	l.layout = graphics.LayoutText(text, graphics.TextStyle{Color: l.opts.TextColor})
	if l.opts.OnInvalidate != nil {
		l.opts.OnInvalidate()
	}
}

// IntrinsicSize is the size of the text block.
func (l *Label) IntrinsicSize() graphics.Size {
	return l.layout.Size
}

// Paint draws the label.
func (l *Label) Paint(canvas graphics.Canvas) {
	l.surface.Paint(canvas, func(canvas graphics.Canvas) {
		l.paintText(canvas, l.layout)
	})
}
