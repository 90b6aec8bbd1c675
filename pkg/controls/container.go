package controls

import (
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/style"
	"github.com/veilar-ui/veilar/pkg/surface"
)

type child struct {
	painter Painter
	offset  graphics.Offset
}

// Container is a styled box that paints children clipped to its outline.
// The pop flag bounces it on long press.
type Container struct {
	control
	children []child
}

// NewContainer parses attrs and returns an empty container.
func NewContainer(attrs style.Attributes, opts Options) (*Container, error) {
	c, err := newControl(surface.ContainerProfile(), attrs, opts)
	if err != nil {
		return nil, err
	}
	return &Container{control: c}, nil
}

// Add appends a child painted with its origin at offset.
func (c *Container) Add(p Painter, offset graphics.Offset) {
	if p == nil {
		return
	}
	c.children = append(c.children, child{painter: p, offset: offset})
	if c.opts.OnInvalidate != nil {
		c.opts.OnInvalidate()
	}
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// Paint draws the container and then its children in insertion order.
func (c *Container) Paint(canvas graphics.Canvas) {
	c.surface.Paint(canvas, func(canvas graphics.Canvas) {
		for _, ch := range c.children {
			canvas.Save()
			canvas.Translate(ch.offset.X, ch.offset.Y)
			ch.painter.Paint(canvas)
			canvas.Restore()
		}
	})
}
