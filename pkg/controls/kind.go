package controls

import (
	"fmt"
	"strings"

	"github.com/veilar-ui/veilar/pkg/style"
	"github.com/veilar-ui/veilar/pkg/surface"
)

// Control is implemented by Button, Container and Label.
type Control interface {
	Painter
	Layout(width, height float64)
	HandlePointer(ev PointerEvent)
	LongPress()
	Pressed() bool
	Surface() *surface.Surface
	Descriptor() *style.Descriptor
	Dispose()
}

var (
	_ Control = (*Button)(nil)
	_ Control = (*Container)(nil)
	_ Control = (*Label)(nil)
)

// Kind names a control type in style sheets.
type Kind string

const (
	KindButton    Kind = "button"
	KindContainer Kind = "container"
	KindLabel     Kind = "label"
)

// ParseKind accepts a kind name in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindButton, KindContainer, KindLabel:
		return k, nil
	default:
		return "", fmt.Errorf("unknown control kind %q", s)
	}
}

// New builds a control of the given kind. Containers ignore text.
func New(kind Kind, text string, attrs style.Attributes, opts Options) (Control, error) {
	var (
		c   Control
		err error
	)
	switch kind {
	case KindButton:
		var b *Button
		b, err = NewButton(text, attrs, opts)
		c = b
	case KindContainer:
		var ct *Container
		ct, err = NewContainer(attrs, opts)
		c = ct
	case KindLabel:
		var l *Label
		l, err = NewLabel(text, attrs, opts)
		c = l
	default:
		return nil, fmt.Errorf("unknown control kind %q", string(kind))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
