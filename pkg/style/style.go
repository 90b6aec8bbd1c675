// Package style decodes the compact string attributes of a styled control
// into a typed Descriptor.
//
// Attributes are parsed once, when a control is constructed. Numeric
// attributes (radius and shape bundle) fail construction when malformed;
// gradients and shades that do not parse are reported to the error handler
// and treated as absent so the control still renders.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veilar-ui/veilar/pkg/errors"
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/shape"
)

// Attribute keys recognized by Parse.
const (
	AttrGradient           = "gradient"
	AttrBackgroundGradient = "bggradient"
	AttrBackgroundShade    = "bgshade"
	AttrRadius             = "radius"
	AttrShapeBundle        = "shapeBundle"
	AttrInteractionBundle  = "interactionBundle"
)

// DefaultRadiusDP is the corner radius, in density-independent pixels, used
// when a background gradient is set but no radius is given.
const DefaultRadiusDP = 8

// Attributes is the raw key/value attribute set of a control.
type Attributes map[string]string

// Lookup returns the trimmed value for key and whether it is present and
// non-empty.
func (a Attributes) Lookup(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Descriptor is the parsed, immutable style of one control.
type Descriptor struct {
	Shape      shape.Kind
	ShapeParam int
	// Radius is the corner radius in pixels, density applied.
	Radius float64

	Flags Flags
	// UnknownFlags lists interaction tokens that were ignored.
	UnknownFlags []string

	// TextGradient is nil when no (valid) text gradient was given.
	TextGradient *GradientSpec
	// BackgroundGradient is nil when no (valid) background gradient was given.
	BackgroundGradient *GradientSpec

	Shade    graphics.Color
	HasShade bool
}

// Background returns the gradient used to fill the control: the background
// gradient when set, otherwise the flat shade as a two-stop gradient, or nil.
func (d *Descriptor) Background() *GradientSpec {
	if d == nil {
		return nil
	}
	if d.BackgroundGradient != nil {
		return d.BackgroundGradient
	}
	if d.HasShade {
		return SolidGradient(d.Shade)
	}
	return nil
}

// HasBackground reports whether the control paints its own fill.
func (d *Descriptor) HasBackground() bool {
	return d != nil && (d.BackgroundGradient != nil || d.HasShade)
}

// Parse decodes attrs. density converts dp to pixels; values <= 0 mean 1.
func Parse(attrs Attributes, density float64) (*Descriptor, error) {
	if density <= 0 {
		density = 1
	}
	d := &Descriptor{Shape: shape.KindRoundRect}

	if raw, ok := attrs.Lookup(AttrShapeBundle); ok {
		kind, param, err := ParseShapeBundle(raw)
		if err != nil {
			return nil, &errors.VeilarError{
				Op:        "style.Parse",
				Kind:      errors.KindParsing,
				Err:       err,
				Attribute: AttrShapeBundle,
				Input:     raw,
			}
		}
		d.Shape, d.ShapeParam = kind, param
	}

	if raw, ok := attrs.Lookup(AttrGradient); ok {
		d.TextGradient = parseOptionalGradient(AttrGradient, raw)
	}
	if raw, ok := attrs.Lookup(AttrBackgroundGradient); ok {
		d.BackgroundGradient = parseOptionalGradient(AttrBackgroundGradient, raw)
	}
	if raw, ok := attrs.Lookup(AttrBackgroundShade); ok {
		c, err := graphics.ParseColor(raw)
		if err != nil {
			errors.ReportAttribute("style.Parse", AttrBackgroundShade, raw, err)
		} else {
			d.Shade, d.HasShade = c, true
		}
	}

	if raw, ok := attrs.Lookup(AttrRadius); ok {
		r, err := ParseRadius(raw)
		if err != nil {
			return nil, &errors.VeilarError{
				Op:        "style.Parse",
				Kind:      errors.KindParsing,
				Err:       err,
				Attribute: AttrRadius,
				Input:     raw,
			}
		}
		d.Radius = r * density
	} else if _, ok := attrs.Lookup(AttrBackgroundGradient); ok {
		d.Radius = DefaultRadiusDP * density
	}

	if raw, ok := attrs.Lookup(AttrInteractionBundle); ok {
		d.Flags, d.UnknownFlags = ParseFlags(raw)
	}
	return d, nil
}

// ParseRadius keeps only the digits and dots of raw ("12dp" -> 12) and
// parses the rest as a float in dp.
func ParseRadius(raw string) (float64, error) {
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, &errors.SyntaxError{Grammar: "radius", Input: raw, Msg: "no digits"}
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, &errors.SyntaxError{Grammar: "radius", Input: raw, Msg: err.Error()}
	}
	return v, nil
}

// ParseShapeBundle parses "<id>:<param>", where id is a shape.Kind id.
func ParseShapeBundle(raw string) (shape.Kind, int, error) {
	idStr, paramStr, ok := strings.Cut(raw, ":")
	if !ok {
		return shape.KindRoundRect, 0, &errors.SyntaxError{Grammar: "shape bundle", Input: raw, Msg: "expected <id>:<param>"}
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return shape.KindRoundRect, 0, &errors.SyntaxError{Grammar: "shape bundle", Input: raw, Msg: "shape id is not an integer"}
	}
	param, err := strconv.Atoi(strings.TrimSpace(paramStr))
	if err != nil {
		return shape.KindRoundRect, 0, &errors.SyntaxError{Grammar: "shape bundle", Input: raw, Msg: "shape parameter is not an integer"}
	}
	kind, ok := shape.KindFromID(id)
	if !ok {
		return shape.KindRoundRect, 0, &errors.SyntaxError{Grammar: "shape bundle", Input: raw, Msg: fmt.Sprintf("unknown shape id %d", id)}
	}
	return kind, param, nil
}

func parseOptionalGradient(attr, raw string) *GradientSpec {
	spec, err := ParseGradient(raw)
	if err != nil {
		errors.ReportAttribute("style.Parse", attr, raw, err)
		return nil
	}
	return spec
}
