package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veilar-ui/veilar/pkg/errors"
	"github.com/veilar-ui/veilar/pkg/graphics"
)

// GradientKind selects the interpolation geometry of a gradient.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientSweep
)

// String returns the grammar keyword for the kind.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	case GradientSweep:
		return "sweep"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// Stop is one color reached exactly at Position along the gradient.
type Stop struct {
	Color    graphics.Color
	Position float64
}

// GradientSpec is the typed form of a gradient string:
//
//	<type>[:<unused>...]|<color>:<stop>;<color>:<stop>...[|<angle>][|<tileMode>]
//
// Stops keep their written order; they are neither sorted nor range checked.
type GradientSpec struct {
	Kind  GradientKind
	Stops []Stop
	// Angle is in degrees and only used by linear gradients.
	Angle float64
	// Raw is the string the spec was parsed from.
	Raw string
}

func gradientSyntax(raw, msg string) error {
	return &errors.SyntaxError{Grammar: "gradient", Input: raw, Msg: msg}
}

// ParseGradient parses a gradient string.
func ParseGradient(raw string) (*GradientSpec, error) {
	segments := strings.Split(strings.TrimSpace(raw), "|")
	if len(segments) < 2 {
		return nil, gradientSyntax(raw, "missing color stops")
	}

	spec := &GradientSpec{Raw: raw}
	kind, _, _ := strings.Cut(segments[0], ":")
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "linear":
		spec.Kind = GradientLinear
	case "radial":
		spec.Kind = GradientRadial
	case "sweep":
		spec.Kind = GradientSweep
	default:
		return nil, gradientSyntax(raw, fmt.Sprintf("unknown gradient type %q", kind))
	}

	for _, entry := range strings.Split(segments[1], ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 2 {
			return nil, gradientSyntax(raw, fmt.Sprintf("stop %q is not <color>:<position>", entry))
		}
		c, err := graphics.ParseColor(parts[0])
		if err != nil {
			return nil, gradientSyntax(raw, err.Error())
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, gradientSyntax(raw, fmt.Sprintf("stop position %q: %v", parts[1], err))
		}
		spec.Stops = append(spec.Stops, Stop{Color: c, Position: pos})
	}
	if len(spec.Stops) == 0 {
		return nil, gradientSyntax(raw, "no color stops")
	}

	if len(segments) > 2 && strings.TrimSpace(segments[2]) != "" {
		angle, err := strconv.ParseFloat(strings.TrimSpace(segments[2]), 64)
		if err != nil {
			return nil, gradientSyntax(raw, fmt.Sprintf("angle %q: %v", segments[2], err))
		}
		spec.Angle = angle
	}
	// The tile mode segment is accepted for compatibility; every gradient clamps.
	return spec, nil
}

// SolidGradient returns the two-stop linear gradient used to paint a flat
// background shade through the same shader path as real gradients.
func SolidGradient(c graphics.Color) *GradientSpec {
	spec := &GradientSpec{
		Kind:  GradientLinear,
		Stops: []Stop{{Color: c, Position: 0}, {Color: c, Position: 1}},
	}
	spec.Raw = spec.String()
	return spec
}

// String encodes the spec back into the gradient grammar.
func (g *GradientSpec) String() string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(g.Kind.String())
	sb.WriteByte('|')
	for i, s := range g.Stops {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(s.Color.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(s.Position, 'g', -1, 64))
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatFloat(g.Angle, 'g', -1, 64))
	sb.WriteString("|clamp")
	return sb.String()
}
