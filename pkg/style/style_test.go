package style

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilar-ui/veilar/pkg/errors"
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/shape"
)

type recordingHandler struct {
	errs []*errors.VeilarError
}

func (h *recordingHandler) HandleError(err *errors.VeilarError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func captureReports(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestParseGradient(t *testing.T) {
	spec, err := ParseGradient("linear|#FF0000:0;#0000FF:1|90|clamp")
	require.NoError(t, err)
	assert.Equal(t, GradientLinear, spec.Kind)
	assert.Equal(t, []Stop{
		{Color: graphics.Color(0xFFFF0000), Position: 0},
		{Color: graphics.Color(0xFF0000FF), Position: 1},
	}, spec.Stops)
	assert.Equal(t, 90.0, spec.Angle)
}

func TestParseGradientRoundTrip(t *testing.T) {
	inputs := []string{
		"linear|#FFFF0000:0;#FF0000FF:1|0|clamp",
		"radial|#80112233:0.25;#FFFFFFFF:0.75;#FF000000:1|0|clamp",
		"sweep|#FF00FF00:1;#FF0000FF:0|45.5|clamp",
	}
	for _, in := range inputs {
		spec, err := ParseGradient(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, spec.String())

		again, err := ParseGradient(spec.String())
		require.NoError(t, err)
		assert.Equal(t, spec.Stops, again.Stops)
	}
}

func TestParseGradientOptionalSegments(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		kind  GradientKind
		angle float64
		stops int
	}{
		{"no angle", "radial|red:0;blue:1", GradientRadial, 0, 2},
		{"empty angle", "linear|red:0;blue:1||mirror", GradientLinear, 0, 2},
		{"unused type params", "sweep:foo:bar|red:0;blue:1", GradientSweep, 0, 2},
		{"trailing separator", "linear|red:0;blue:1;|30", GradientLinear, 30, 2},
		{"case insensitive type", "LINEAR|white:0.5", GradientLinear, 0, 1},
		{"unsorted stops", "linear|red:1;blue:0;green:0.5", GradientLinear, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseGradient(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, spec.Kind)
			assert.Equal(t, tt.angle, spec.Angle)
			assert.Len(t, spec.Stops, tt.stops)
			assert.Equal(t, tt.in, spec.Raw)
		})
	}
}

func TestParseGradientErrors(t *testing.T) {
	inputs := []string{
		"",
		"linear",
		"conic|red:0;blue:1",
		"linear|",
		"linear|red",
		"linear|notacolor:0",
		"linear|red:zero",
		"linear|red:0|sideways",
	}
	for _, in := range inputs {
		_, err := ParseGradient(in)
		var syntax *errors.SyntaxError
		require.Error(t, err, in)
		assert.True(t, stderrors.As(err, &syntax), "%q: %v", in, err)
	}
}

func TestSolidGradient(t *testing.T) {
	spec := SolidGradient(graphics.Color(0xFF336699))
	assert.Equal(t, "linear|#FF336699:0;#FF336699:1|0|clamp", spec.String())
	assert.Equal(t, spec.String(), spec.Raw)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		in      string
		want    Flags
		unknown []string
	}{
		{"", 0, nil},
		{"shrink", FlagShrink, nil},
		{"dim|shrink", FlagDim | FlagShrink, nil},
		{"Glow, VIBE pop", FlagGlow | FlagVibe | FlagPop, nil},
		{"dim dim dim", FlagDim, nil},
		{"shrink|wobble|dim", FlagShrink | FlagDim, []string{"wobble"}},
		{"dimglow", 0, []string{"dimglow"}},
	}
	for _, tt := range tests {
		got, unknown := ParseFlags(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.unknown, unknown, tt.in)
	}
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "shrink dim vibe", (FlagVibe | FlagDim | FlagShrink).String())
	assert.Equal(t, "", Flags(0).String())
	assert.True(t, (FlagDim | FlagGlow).Has(FlagGlow))
	assert.False(t, FlagDim.Has(FlagDim|FlagGlow))
}

func TestParseRadius(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{"12dp", 12},
		{"4.5dip", 4.5},
		{" 0 ", 0},
	}
	for _, tt := range tests {
		got, err := ParseRadius(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, in := range []string{"dp", "1.2.3", "."} {
		_, err := ParseRadius(in)
		assert.Error(t, err, in)
	}
}

func TestParseShapeBundle(t *testing.T) {
	kind, param, err := ParseShapeBundle("5:6")
	require.NoError(t, err)
	assert.Equal(t, shape.KindPolygon, kind)
	assert.Equal(t, 6, param)

	kind, _, err = ParseShapeBundle(" 4 : 0 ")
	require.NoError(t, err)
	assert.Equal(t, shape.KindSquircle, kind)

	for _, in := range []string{"4", "x:1", "1:y", "6:0", "-1:0"} {
		_, _, err := ParseShapeBundle(in)
		assert.Error(t, err, in)
	}
}

func TestParseDefaults(t *testing.T) {
	d, err := Parse(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, shape.KindRoundRect, d.Shape)
	assert.Zero(t, d.Radius)
	assert.Zero(t, d.Flags)
	assert.Nil(t, d.Background())
	assert.False(t, d.HasBackground())
}

func TestParseAppliesDensity(t *testing.T) {
	d, err := Parse(Attributes{AttrRadius: "10dp"}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d.Radius)

	d, err = Parse(Attributes{AttrRadius: "10dp"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, d.Radius, "non-positive density falls back to 1")
}

func TestParseDefaultRadiusWithBackgroundGradient(t *testing.T) {
	d, err := Parse(Attributes{AttrBackgroundGradient: "linear|red:0;blue:1"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 24.0, d.Radius)

	d, err = Parse(Attributes{AttrBackgroundShade: "red"}, 3)
	require.NoError(t, err)
	assert.Zero(t, d.Radius, "a flat shade keeps square corners")
}

func TestParseFullDescriptor(t *testing.T) {
	d, err := Parse(Attributes{
		AttrShapeBundle:        "5:6",
		AttrRadius:             "4",
		AttrGradient:           "sweep|#FFFFFF:0;#000000:1",
		AttrBackgroundGradient: "radial|red:0;blue:1",
		AttrBackgroundShade:    "#123456",
		AttrInteractionBundle:  "shrink|dim|vibe|sparkle",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, shape.KindPolygon, d.Shape)
	assert.Equal(t, 6, d.ShapeParam)
	assert.Equal(t, 4.0, d.Radius)
	assert.Equal(t, FlagShrink|FlagDim|FlagVibe, d.Flags)
	assert.Equal(t, []string{"sparkle"}, d.UnknownFlags)
	require.NotNil(t, d.TextGradient)
	assert.Equal(t, GradientSweep, d.TextGradient.Kind)
	assert.Same(t, d.BackgroundGradient, d.Background(), "gradient wins over shade")
	assert.True(t, d.HasShade)
}

func TestParseShadeBecomesSolidGradient(t *testing.T) {
	d, err := Parse(Attributes{AttrBackgroundShade: "#80FF0000"}, 1)
	require.NoError(t, err)
	bg := d.Background()
	require.NotNil(t, bg)
	assert.Equal(t, "linear|#80FF0000:0;#80FF0000:1|0|clamp", bg.String())
}

func TestParseReportsMalformedGradients(t *testing.T) {
	h := captureReports(t)

	d, err := Parse(Attributes{
		AttrGradient:           "linear|nope",
		AttrBackgroundGradient: "spiral|red:0",
		AttrBackgroundShade:    "#GG0000",
	}, 1)
	require.NoError(t, err, "render-time attributes never fail construction")
	assert.Nil(t, d.TextGradient)
	assert.Nil(t, d.BackgroundGradient)
	assert.False(t, d.HasShade)

	require.Len(t, h.errs, 3)
	for _, e := range h.errs {
		assert.Equal(t, errors.KindRender, e.Kind)
	}
	assert.Equal(t, AttrGradient, h.errs[0].Attribute)
	assert.Equal(t, AttrBackgroundGradient, h.errs[1].Attribute)
	assert.Equal(t, AttrBackgroundShade, h.errs[2].Attribute)
}

func TestParseFailsOnMalformedNumbers(t *testing.T) {
	tests := []struct {
		attrs Attributes
		attr  string
	}{
		{Attributes{AttrRadius: "dp"}, AttrRadius},
		{Attributes{AttrRadius: "1.2.3"}, AttrRadius},
		{Attributes{AttrShapeBundle: "oval"}, AttrShapeBundle},
		{Attributes{AttrShapeBundle: "9:0"}, AttrShapeBundle},
	}
	for _, tt := range tests {
		_, err := Parse(tt.attrs, 1)
		require.Error(t, err)
		var ve *errors.VeilarError
		require.True(t, stderrors.As(err, &ve))
		assert.Equal(t, errors.KindParsing, ve.Kind)
		assert.Equal(t, tt.attr, ve.Attribute)
	}
}
