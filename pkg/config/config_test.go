package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilar-ui/veilar/pkg/controls"
	"github.com/veilar-ui/veilar/pkg/errors"
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/shape"
)

type nopHaptics struct{}

func (nopHaptics) KeyboardTap() error { return nil }

const sampleSheet = `
version: 1.2.0
density: 2
controls:
  - name: card
    kind: container
    width: 200
    height: 120
    attributes:
      bgshade: "#FFF5F5F5"
      shapeBundle: "4:0"
      radius: 16dp
    children:
      - name: title
        x: 10
        y: 10
  - name: title
    kind: label
    width: 100
    height: 20
    text: Hello
    textColor: navy
    attributes:
      gradient: "linear|#FFFF0000:0;#FF0000FF:1"
  - name: send
    kind: button
    width: 120
    height: 48
    text: Send
    background: "#FF222222"
    attributes:
      interactionBundle: "shrink|dim"
`

func requireConfigError(t *testing.T, err error) *errors.VeilarError {
	t.Helper()
	require.Error(t, err)
	var ve *errors.VeilarError
	require.True(t, stderrors.As(err, &ve), "%v", err)
	assert.Equal(t, errors.KindConfig, ve.Kind)
	return ve
}

func TestParseSheet(t *testing.T) {
	sheet, err := Parse([]byte(sampleSheet))
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", sheet.Version)
	assert.Equal(t, 2.0, sheet.Density)
	require.Len(t, sheet.Controls, 3)

	title, ok := sheet.Control("title")
	require.True(t, ok)
	assert.Equal(t, "label", title.Kind)
	assert.Equal(t, "Hello", title.Text)

	_, ok = sheet.Control("missing")
	assert.False(t, ok)
}

func TestLoadSheetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSheet), 0o600))

	sheet, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sheet.Controls, 3)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	requireConfigError(t, err)
}

func TestParseRejectsInvalidSheets(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"unknown key", "version: 1.0.0\ncolour: red\ncontrols: [{name: a, kind: button, width: 1, height: 1}]"},
		{"missing version", "controls: [{name: a, kind: button, width: 1, height: 1}]"},
		{"bad version", "version: one\ncontrols: [{name: a, kind: button, width: 1, height: 1}]"},
		{"future major", "version: 2.0.0\ncontrols: [{name: a, kind: button, width: 1, height: 1}]"},
		{"no controls", "version: 1.0.0\ncontrols: []"},
		{"bad kind", "version: 1.0.0\ncontrols: [{name: a, kind: slider, width: 1, height: 1}]"},
		{"bad name", "version: 1.0.0\ncontrols: [{name: Big A, kind: button, width: 1, height: 1}]"},
		{"zero width", "version: 1.0.0\ncontrols: [{name: a, kind: button, width: 0, height: 1}]"},
		{"negative density", "version: 1.0.0\ndensity: -1\ncontrols: [{name: a, kind: button, width: 1, height: 1}]"},
		{"bad color", "version: 1.0.0\ncontrols: [{name: a, kind: button, width: 1, height: 1, background: mauvish}]"},
		{"duplicate names", "version: 1.0.0\ncontrols: [{name: a, kind: button, width: 1, height: 1}, {name: a, kind: label, width: 1, height: 1}]"},
		{"unknown child", "version: 1.0.0\ncontrols: [{name: a, kind: container, width: 1, height: 1, children: [{name: b}]}]"},
		{"self child", "version: 1.0.0\ncontrols: [{name: a, kind: container, width: 1, height: 1, children: [{name: a}]}]"},
		{"mutual children", "version: 1.0.0\ncontrols: [{name: a, kind: container, width: 1, height: 1, children: [{name: b}]}, {name: b, kind: container, width: 1, height: 1, children: [{name: a}]}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			requireConfigError(t, err)
		})
	}
}

const loopSheet = `
version: 1.0.0
controls:
  - name: r
    kind: container
    width: 10
    height: 10
    children: [{name: a}]
  - name: a
    kind: container
    width: 10
    height: 10
    children: [{name: b}]
  - name: b
    kind: container
    width: 10
    height: 10
    children: [{name: a}]
`

func TestParseRejectsContainmentLoop(t *testing.T) {
	_, err := Parse([]byte(loopSheet))
	ve := requireConfigError(t, err)
	assert.Equal(t, "config.Validate", ve.Op)
	assert.Contains(t, ve.Err.Error(), "a -> b -> a")
}

func TestSharedChildIsNotALoop(t *testing.T) {
	sheet, err := Parse([]byte(`
version: 1.0.0
controls:
  - {name: left, kind: container, width: 10, height: 10, children: [{name: dot}]}
  - {name: right, kind: container, width: 10, height: 10, children: [{name: dot}]}
  - {name: dot, kind: label, width: 2, height: 2}
`))
	require.NoError(t, err)
	assert.Nil(t, sheet.containmentCycle())
}

func TestSupportedVersion(t *testing.T) {
	assert.True(t, supportedVersion("1.0.0"))
	assert.True(t, supportedVersion("v1.4.2"))
	assert.True(t, supportedVersion("1.0.0-beta.1"))
	assert.False(t, supportedVersion("0.9.0"))
	assert.False(t, supportedVersion("2.0.0"))
	assert.False(t, supportedVersion("latest"))
}

func TestRegisterTags(t *testing.T) {
	require.NoError(t, registerTags(validator.New(), sheetTags))

	err := registerTags(validator.New(), map[string]validator.Func{"": sheetTags["control_name"]})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register validation")
}

func TestValidationMessageNamesField(t *testing.T) {
	_, err := Parse([]byte("version: 1.0.0\ncontrols: [{name: a, kind: slider, width: 1, height: 1}]"))
	ve := requireConfigError(t, err)
	assert.Contains(t, ve.Err.Error(), "Controls[0].Kind")
	assert.Contains(t, ve.Err.Error(), "slider")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvDensity, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VEILAR_DENSITY=3.5\nVEILAR_LOG_LEVEL=debug\n"), 0o600))

	// godotenv does not override variables that are already set, even if
	// empty, so clear them first.
	require.NoError(t, os.Unsetenv(EnvDensity))
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	env, err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 3.5, env.Density)
	assert.Equal(t, "debug", env.LogLevel)

	sheet := &Sheet{Density: 1}
	env.Apply(sheet)
	assert.Equal(t, 3.5, sheet.Density)
}

func TestLoadEnvRejectsBadDensity(t *testing.T) {
	for _, v := range []string{"dense", "0", "-2"} {
		t.Setenv(EnvDensity, v)
		_, err := LoadEnv()
		requireConfigError(t, err)
	}
}

func TestEnvApplyKeepsSheetDensity(t *testing.T) {
	sheet := &Sheet{Density: 2}
	Env{}.Apply(sheet)
	assert.Equal(t, 2.0, sheet.Density)
}

func TestBuildSheet(t *testing.T) {
	sheet, err := Parse([]byte(sampleSheet))
	require.NoError(t, err)

	instances, err := sheet.Build(controls.Options{Haptics: nopHaptics{}})
	require.NoError(t, err)
	t.Cleanup(func() {
		for _, in := range instances {
			in.Control.Dispose()
		}
	})
	require.Len(t, instances, 3)

	card := instances[0].Control
	assert.Equal(t, graphics.Size{Width: 400, Height: 240}, card.Surface().Size())
	assert.Equal(t, shape.KindSquircle, card.Descriptor().Shape)
	assert.Equal(t, 32.0, card.Descriptor().Radius)
	assert.Equal(t, 1, card.(*controls.Container).Len())

	roots := Roots(instances)
	require.Len(t, roots, 2)
	assert.Equal(t, "card", roots[0].Spec.Name)
	assert.Equal(t, "send", roots[1].Spec.Name)

	var rec graphics.PictureRecorder
	card.Paint(rec.BeginRecording(card.Surface().Size()))
	layouts, paints := rec.EndRecording().Texts()
	require.Len(t, layouts, 1, "the title is painted inside the card")
	assert.NotNil(t, paints[0].Gradient)
}

func TestBuildRejectsChildrenOnNonContainer(t *testing.T) {
	sheet := &Sheet{
		Version: "1.0.0",
		Controls: []ControlSpec{
			{Name: "a", Kind: "button", Width: 1, Height: 1, Children: []Placement{{Name: "b"}}},
			{Name: "b", Kind: "label", Width: 1, Height: 1},
		},
	}
	_, err := sheet.Build(controls.Options{Haptics: nopHaptics{}})
	requireConfigError(t, err)
}

func TestBuildSurfacesStyleErrors(t *testing.T) {
	sheet := &Sheet{
		Version:  "1.0.0",
		Controls: []ControlSpec{{Name: "a", Kind: "button", Width: 1, Height: 1, Attributes: map[string]string{"radius": "dp"}}},
	}
	_, err := sheet.Build(controls.Options{Haptics: nopHaptics{}})
	require.Error(t, err)
	var ve *errors.VeilarError
	require.True(t, stderrors.As(err, &ve))
	assert.Equal(t, errors.KindParsing, ve.Kind)
	assert.Contains(t, err.Error(), `control "a"`)
}
