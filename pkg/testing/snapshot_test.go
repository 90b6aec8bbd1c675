package testing

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/veilar-ui/veilar/pkg/graphics"
)

func paintBox(color graphics.Color, w, h float64) func(graphics.Canvas) {
	return func(c graphics.Canvas) {
		c.Save()
		c.ClipRRect(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, w, h), graphics.CircularRadius(4)))
		p := graphics.DefaultPaint()
		p.Color = color
		c.DrawRect(graphics.RectFromLTWH(0, 0, w, h), p)
		c.Restore()
	}
}

func TestCaptureRecordsOps(t *testing.T) {
	snap := Capture(graphics.Size{Width: 50, Height: 20}, paintBox(graphics.ColorRed, 50, 20))

	want := []string{"save", "clipRRect", "drawRect", "restore"}
	if got := snap.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	if snap.Size != [2]float64{50, 20} {
		t.Errorf("size = %v", snap.Size)
	}
	if got := snap.DisplayOps[2].Params["color"]; got != "#FFFF0000" {
		t.Errorf("drawRect color = %v", got)
	}
}

func TestCaptureSerializesGradientAndFilter(t *testing.T) {
	snap := Capture(graphics.Size{Width: 10, Height: 10}, func(c graphics.Canvas) {
		p := graphics.DefaultPaint()
		p.Gradient = graphics.NewLinearGradient(graphics.Offset{}, graphics.Offset{X: 10}, []graphics.GradientStop{
			{Position: 0, Color: graphics.ColorRed},
			{Position: 1, Color: graphics.ColorBlue},
		})
		p.ColorFilter = graphics.NewTintFilter(graphics.ARGB(60, 0, 0, 0))
		path := graphics.NewPath()
		path.MoveTo(0, 0)
		path.LineTo(10, 0)
		path.LineTo(10, 10)
		path.Close()
		c.DrawPath(path, p)
	})

	op := snap.DisplayOps[0]
	if op.Op != "drawPath" {
		t.Fatalf("op = %s", op.Op)
	}
	g, ok := op.Params["gradient"].(map[string]any)
	if !ok {
		t.Fatalf("gradient missing: %v", op.Params)
	}
	if g["type"] != "linear" {
		t.Errorf("gradient type = %v", g["type"])
	}
	if stops := g["stops"].([]string); len(stops) != 2 || stops[0] != "#FFFF0000@0" {
		t.Errorf("stops = %v", stops)
	}
	if op.Params["commands"] != 4 {
		t.Errorf("commands = %v", op.Params["commands"])
	}
	f := op.Params["colorFilter"].(map[string]any)
	if f["blend"] != "src_atop" {
		t.Errorf("filter blend = %v", f["blend"])
	}
}

func TestSnapshotDiffEqual(t *testing.T) {
	a := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorBlue, 50, 50))
	b := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorBlue, 50, 50))

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshotDiffChanged(t *testing.T) {
	a := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorBlue, 50, 50))
	b := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorGreen, 50, 50))

	diff := a.Diff(b)
	if !strings.Contains(diff, "-") || !strings.Contains(diff, "#FF0000FF") {
		t.Errorf("unexpected diff:\n%s", diff)
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := Capture(graphics.Size{Width: 30, Height: 30}, paintBox(graphics.ColorRed, 30, 30))

	path := filepath.Join(t.TempDir(), "nested", "box.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	sub := &errorRecorder{name: t.Name(), onError: func() { t.Error("unexpected mismatch") }}
	snap.MatchesFile(sub, path)
}

func TestSnapshotMatchesFileMissing(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := Capture(graphics.Size{Width: 10, Height: 10}, paintBox(graphics.ColorRed, 10, 10))

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing.json"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshotMatchesFileMismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	first := Capture(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed, 50, 50))
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	second := Capture(graphics.Size{Width: 99, Height: 99}, paintBox(graphics.ColorBlue, 99, 99))
	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshotUpdateMode(t *testing.T) {
	snap := Capture(graphics.Size{Width: 60, Height: 30}, paintBox(graphics.ColorWhite, 60, 30))
	path := filepath.Join(t.TempDir(), "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
