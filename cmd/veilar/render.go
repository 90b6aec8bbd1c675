package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/veilar-ui/veilar/pkg/animation"
	"github.com/veilar-ui/veilar/pkg/config"
	"github.com/veilar-ui/veilar/pkg/controls"
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/raster"
)

type renderOptions struct {
	outDir     string
	background string
	longPress  bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <sheet>",
		Short: "Render every top-level control to PNG, idle and pressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	cmd.Flags().StringVar(&opts.background, "background", "", "Canvas color behind each control (default transparent)")
	cmd.Flags().BoolVar(&opts.longPress, "long-press", false, "Also render the frame at the peak of the long-press effect")

	return cmd
}

// frameClock is advanced by hand so animations can be stepped to any
// point without waiting.
type frameClock struct {
	now time.Time
}

func (c *frameClock) Now() time.Time { return c.now }

const frame = 16 * time.Millisecond

// advance steps every running ticker for d.
func (c *frameClock) advance(d time.Duration) {
	for d > 0 {
		step := min(frame, d)
		c.now = c.now.Add(step)
		animation.StepTickers()
		d -= step
	}
}

// settle steps tickers until none is active.
func (c *frameClock) settle() {
	for i := 0; i < 1000 && animation.HasActiveTickers(); i++ {
		c.advance(frame)
	}
}

func (a *app) runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	var bg *graphics.Color
	if opts.background != "" {
		c, err := graphics.ParseColor(opts.background)
		if err != nil {
			return fmt.Errorf("--background: %w", err)
		}
		bg = &c
	}

	sheet, err := a.loadSheet(path)
	if err != nil {
		return err
	}

	clk := &frameClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	instances, err := sheet.Build(controls.Options{Logger: a.log})
	if err != nil {
		return err
	}
	defer dispose(instances)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.outDir, err)
	}

	for _, in := range config.Roots(instances) {
		c := in.Control
		center := graphics.RectFromLTWH(0, 0, c.Surface().Size().Width, c.Surface().Size().Height).Center()

		if err := a.writeFrame(cmd, in, bg, opts.outDir, ""); err != nil {
			return err
		}

		c.HandlePointer(controls.PointerEvent{Phase: controls.PointerDown, Position: center})
		clk.settle()
		if err := a.writeFrame(cmd, in, bg, opts.outDir, "pressed"); err != nil {
			return err
		}
		c.HandlePointer(controls.PointerEvent{Phase: controls.PointerCancel})
		clk.settle()

		if opts.longPress {
			c.LongPress()
			clk.advance(c.Surface().Profile().Duration)
			if err := a.writeFrame(cmd, in, bg, opts.outDir, "longpress"); err != nil {
				return err
			}
			clk.settle()
		}
	}
	return nil
}

func (a *app) writeFrame(cmd *cobra.Command, in config.Instance, bg *graphics.Color, dir, state string) error {
	size := in.Control.Surface().Size()
	canvas := raster.New(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	if bg != nil {
		canvas.Clear(*bg)
	}
	in.Control.Paint(canvas)

	name := in.Spec.Name
	if state != "" {
		name += "-" + state
	}
	out := filepath.Join(dir, name+".png")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	a.log.Info().Str("control", in.Spec.Name).Str("file", out).Float64("scale", in.Control.Surface().Scale()).Msg("rendered")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
