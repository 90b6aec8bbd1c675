package config

import (
	"fmt"

	"github.com/veilar-ui/veilar/pkg/controls"
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/style"
)

// Instance is a control built from a sheet entry and laid out at the
// entry's size.
type Instance struct {
	Spec    ControlSpec
	Control controls.Control
}

// Build constructs every control in the sheet in declaration order, lays
// each one out and places children inside their containers. base supplies
// the options shared by all controls; density, colors and callbacks set
// per control come from the sheet.
func (s *Sheet) Build(base controls.Options) ([]Instance, error) {
	out := make([]Instance, 0, len(s.Controls))
	byName := make(map[string]controls.Control, len(s.Controls))
	cleanup := func() {
		for _, in := range out {
			in.Control.Dispose()
		}
	}

	for _, spec := range s.Controls {
		opts, err := spec.options(base, s.Density)
		if err != nil {
			cleanup()
			return nil, err
		}
		kind, err := controls.ParseKind(spec.Kind)
		if err != nil {
			cleanup()
			return nil, configError("config.Build", err)
		}
		c, err := controls.New(kind, spec.Text, style.Attributes(spec.Attributes), opts)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("control %q: %w", spec.Name, err)
		}
		c.Layout(spec.Width*density(s.Density), spec.Height*density(s.Density))
		out = append(out, Instance{Spec: spec, Control: c})
		byName[spec.Name] = c
	}

	for _, in := range out {
		container, ok := in.Control.(*controls.Container)
		if !ok {
			if len(in.Spec.Children) > 0 {
				cleanup()
				return nil, configError("config.Build", fmt.Errorf("%s %q cannot hold children", in.Spec.Kind, in.Spec.Name))
			}
			continue
		}
		d := density(s.Density)
		for _, p := range in.Spec.Children {
			container.Add(byName[p.Name], graphics.Offset{X: p.X * d, Y: p.Y * d})
		}
	}
	return out, nil
}

// Roots returns the instances that are not placed inside a container.
func Roots(instances []Instance) []Instance {
	placed := make(map[string]bool)
	for _, in := range instances {
		for _, p := range in.Spec.Children {
			placed[p.Name] = true
		}
	}
	var roots []Instance
	for _, in := range instances {
		if !placed[in.Spec.Name] {
			roots = append(roots, in)
		}
	}
	return roots
}

func (c ControlSpec) options(base controls.Options, sheetDensity float64) (controls.Options, error) {
	opts := base
	opts.Density = density(sheetDensity)
	if c.Background != "" {
		bg, err := graphics.ParseColor(c.Background)
		if err != nil {
			return opts, configError("config.Build", fmt.Errorf("control %q background: %w", c.Name, err))
		}
		opts.Background = &bg
	}
	if c.TextColor != "" {
		tc, err := graphics.ParseColor(c.TextColor)
		if err != nil {
			return opts, configError("config.Build", fmt.Errorf("control %q textColor: %w", c.Name, err))
		}
		opts.TextColor = tc
	}
	return opts, nil
}

func density(d float64) float64 {
	if d <= 0 {
		return 1
	}
	return d
}
