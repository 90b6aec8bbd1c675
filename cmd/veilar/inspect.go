package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/veilar-ui/veilar/pkg/config"
	"github.com/veilar-ui/veilar/pkg/controls"
	"github.com/veilar-ui/veilar/pkg/style"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <sheet>",
		Short: "Print the parsed style of every control in a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args[0])
		},
	}
}

func (a *app) runInspect(cmd *cobra.Command, path string) error {
	sheet, err := a.loadSheet(path)
	if err != nil {
		return err
	}
	instances, err := sheet.Build(controls.Options{Logger: a.log})
	if err != nil {
		return err
	}
	defer dispose(instances)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tSHAPE\tRADIUS\tFLAGS\tBACKGROUND\tTEXT")
	for _, in := range instances {
		d := in.Control.Descriptor()
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%s\t%s\n",
			in.Spec.Name,
			in.Spec.Kind,
			shapeLabel(d),
			d.Radius,
			orDash(d.Flags.String()),
			gradientLabel(d.Background()),
			gradientLabel(d.TextGradient),
		)
		if len(d.UnknownFlags) > 0 {
			a.log.Warn().Str("control", in.Spec.Name).Strs("flags", d.UnknownFlags).Msg("unknown interaction flags ignored")
		}
	}
	return w.Flush()
}

func shapeLabel(d *style.Descriptor) string {
	if d.ShapeParam != 0 {
		return fmt.Sprintf("%s:%d", d.Shape, d.ShapeParam)
	}
	return d.Shape.String()
}

func gradientLabel(g *style.GradientSpec) string {
	if g == nil {
		return "-"
	}
	return g.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func dispose(instances []config.Instance) {
	for _, in := range instances {
		in.Control.Dispose()
	}
}
