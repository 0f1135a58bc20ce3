package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/resolver"
	"github.com/Norgate-AV/winarea/internal/timeouts"
)

// Injectable for testing
var settle = func() { time.Sleep(timeouts.SettleDelay) }

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <selector> [--x X] [--y Y] [--w W] [--h H]",
		Short: "Move and resize a window by its logical area",
		Long: "Set any of the position and size components of a window's logical area.\n" +
			"Components not given keep their current value.\n\n" + selectorHelp,
		Example: "  winarea set notepad --x 0 --y 0\n  winarea set pid:4120 --w 1280 --h 720 --focus",
		Args:    cobra.ExactArgs(1),
		RunE:    withApp(runSet),
	}

	cmd.Flags().Float64("x", 0, "left edge")
	cmd.Flags().Float64("y", 0, "top edge")
	cmd.Flags().Float64("w", 0, "width")
	cmd.Flags().Float64("h", 0, "height")
	addFocusFlag(cmd)

	return cmd
}

func addFocusFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("focus", false, "bring the window to the foreground first")
}

// optAreaFromFlags sets only the components whose flags were given
func optAreaFromFlags(flags *pflag.FlagSet) (geom.OptArea, error) {
	var opt geom.OptArea

	targets := map[string]*geom.Axis{
		"x": &opt.Point.X,
		"y": &opt.Point.Y,
		"w": &opt.Size.X,
		"h": &opt.Size.Y,
	}

	for name, axis := range targets {
		if !flags.Changed(name) {
			continue
		}

		v, err := flags.GetFloat64(name)
		if err != nil {
			return geom.OptArea{}, err
		}

		if (name == "w" || name == "h") && v < 0 {
			return geom.OptArea{}, fmt.Errorf("--%s must be >= 0", name)
		}

		*axis = geom.Some(v)
	}

	return opt, nil
}

// focusIfRequested brings the window forward when --focus is set
func (a *app) focusIfRequested(cmd *cobra.Command, w *resolver.Window, desktop interfaces.Desktop) {
	if focus, _ := cmd.Flags().GetBool("focus"); !focus {
		return
	}

	if !desktop.SetForeground(w.Handle()) {
		a.log.Warn("Could not bring window to the foreground", slog.String("hwnd", formatHwnd(w.Handle())))
	}
}

// applyAndReport runs a write against w and prints the area it ends up with
func (a *app) applyAndReport(w *resolver.Window, desktop interfaces.Desktop, apply func() error) error {
	if err := apply(); err != nil {
		a.log.Error("Failed to set window area", slog.String("hwnd", formatHwnd(w.Handle())), slog.Any("error", err))
		return a.explainSetFailure(err, desktop)
	}

	settle()

	return a.printWindow(w)
}

func runSet(a *app, cmd *cobra.Command, args []string) error {
	opt, err := optAreaFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	if opt.IsEmpty() {
		return fmt.Errorf("nothing to set: give at least one of --x, --y, --w, --h")
	}

	w, desktop, _, err := a.openWindow(args[0])
	if err != nil {
		return err
	}

	a.focusIfRequested(cmd, w, desktop)

	return a.applyAndReport(w, desktop, func() error {
		return w.SetAreaPartial(opt)
	})
}
