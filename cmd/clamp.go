package cmd

import (
	"github.com/spf13/cobra"
)

func newClampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clamp <selector>",
		Short: "Pull a window back inside the work area of its monitor",
		Long:  "Move a window so its logical area lies inside its monitor's work area.\n\n" + selectorHelp,
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(runClamp),
	}

	cmd.Flags().Bool("resize", false, "shrink the window instead of sliding it")

	return cmd
}

func runClamp(a *app, cmd *cobra.Command, args []string) error {
	resize, _ := cmd.Flags().GetBool("resize")

	w, desktop, _, err := a.openWindow(args[0])
	if err != nil {
		return err
	}

	return a.applyAndReport(w, desktop, func() error {
		return w.ClampToWorkArea(resize)
	})
}
