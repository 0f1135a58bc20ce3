package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/resolver"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <selector>",
		Short:   "Show the raw, client, region and logical areas of a window",
		Long:    "Show every measurement of a window and the logical area resolved from it.\n\n" + selectorHelp,
		Example: "  winarea get notepad\n  winarea get class:^CabinetWClass$ -o yaml",
		Args:    cobra.ExactArgs(1),
		RunE:    withApp(runGet),
	}
}

func runGet(a *app, _ *cobra.Command, args []string) error {
	w, _, _, err := a.openWindow(args[0])
	if err != nil {
		return err
	}

	return a.printWindow(w)
}

// printWindow takes a fresh snapshot of w and prints it
func (a *app) printWindow(w *resolver.Window) error {
	m, r, err := w.Inspect()
	if err != nil {
		return err
	}

	view := viewResolution(m, r)
	return a.out.Emit(view, view.writeText)
}
