package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/match"
	"github.com/Norgate-AV/winarea/internal/resolver"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [selector]",
		Short: "List visible top-level windows and their logical areas",
		Long:  "List visible top-level windows, optionally filtered by a selector.\n\n" + selectorHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE:  withApp(runList),
	}

	return cmd
}

type listEntry struct {
	targetView `yaml:",inline"`
	Branch     string   `yaml:"branch"`
	Logical    areaView `yaml:"logical"`
}

func runList(a *app, cmd *cobra.Command, args []string) error {
	desktop, err := a.desktop()
	if err != nil {
		return err
	}

	targets := desktop.EnumerateWindows()

	if len(args) == 1 {
		sel, err := match.Parse(args[0])
		if err != nil {
			return err
		}

		targets = match.Filter(targets, sel)
	}

	entries := make([]listEntry, 0, len(targets))

	for _, t := range targets {
		r, err := resolver.NewWindow(t.Hwnd, desktop, a.rules, a.log).Resolve()
		if err != nil {
			// Windows can close between enumeration and measurement
			a.log.Debug("Skipping window", slog.String("hwnd", formatHwnd(t.Hwnd)), slog.Any("error", err))
			continue
		}

		entries = append(entries, listEntry{
			targetView: viewTarget(t),
			Branch:     r.Branch.String(),
			Logical:    viewArea(r.Logical),
		})
	}

	return a.out.Emit(entries, func(w io.Writer) {
		writeListTable(w, entries, terminalWidth(cmd.OutOrStdout()))
	})
}

func writeListTable(w io.Writer, entries []listEntry, width int) {
	const row = "%-10s %-7s %-11s %-26s %s\n"

	writeHeader(w, row, "HWND", "PID", "BRANCH", "LOGICAL", "TITLE")

	for _, e := range entries {
		area := formatAreaView(&e.Logical)
		title := e.Title
		if title == "" {
			title = "[" + e.Class + "]"
		}

		if width > 0 {
			title = truncate(title, width-58)
		}

		fmt.Fprintf(w, row, e.Hwnd, fmt.Sprint(e.Pid), e.Branch, area, title)
	}
}
