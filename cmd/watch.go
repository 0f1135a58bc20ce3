package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/resolver"
	"github.com/Norgate-AV/winarea/internal/timeouts"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <selector>",
		Short: "Print a window's logical area every time it changes",
		Long:  "Poll a window and print its logical area whenever it changes, until Ctrl+C.\n\n" + selectorHelp,
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(runWatch),
	}

	cmd.Flags().Duration("interval", 0, "polling interval (default watch.interval from the config file)")

	return cmd
}

type watchEvent struct {
	Time    string   `yaml:"time"`
	Branch  string   `yaml:"branch"`
	Logical areaView `yaml:"logical"`
}

func runWatch(a *app, cmd *cobra.Command, args []string) error {
	interval := a.file.Watch.Interval
	if cmd.Flags().Changed("interval") {
		interval, _ = cmd.Flags().GetDuration("interval")
	}

	if interval < timeouts.MinWatchInterval {
		return fmt.Errorf("--interval must be at least %s", timeouts.MinWatchInterval)
	}

	w, _, target, err := a.openWindow(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info(fmt.Sprintf("Watching %s %q, press Ctrl+C to stop", formatHwnd(target.Hwnd), target.Title))

	var emitErr error

	err = w.Watch(ctx, interval, func(r resolver.Resolution) {
		ev := watchEvent{
			Time:    time.Now().Format(time.TimeOnly),
			Branch:  r.Branch.String(),
			Logical: viewArea(r.Logical),
		}

		a.log.Debug("Window area changed", slog.String("branch", ev.Branch), slog.String("logical", r.Logical.String()))

		if e := a.out.Emit(ev, func(w io.Writer) {
			fmt.Fprintf(w, "%s %-11s %s\n", ev.Time, ev.Branch, r.Logical)
		}); e != nil && emitErr == nil {
			emitErr = e
		}
	})
	if err != nil {
		return err
	}

	return emitErr
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
