package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/geom"
)

func newEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge <selector> --edge <edge> --pos <v|x,y>",
		Short: "Move one side or corner of a window",
		Long: `Move a side (left, right, top, bottom) or corner (top-left, ...) of a window's
logical area. Left and right use the x of --pos, top and bottom its y; a single
number is used for both. Without --resize the whole window slides.

` + selectorHelp,
		Example: "  winarea edge notepad --edge right --pos 1920 --resize\n  winarea edge notepad --edge bottom-right --pos 10,10 --relative --resize",
		Args:    cobra.ExactArgs(1),
		RunE:    withApp(runEdge),
	}

	cmd.Flags().String("edge", "", "side or corner to move (required)")
	cmd.Flags().String("pos", "", "target position, or delta with --relative (required)")
	cmd.Flags().Bool("resize", false, "keep the opposite edge in place")
	cmd.Flags().Bool("relative", false, "treat --pos as an offset from the current edge")
	addFocusFlag(cmd)

	_ = cmd.MarkFlagRequired("edge")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

func runEdge(a *app, cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	name, _ := flags.GetString("edge")
	edge, err := geom.ParseEdgeType(name)
	if err != nil {
		return err
	}

	if edge == geom.EdgeNone {
		return fmt.Errorf("--edge must name a side or corner")
	}

	rawPos, _ := flags.GetString("pos")
	pos, err := parsePos(rawPos)
	if err != nil {
		return fmt.Errorf("--pos: %w", err)
	}

	resize, _ := flags.GetBool("resize")
	relative, _ := flags.GetBool("relative")

	w, desktop, _, err := a.openWindow(args[0])
	if err != nil {
		return err
	}

	a.focusIfRequested(cmd, w, desktop)

	return a.applyAndReport(w, desktop, func() error {
		return w.SetEdge(edge, pos, resize, relative)
	})
}
