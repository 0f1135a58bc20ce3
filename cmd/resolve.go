package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/match"
	"github.com/Norgate-AV/winarea/internal/resolver"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve --raw x,y,w,h --client x,y,w,h",
		Short: "Resolve the logical area of a window from given measurements",
		Long: `Evaluate the area resolver on measurements supplied as flags.

No window is touched, so this works on any platform. Borderless rules from
the config file apply when --title, --class or --exe identify the window.`,
		Example: `  winarea resolve --raw 100,100,808,607 --client 108,139,800,600
  winarea resolve --raw -8,-8,1936,1096 --client 0,23,1920,1017 --maximized --work-area 0,0,1920,1040
  winarea resolve --raw 50,50,400,300 --client 58,80,384,262 --region-poly "10,10;390,10;390,270;10,270"`,
		Args: cobra.NoArgs,
		RunE: withApp(runResolve),
	}

	cmd.Flags().String("raw", "", "raw window rectangle x,y,w,h (required)")
	cmd.Flags().String("client", "", "client rectangle in screen coordinates x,y,w,h (required)")
	cmd.Flags().String("region", "", "window region bounds x,y,w,h relative to the raw origin")
	cmd.Flags().String("region-poly", "", "window region polygon x,y;x,y;x,y... relative to the raw origin")
	cmd.Flags().Bool("maximized", false, "the window is maximised")
	cmd.Flags().String("work-area", "", "monitor work area x,y,w,h (required with --maximized)")
	cmd.Flags().Float64("fix", 8, "border padding fix in pixels")
	cmd.Flags().String("title", "", "window title for borderless rule matching")
	cmd.Flags().String("class", "", "window class for borderless rule matching")
	cmd.Flags().String("exe", "", "executable path for borderless rule matching")

	_ = cmd.MarkFlagRequired("raw")
	_ = cmd.MarkFlagRequired("client")
	cmd.MarkFlagsMutuallyExclusive("region", "region-poly")
	cmd.MarkFlagsRequiredTogether("maximized", "work-area")

	return cmd
}

// measurementsFromFlags builds a snapshot from the resolve flags
func measurementsFromFlags(cmd *cobra.Command) (resolver.Measurements, error) {
	var m resolver.Measurements
	var err error

	flags := cmd.Flags()

	raw, _ := flags.GetString("raw")
	if m.Raw, err = parseArea(raw); err != nil {
		return m, fmt.Errorf("--raw: %w", err)
	}

	client, _ := flags.GetString("client")
	if m.Client, err = parseArea(client); err != nil {
		return m, fmt.Errorf("--client: %w", err)
	}

	if region, _ := flags.GetString("region"); region != "" {
		if m.Region, err = parseArea(region); err != nil {
			return m, fmt.Errorf("--region: %w", err)
		}

		m.HasRegion = true
	}

	if poly, _ := flags.GetString("region-poly"); poly != "" {
		p, err := parsePolygon(poly)
		if err != nil {
			return m, fmt.Errorf("--region-poly: %w", err)
		}

		m.Region = p.Bounds()
		m.HasRegion = true
	}

	m.Maximized, _ = flags.GetBool("maximized")

	if work, _ := flags.GetString("work-area"); work != "" {
		if m.WorkArea, err = parseArea(work); err != nil {
			return m, fmt.Errorf("--work-area: %w", err)
		}
	}

	title, _ := flags.GetString("title")
	class, _ := flags.GetString("class")
	exe, _ := flags.GetString("exe")
	m.Target = match.Target{Title: title, Class: class, Exe: exe}

	return m, nil
}

func runResolve(a *app, cmd *cobra.Command, _ []string) error {
	m, err := measurementsFromFlags(cmd)
	if err != nil {
		return err
	}

	fix, _ := cmd.Flags().GetFloat64("fix")
	if fix < 0 {
		return fmt.Errorf("--fix must be >= 0")
	}

	r := resolver.Resolve(m, resolver.Params{BorderPaddingFix: fix, Borderless: a.rules})
	a.log.Trace("Resolved offline measurements",
		slog.String("branch", r.Branch.String()),
		slog.String("logical", r.Logical.String()),
	)

	view := viewResolution(m, r)
	return a.out.Emit(view, view.writeText)
}
