package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := NewConfigFromFlags(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout(), cfg.Output)
			defer out.Close()

			info := version.Get()
			return out.Emit(info, func(w io.Writer) {
				fmt.Fprintln(w, info.String())
			})
		},
	}
}
