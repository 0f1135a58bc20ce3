// Package cmd implements the command-line interface for winarea.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds the global flags shared by every command
type Config struct {
	Verbose    bool
	ShowLogs   bool
	ConfigPath string
	Output     string
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command) *Config {
	return &Config{
		Verbose:    getBoolFlag(cmd, "verbose"),
		ShowLogs:   getBoolFlag(cmd, "logs"),
		ConfigPath: getStringFlag(cmd, "config"),
		Output:     getStringFlag(cmd, "output"),
	}
}

// Validate rejects flag values no command can use
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputYAML)
	}
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

// getStringFlag retrieves a string flag, checking both local and persistent flags
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}
