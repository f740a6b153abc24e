// Package version implements the command that prints the build version.
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Cmd represents the version command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cpa005 version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cpa005 %s\n", Version)
	},
}
