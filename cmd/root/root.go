// Package root contains the root command for the application.
package root

import (
	"jmorin/cpa005/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input      string
	Output     string
	Originator string
	Profile    string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// SharedFlags holds the persistent flag values.
	SharedFlags CommonFlags

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "cpa005",
		Short: "A CLI tool to generate CPA 005 EFT files for Canadian financial institutions.",
		Long: `cpa005 generates CPA 005 fixed-width batch EFT files from an originator
profile and a CSV of funds-transfer instructions.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cpa005!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}
)

// Init registers the persistent flags. Called once from main before
// subcommands are added.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input transactions CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CPA 005 file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Originator, "originator", "", "Originator profile YAML file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Profile, "profile", "p", "", "Destination-bank layout profile (standard, td)")
}
