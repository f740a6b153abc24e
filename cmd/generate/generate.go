// Package generate implements the command that builds a CPA 005 file
// from an originator profile and a transactions CSV.
package generate

import (
	"fmt"
	"os"

	"jmorin/cpa005/cmd/root"
	"jmorin/cpa005/internal/common"
	"jmorin/cpa005/internal/config"
	"jmorin/cpa005/internal/encoder"
	"jmorin/cpa005/internal/generator"
	"jmorin/cpa005/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the generate command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a CPA 005 file from a transactions CSV",
	Long: `Generate reads an originator profile (YAML) and a transactions CSV,
validates them, and writes the encoded CPA 005 file. Validation warnings
are logged; fatal problems abort before any output is written.`,
	RunE: generateFunc,
}

func generateFunc(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	appCfg, err := config.InitializeConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	originatorFile := root.SharedFlags.Originator
	if originatorFile == "" {
		originatorFile = appCfg.Generate.OriginatorFile
	}
	originatorPath, err := config.FindOriginatorFile(originatorFile)
	if err != nil {
		return fmt.Errorf("originator profile %s not found: %w", originatorFile, err)
	}
	originator, err := config.LoadOriginator(originatorPath)
	if err != nil {
		return err
	}

	profileName := root.SharedFlags.Profile
	if profileName == "" {
		profileName = appCfg.Generate.Profile
	}
	profile, err := encoder.ProfileByName(profileName)
	if err != nil {
		return err
	}

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("no input file specified, use --input")
	}
	if root.SharedFlags.Output == "" {
		return fmt.Errorf("no output file specified, use --output")
	}

	rows, err := common.ReadCSVFile[common.TransactionRow](root.SharedFlags.Input, logger)
	if err != nil {
		return err
	}
	transactions, err := common.RowsToTransactions(rows)
	if err != nil {
		return fmt.Errorf("error converting CSV rows: %w", err)
	}

	gen := generator.NewWithProfile(originator, profile, logger)
	gen.AddTransactions(transactions...)

	output, result, err := gen.Export()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(root.SharedFlags.Output, []byte(output), 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	logger.Info("CPA 005 file written",
		logging.Field{Key: "file", Value: root.SharedFlags.Output},
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "warnings", Value: result.WarningCount()})
	return nil
}
