// Package codes implements the command that lists the known CPA
// transaction codes.
package codes

import (
	"fmt"

	"jmorin/cpa005/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the codes command.
var Cmd = &cobra.Command{
	Use:   "codes",
	Short: "List the known CPA transaction codes",
	Long: `Codes prints the CPA transaction codes recognized by validation.
Codes outside this table are structurally valid but produce a warning.`,
	Run: codesFunc,
}

func codesFunc(cmd *cobra.Command, args []string) {
	for _, code := range models.SortedCPACodes() {
		fmt.Printf("%03d  %s\n", code, models.CPACodeDescription(code))
	}
}
