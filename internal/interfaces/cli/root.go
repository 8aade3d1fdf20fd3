package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// NewRootCommand builds the dfictl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "dfictl",
		Short:         "Drug-food interaction prediction toolkit",
		Long:          "dfictl predicts qualitative drug-food interactions from molecular descriptors and nutrient profiles.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (YAML)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newPredictCommand())
	root.AddCommand(newDescriptorsCommand())
	root.AddCommand(newNutrientsCommand())
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
