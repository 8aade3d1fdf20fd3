package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newDescriptorsCommand() *cobra.Command {
	var drugName string

	cmd := &cobra.Command{
		Use:   "descriptors",
		Short: "Resolve a drug and print its molecular descriptors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := Bootstrap(ctx, configPath, false)
			if err != nil {
				return err
			}
			defer app.Close()

			profile, err := app.Service.DrugProfile(ctx, drugName)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"drug_name":           drugName,
				"canonical_smiles":    profile.SMILES,
				"descriptors":         profile.Descriptors,
				"fingerprint_bits":    profile.Fingerprint.Length,
				"fingerprint_on_bits": profile.Fingerprint.OnBits,
			})
		},
	}
	cmd.Flags().StringVar(&drugName, "drug", "", "drug name to resolve")
	_ = cmd.MarkFlagRequired("drug")
	return cmd
}
