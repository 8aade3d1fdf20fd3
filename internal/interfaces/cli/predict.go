package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newPredictCommand() *cobra.Command {
	var drugName, foodName string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the interaction between a drug and a food",
		Example: `  dfictl predict --drug warfarin --food spinach
  dfictl predict --drug aspirin --food "orange juice"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := Bootstrap(ctx, configPath, false)
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.Service.Predict(ctx, drugName, foodName)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"drug_name":       drugName,
				"food_name":       foodName,
				"effect":          result.Effect.String(),
				"confidence":      result.Confidence,
				"explanation":     result.Explanation,
				"source":          result.Source,
				"drug_properties": result.DrugProfile.Descriptors.Map(),
				"food_nutrients":  result.FoodNutrients,
			})
		},
	}
	cmd.Flags().StringVar(&drugName, "drug", "", "drug name to resolve")
	cmd.Flags().StringVar(&foodName, "food", "", "food name to look up")
	_ = cmd.MarkFlagRequired("drug")
	_ = cmd.MarkFlagRequired("food")
	return cmd
}
