package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
)

func newNutrientsCommand() *cobra.Command {
	var foodName string

	cmd := &cobra.Command{
		Use:   "nutrients",
		Short: "Look up a food's nutrient profile, or list the nutrient schema",
		Long:  "With --food, resolves the food and prints its normalized nutrients. Without it, prints the canonical nutrient catalogue.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if foodName == "" {
				return enc.Encode(map[string]interface{}{"categories": food.Catalogue()})
			}

			ctx := cmd.Context()
			app, err := Bootstrap(ctx, configPath, false)
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.Service.FoodNutrients(ctx, foodName)
			if err != nil {
				return err
			}
			return enc.Encode(map[string]interface{}{
				"food_name":   foodName,
				"description": result.Description,
				"nutrients":   result.Nutrients,
			})
		},
	}
	cmd.Flags().StringVar(&foodName, "food", "", "food name to look up")
	return cmd
}
