package cli

import (
	"fmt"
	"io"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/andy/pizzabill/internal/export"
	"github.com/spf13/cobra"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Manage the ingredient price list",
	Long:  `List, edit, and reset ingredient prices for the current session.`,
}

var pricesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredient prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		printCatalog(cmd.OutOrStdout(), appInstance.Catalog.Current(), appInstance.Config.Invoice.Currency)
		return nil
	},
}

var pricesSetCmd = &cobra.Command{
	Use:   "set [id] [price]",
	Short: "Set the unit price of one ingredient",
	Long: `Set the unit price of one ingredient.

A price that is not a number, or is negative, is stored as 0.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		out := cmd.OutOrStdout()

		// an unknown id is still saved, but there is no success to report
		if _, found := appInstance.Catalog.Current().Find(id); found {
			appInstance.Catalog.SetNotifier(cliNotifier(out))
		} else {
			appInstance.Catalog.SetNotifier(nil)
		}
		if !appInstance.Catalog.UpdatePriceString(cmd.Context(), id, args[1]) {
			fmt.Fprintf(out, "  (no ingredient with ID %s; price list unchanged)\n", id)
			return nil
		}

		ing, _ := appInstance.Catalog.Current().Find(id)
		fmt.Fprintf(out, "  %s: %s\n", ing.Name, export.FormatAmount(ing.Price)+appInstance.Config.Invoice.Currency)
		return nil
	},
}

var pricesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default price list",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance.Catalog.SetNotifier(cliNotifier(cmd.OutOrStdout()))
		appInstance.Catalog.ResetToDefaults(cmd.Context())
		return nil
	},
}

func printCatalog(w io.Writer, catalog domain.Catalog, currency string) {
	if len(catalog) == 0 {
		fmt.Fprintln(w, "No ingredients found")
		return
	}

	fmt.Fprintf(w, "%s %s %s\n", padRight("ID", 5), padRight("Name", 24), padLeft("Price", 12))
	fmt.Fprintln(w, "-------------------------------------------")

	for _, ing := range catalog {
		fmt.Fprintf(w, "%s %s %s\n",
			padRight(ing.ID, 5),
			padRight(ing.Name, 24),
			padLeft(export.FormatAmount(ing.Price)+currency, 12),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d ingredient(s)\n", len(catalog))
}

func init() {
	pricesCmd.AddCommand(pricesListCmd)
	pricesCmd.AddCommand(pricesSetCmd)
	pricesCmd.AddCommand(pricesResetCmd)
}
