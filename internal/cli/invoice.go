package cli

import (
	"fmt"
	"strings"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/spf13/cobra"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Compose customer invoices",
	Long:  `Compose an invoice from the current price list and share or print it.`,
}

var invoiceNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an invoice and print its text",
	Long: `Create an invoice from the current price list and print the share text.

Examples:
  pizzabill invoice new --customer Dara --qty 7=2 --qty 12=1
  pizzabill invoice new --qty 1=3 --share
  pizzabill invoice new --qty 1=3 --print --xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		inv := appInstance.Invoices.NewInvoice(ctx)
		inv.CustomerName, _ = cmd.Flags().GetString("customer")
		inv.CustomerAddress, _ = cmd.Flags().GetString("address")

		quantities, _ := cmd.Flags().GetStringArray("qty")
		if err := applyQuantities(inv, quantities); err != nil {
			return err
		}

		text := appInstance.Formatter.Format(inv)
		fmt.Fprintln(out, text)

		share, _ := cmd.Flags().GetBool("share")
		copyOnly, _ := cmd.Flags().GetBool("copy")
		switch {
		case share:
			res, err := appInstance.Sharer.Share(ctx, appInstance.Formatter.ShareTitle(inv), text)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n✓ %s\n", res.Message())
		case copyOnly:
			if err := appInstance.Sharer.Clipboard.Share(ctx, appInstance.Formatter.ShareTitle(inv), text); err != nil {
				return err
			}
			fmt.Fprintln(out, "\n✓ Invoice details copied to clipboard!")
		}

		if doPrint, _ := cmd.Flags().GetBool("print"); doPrint {
			printer := appInstance.Text
			if xlsx, _ := cmd.Flags().GetBool("xlsx"); xlsx {
				printer = appInstance.Workbook
			}

			path, err := printer.Print(inv, appInstance.Config.Invoice.OutputDir)
			if err != nil {
				return fmt.Errorf("failed to print invoice: %w", err)
			}
			fmt.Fprintf(out, "\n✓ Invoice written to %s\n", path)
		}

		return nil
	},
}

// applyQuantities reads id=n pairs. Bad numbers become 0; unknown ids are an error.
func applyQuantities(inv *domain.Invoice, pairs []string) error {
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --qty %q: want id=quantity", pair)
		}
		if !inv.SetQuantityString(strings.TrimSpace(id), raw) {
			return fmt.Errorf("invalid --qty %q: no ingredient with ID %s", pair, id)
		}
	}
	return nil
}

func init() {
	invoiceCmd.AddCommand(invoiceNewCmd)

	invoiceNewCmd.Flags().String("customer", "", "Customer name")
	invoiceNewCmd.Flags().String("address", "", "Customer address")
	invoiceNewCmd.Flags().StringArray("qty", nil, "Quantity as id=n (repeatable)")
	invoiceNewCmd.Flags().Bool("share", false, "Share the text (system share, then clipboard)")
	invoiceNewCmd.Flags().Bool("copy", false, "Copy the text to the clipboard")
	invoiceNewCmd.Flags().Bool("print", false, "Write a printable invoice to the output directory")
	invoiceNewCmd.Flags().Bool("xlsx", false, "With --print, write an A4 workbook instead of text")
}
