// Package accounts lists the known bank accounts.
package accounts

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fbarbosa/invest-recon/cmd/root"
	"fbarbosa/invest-recon/internal/dateutils"
	"fbarbosa/invest-recon/internal/models"
)

// Cmd is the accounts command.
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List all known accounts",
	Long:  `Fetches every account from the API and caches the snapshot for offline reconciliation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := root.App()

		accounts, err := app.Repository().ListAccounts(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.AccountStore().Save(accounts); err != nil {
			app.Logger().WithError(err).Warn("Failed to cache account snapshot")
		}

		render(accounts)
		return nil
	},
}

func render(accounts []models.Account) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tHOLDER\tDESCRIPTION\tBALANCE\tLAST TX\tACTIVE")
	for _, a := range accounts {
		lastTx := "-"
		if a.LastTransactionDate != nil {
			lastTx = dateutils.ToISODate(*a.LastTransactionDate)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
			a.ID, a.AccountNumber, a.AccountHolder, a.Description,
			a.Balance.StringFixed(2), lastTx, a.IsActive)
	}
	w.Flush()
}
