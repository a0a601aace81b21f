// Package transactions lists an account's transactions with optional
// free-text filtering.
package transactions

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fbarbosa/invest-recon/cmd/root"
	"fbarbosa/invest-recon/internal/dateutils"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/txfilter"
)

var (
	accountID int64
	since     string
	query     string
)

// Cmd is the transactions command.
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List an account's transactions",
	Long: `Fetches an account's transactions from the given start date and applies the
free-text filter: a dd/MM/yyyy query matches by date, a numeric query by
exact amount, anything else as a case-insensitive description substring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := root.App()

		start, ok := dateutils.ParseInputDate(since)
		if !ok {
			return fmt.Errorf("invalid --since date %q, expected dd/MM/yyyy", since)
		}

		transactions, err := app.Repository().ListTransactions(cmd.Context(), accountID, start)
		if err != nil {
			return err
		}

		// Sort by transaction date, then ID, to keep output stable.
		sort.SliceStable(transactions, func(i, j int) bool {
			if !transactions[i].TransactionDate.Equal(transactions[j].TransactionDate) {
				return transactions[i].TransactionDate.Before(transactions[j].TransactionDate)
			}
			return transactions[i].ID < transactions[j].ID
		})

		render(txfilter.Filter(query, transactions))
		return nil
	},
}

func init() {
	Cmd.Flags().Int64VarP(&accountID, "account", "a", 0, "Account ID (required)")
	Cmd.Flags().StringVarP(&since, "since", "s", time.Now().AddDate(0, -6, 0).Format(dateutils.DateLayoutInput), "Start date (dd/MM/yyyy)")
	Cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text filter (date, amount, or description substring)")
	_ = Cmd.MarkFlagRequired("account")
}

func render(transactions []models.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tAMOUNT")
	for _, tx := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			tx.ID, dateutils.ToISODate(tx.TransactionDate), tx.Description, tx.Amount.StringFixed(2))
	}
	w.Flush()
	fmt.Printf("%d transaction(s)\n", len(transactions))
}
