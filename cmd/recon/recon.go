// Package recon implements the statement reconciliation command: paste,
// review, commit.
package recon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fbarbosa/invest-recon/cmd/root"
	"fbarbosa/invest-recon/internal/dateutils"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/recon"
)

var (
	inputFile string
	dateFlag  string
	commit    bool
	offline   bool
)

// Cmd is the recon command.
var Cmd = &cobra.Command{
	Use:   "recon",
	Short: "Reconcile a pasted investment statement against known accounts",
	Long: `Reads a statement text blob (from a file or stdin), extracts the recognized
line items, fuzzily matches them against account descriptions, and shows the
reconciling delta per account. With --commit, one transaction per non-zero
delta is created; the commit succeeds only if every creation succeeds.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement text file (default: stdin)")
	Cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Transaction date (dd/MM/yyyy, default: nearest end of month)")
	Cmd.Flags().BoolVar(&commit, "commit", false, "Create the reconciling transactions")
	Cmd.Flags().BoolVar(&offline, "offline", false, "Use the cached account snapshot instead of the API")
}

func run(cmd *cobra.Command, args []string) error {
	app := root.App()

	raw, err := readInput()
	if err != nil {
		return err
	}

	date := dateutils.StatementDate(time.Now())
	if dateFlag != "" {
		parsed, ok := dateutils.ParseInputDate(dateFlag)
		if !ok {
			return fmt.Errorf("invalid --date %q, expected dd/MM/yyyy", dateFlag)
		}
		date = parsed
	}

	accounts, err := loadAccounts(cmd)
	if err != nil {
		return err
	}

	items := app.Extractor().Extract(raw)
	if len(items) == 0 {
		fmt.Println("No statement items recognized.")
		return nil
	}

	matched := app.Matcher().Match(items, accounts)
	render(matched)

	if !commit {
		return nil
	}
	if offline {
		return errors.New("--commit requires API access, drop --offline")
	}

	candidates := recon.BuildCandidates(matched, date)
	if err := app.Committer().Commit(cmd.Context(), candidates); err != nil {
		// Some creations may already be persisted remotely; nothing is
		// rolled back. The next fetch shows the authoritative state.
		return err
	}

	fmt.Printf("Created %d transaction(s) dated %s. Refresh account data to see updated balances.\n",
		len(candidates), dateutils.ToISODate(date))
	return nil
}

func readInput() (string, error) {
	if inputFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("reading statement file: %w", err)
	}
	return string(data), nil
}

func loadAccounts(cmd *cobra.Command) ([]models.Account, error) {
	app := root.App()

	if offline {
		accounts, fetchedAt, err := app.AccountStore().Load()
		if err != nil {
			return nil, fmt.Errorf("no usable account cache, run 'invest-recon accounts' first: %w", err)
		}
		fmt.Printf("Using account snapshot from %s\n", fetchedAt.Format(time.RFC3339))
		return accounts, nil
	}

	accounts, err := app.Repository().ListAccounts(cmd.Context())
	if err != nil {
		return nil, err
	}
	if err := app.AccountStore().Save(accounts); err != nil {
		app.Logger().WithError(err).Warn("Failed to cache account snapshot")
	}
	return accounts, nil
}

func render(matched []models.MatchedInvestmentAccount) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DESCRIPTION\tBALANCE\tSTATEMENT ITEM\tNEW BALANCE\tVALUE\t%")

	for _, m := range matched {
		name, newBalance, value, pct := "", "", "", ""
		if m.Investment != nil {
			name = m.Investment.Name
			newBalance = m.Investment.Value.StringFixed(2)
		}
		if m.InvestmentValue != nil {
			value = m.InvestmentValue.StringFixed(2)
		}
		if m.InvestmentPercentage != nil {
			pct = m.InvestmentPercentage.StringFixed(2) + " %"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Account.Description, m.Account.Balance.StringFixed(2), name, newBalance, value, pct)
	}

	s := recon.Summarize(matched)
	fmt.Fprintf(w, "TOTAL\t%s\t\t%s\t%s\t%s %%\n",
		s.MatchedBalance.StringFixed(2), s.StatementTotal.StringFixed(2),
		s.ReconcilingTotal.StringFixed(2), s.AveragePercentage.StringFixed(2))
	w.Flush()
}
