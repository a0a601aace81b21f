// Package upload implements the two-phase transaction file upload command.
package upload

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fbarbosa/invest-recon/cmd/root"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/upload"
)

var (
	filePath  string
	accountID int64
	assumeYes bool
)

// Cmd is the upload command.
var Cmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a transaction file in two phases: parse, review, commit",
	Long: `Runs the upload workflow against the transaction API: a preview-only parse
call first, then, after review, the committing process call. The parse call
never mutates persisted data, so it is always safe to inspect its result.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", "", "CSV or TXT file to upload (required)")
	Cmd.Flags().Int64VarP(&accountID, "account", "a", 0, "Target account ID (required)")
	Cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Commit without the review prompt")
	_ = Cmd.MarkFlagRequired("file")
	_ = Cmd.MarkFlagRequired("account")
}

func run(cmd *cobra.Command, args []string) error {
	app := root.App()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading upload file: %w", err)
	}

	session := upload.NewSession(app.Repository(), app.Logger(), accountID)
	if err := session.SetFile(filepath.Base(filePath), data); err != nil {
		return err
	}

	// Parse phase: preview only.
	if err := session.Submit(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Parsed result:")
	render(session.Results())

	if !assumeYes && !confirm() {
		fmt.Println("Aborted, nothing was persisted.")
		return nil
	}

	// Process phase: commits the file.
	if err := session.Submit(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Processed result:")
	render(session.Results())

	fmt.Println("Upload complete. Refresh account data to see the new transactions.")
	return nil
}

func confirm() bool {
	fmt.Print("Process this file? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func render(items []models.UploadLineResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tSTATUS\tDATE\tDESCRIPTION\tAMOUNT\tERROR")
	for _, item := range items {
		status := "success"
		if item.Error {
			status = "error"
		}
		date, description, amount := "", "", ""
		if item.ParsedData != nil {
			date = item.ParsedData.TransactionDate
			description = item.ParsedData.Description
			amount = item.ParsedData.Amount
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			item.LineNumber, status, date, description, amount, item.ErrorMessage)
	}
	w.Flush()
}
