package main

import (
	"os"

	"fbarbosa/invest-recon/cmd/accounts"
	"fbarbosa/invest-recon/cmd/recon"
	"fbarbosa/invest-recon/cmd/root"
	"fbarbosa/invest-recon/cmd/transactions"
	"fbarbosa/invest-recon/cmd/upload"
)

func init() {
	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(transactions.Cmd)
	root.Cmd.AddCommand(recon.Cmd)
	root.Cmd.AddCommand(upload.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
