package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aweris/bindex"
	"github.com/aweris/bindex/internal/invoicefile"
)

var indexCmd = &cobra.Command{
	Use:   "index <path>...",
	Short: "Index invoice files",
	Long:  "Parse TOML invoice files (or directories of them) and add them to the index.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIndex,
}

var indexConcurrency int

func init() {
	indexCmd.Flags().IntVar(&indexConcurrency, "concurrency", invoicefile.DefaultConcurrency, "parallel file loads")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	engine, err := bindex.LoadSnapshot(snapshotPath())
	if err != nil {
		return err
	}

	count := 0
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return err
		}

		var invoices []*bindex.Invoice
		if info.IsDir() {
			invoices, err = invoicefile.LoadDir(cmd.Context(), arg, indexConcurrency)
		} else {
			var inv *bindex.Invoice
			inv, err = invoicefile.Load(arg)
			invoices = []*bindex.Invoice{inv}
		}
		if err != nil {
			return err
		}

		for _, inv := range invoices {
			if err := engine.Index(inv); err != nil {
				return err
			}
			count++
		}
	}

	if err := engine.Save(snapshotPath()); err != nil {
		return err
	}

	fmt.Printf("indexed %d invoice(s), %d name(s) total\n", count, engine.Len())
	return nil
}
