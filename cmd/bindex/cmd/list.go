package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aweris/bindex"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed invoices",
	Long:  "List every indexed invoice name and version in ascending name order.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	engine, err := bindex.LoadSnapshot(snapshotPath())
	if err != nil {
		return err
	}

	invoices := engine.Invoices()
	for _, inv := range invoices {
		fmt.Printf("%s\t%s\n", inv.Bindle.Name, inv.Bindle.Version)
	}

	if len(invoices) == 0 {
		fmt.Println("(no entries)")
	}

	return nil
}
