package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aweris/bindex"
)

var queryCmd = &cobra.Command{
	Use:   "query <term> [filter]",
	Short: "Query the index",
	Long:  "Query indexed invoices by exact name and an optional semver range filter.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runQuery,
}

var (
	queryOffset uint64
	queryLimit  uint8
	queryYanked bool
)

func init() {
	queryCmd.Flags().Uint64Var(&queryOffset, "offset", 0, "first result index")
	queryCmd.Flags().Uint8Var(&queryLimit, "limit", bindex.DefaultLimit, "maximum results")
	queryCmd.Flags().BoolVar(&queryYanked, "yanked", false, "request yanked invoices")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	term := args[0]
	filter := ""
	if len(args) > 1 {
		filter = args[1]
	}

	engine, err := bindex.LoadSnapshot(snapshotPath())
	if err != nil {
		return err
	}

	opts := bindex.DefaultSearchOptions()
	opts.Offset = queryOffset
	opts.Limit = queryLimit
	opts.Yanked = queryYanked

	matches, err := engine.Query(term, filter, opts)
	if err != nil {
		return err
	}

	for _, inv := range matches.Invoices {
		marker := ""
		if inv.IsYanked() {
			marker = "\t(yanked)"
		}
		fmt.Printf("%s\t%s%s\n", inv.Bindle.Name, inv.Bindle.Version, marker)
	}

	fmt.Printf("%d of %d match(es)", len(matches.Invoices), matches.Total)
	if matches.More {
		fmt.Print(", more available")
	}
	fmt.Println()

	return nil
}
