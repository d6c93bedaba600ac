package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/meghanshb/go-inventory-tracker.git/internal/config"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print the stored products" }
func (*listCmd) Usage() string {
	return `list

  Prints one line per stored product with stock level and units sold.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	st, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	products, err := st.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading products: %v\n", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tCATEGORY\tPRICE\tSTOCK\tSOLD\tSTATUS")
	for _, p := range products {
		status := "ok"
		if p.OutOfStock() {
			status = "out of stock"
		} else if p.LowStock() {
			status = "low stock"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%d\t%s\n",
			p.SKU, p.Name, p.Category, p.Price, p.TotalStock, p.UnitsSold(), status)
	}
	_ = w.Flush()
	return subcommands.ExitSuccess
}
