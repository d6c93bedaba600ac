package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/meghanshb/go-inventory-tracker.git/internal/config"
	"github.com/meghanshb/go-inventory-tracker.git/internal/store"
)

type exportCmd struct {
	dir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full product list to a dated JSON file" }
func (*exportCmd) Usage() string {
	return `export [-dir <directory>]

  Writes a pretty-printed JSON export of every product, named
  inventory-export-YYYY-MM-DD.json, into the given directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", ".", "Directory to write the export into")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	path, err := store.ExportFile(c.dir, products)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("exported %d products to %s\n", len(products), path)
	return subcommands.ExitSuccess
}
