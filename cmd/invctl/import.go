package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/meghanshb/go-inventory-tracker.git/internal/config"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	"github.com/meghanshb/go-inventory-tracker.git/internal/store"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the stored product list from a JSON export" }
func (*importCmd) Usage() string {
	return `import -file <path>

  Reads a JSON export and replaces the entire stored product list with
  its contents. A file that does not parse as a product list is
  rejected and the store is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Export file to import (required)")
}

func (c *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	// parse first, open the store only once the file is known-good
	products, err := store.ImportFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := config.Load()
	st, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	svc, err := inventory.NewService(st, nil, "invctl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := svc.ReplaceAll(ctx, products); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting products: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("imported %d products from %s\n", len(products), c.file)
	return subcommands.ExitSuccess
}
