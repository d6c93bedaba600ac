// invctl is the operator CLI: export the inventory to a JSON file,
// import one back, or list what the configured store holds. It talks
// straight to the store, so the API server does not need to be running.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/meghanshb/go-inventory-tracker.git/internal/config"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	"github.com/meghanshb/go-inventory-tracker.git/internal/store"
)

func main() {
	_ = godotenv.Load()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&exportCmd{}, "")
	subcommands.Register(&importCmd{}, "")
	subcommands.Register(&listCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// openStore picks the configured persistence strategy.
func openStore(ctx context.Context, cfg config.Config) (inventory.Store, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pg, err := store.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case "bolt":
		bs, err := store.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return bs, func() { _ = bs.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
