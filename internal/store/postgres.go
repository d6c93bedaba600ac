package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
)

// PostgresStore is the remote strategy. Each product is one row with
// its sales history embedded as a JSONB array, keeping the
// document-per-product shape on top of a relational store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func ConnectPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id                  TEXT PRIMARY KEY,
			name                TEXT NOT NULL,
			sku                 TEXT NOT NULL,
			category            TEXT NOT NULL DEFAULT 'Other',
			price               DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_stock         INT NOT NULL DEFAULT 0,
			low_stock_threshold INT NOT NULL DEFAULT 10,
			restock_quantity    INT NOT NULL DEFAULT 50,
			sales               JSONB NOT NULL DEFAULT '[]',
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *PostgresStore) Load(ctx context.Context) ([]inventory.Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, sku, category, price, total_stock,
		       low_stock_threshold, restock_quantity, sales, created_at
		FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []inventory.Product{}
	for rows.Next() {
		var p inventory.Product
		var sales []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Price,
			&p.TotalStock, &p.LowStockThreshold, &p.RestockQuantity,
			&sales, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sales, &p.Sales); err != nil {
			return nil, err
		}
		if p.Sales == nil {
			p.Sales = []inventory.Sale{}
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Persist rewrites the table to match the given list inside one
// transaction: upsert every product, drop rows no longer present.
func (s *PostgresStore) Persist(ctx context.Context, products []inventory.Product) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)

		sales, err := json.Marshal(p.Sales)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO products (id, name, sku, category, price, total_stock,
			                      low_stock_threshold, restock_quantity, sales, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				sku = EXCLUDED.sku,
				category = EXCLUDED.category,
				price = EXCLUDED.price,
				total_stock = EXCLUDED.total_stock,
				low_stock_threshold = EXCLUDED.low_stock_threshold,
				restock_quantity = EXCLUDED.restock_quantity,
				sales = EXCLUDED.sales`,
			p.ID, p.Name, p.SKU, p.Category, p.Price, p.TotalStock,
			p.LowStockThreshold, p.RestockQuantity, sales, p.CreatedAt)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM products WHERE NOT (id = ANY($1))`, ids); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) Close() { s.pool.Close() }
