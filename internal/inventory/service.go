package inventory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/meghanshb/go-inventory-tracker.git/internal/events"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Store is the persistence adapter contract. Load fills the in-memory
// list at startup; Persist rewrites durable storage as the tail step of
// every mutating operation.
type Store interface {
	Load(ctx context.Context) ([]Product, error)
	Persist(ctx context.Context, products []Product) error
}

// Publisher is what the service needs from the Kafka producer.
type Publisher interface {
	Publish(topic string, key, value []byte)
}

// Defaults applied when a numeric field is absent or unparseable on
// product creation.
const (
	DefaultPrice             = 0
	DefaultTotalStock        = 0
	DefaultLowStockThreshold = 10
	DefaultRestockQuantity   = 50
	DefaultCategory          = "Other"
)

// Service owns the product list. Single-writer discipline: every
// mutation and read goes through the service, guarded by one mutex.
// Mutations build the next list first, persist it, and only swap it in
// on success, so a failed write never leaves memory ahead of storage.
type Service struct {
	mu       sync.Mutex
	store    Store
	producer Publisher
	name     string
	node     *snowflake.Node
	products []Product
}

func NewService(store Store, producer Publisher, serviceName string) (*Service, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		producer: producer,
		name:     serviceName,
		node:     node,
	}, nil
}

// Load replaces the in-memory list from the store.
func (s *Service) Load(ctx context.Context) error {
	products, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	zap.S().Infof("loaded %d products", len(products))
	return nil
}

// Products returns a deep copy of the current list.
func (s *Service) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.products)
}

// AddProduct creates a product from loosely-typed fields. Numeric
// fields are coerced with documented defaults; name and sku are
// required.
func (s *Service) AddProduct(ctx context.Context, fields map[string]any) (Product, error) {
	name := strings.TrimSpace(cast.ToString(fields["name"]))
	sku := strings.TrimSpace(cast.ToString(fields["sku"]))
	if name == "" {
		return Product{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if sku == "" {
		return Product{}, &ValidationError{Field: "sku", Reason: "required"}
	}

	category := strings.TrimSpace(cast.ToString(fields["category"]))
	if category == "" {
		category = DefaultCategory
	}

	p := Product{
		ID:                uuid.NewString(),
		Name:              name,
		SKU:               sku,
		Category:          category,
		Price:             floatField(fields, "price", DefaultPrice),
		TotalStock:        intField(fields, "totalStock", DefaultTotalStock),
		LowStockThreshold: intField(fields, "lowStockThreshold", DefaultLowStockThreshold),
		RestockQuantity:   intField(fields, "restockQuantity", DefaultRestockQuantity),
		Sales:             []Sale{},
		CreatedAt:         time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(cloneAll(s.products), p)
	if err := s.store.Persist(ctx, next); err != nil {
		return Product{}, err
	}
	s.products = next
	return p.Clone(), nil
}

// UpdateProduct shallow-merges the supplied fields into the existing
// record. Stock invariants are deliberately not re-checked here: an
// editor may set totalStock to any value, including one inconsistent
// with the sales history.
func (s *Service) UpdateProduct(ctx context.Context, id string, fields map[string]any) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.products)
	i := indexOf(next, id)
	if i < 0 {
		return Product{}, ErrProductNotFound
	}
	mergeFields(&next[i], fields)

	if err := s.store.Persist(ctx, next); err != nil {
		return Product{}, err
	}
	s.products = next
	return next[i].Clone(), nil
}

// DeleteProduct removes the product and its entire sales history.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.products, id)
	if i < 0 {
		return ErrProductNotFound
	}
	next := cloneAll(s.products)
	next = append(next[:i], next[i+1:]...)

	if err := s.store.Persist(ctx, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

// RecordSale appends a sale and decrements stock. Stock never goes
// negative: an oversized quantity fails with InsufficientStockError and
// leaves both the list and storage untouched.
func (s *Service) RecordSale(ctx context.Context, productID string, platform Platform, quantity int, date string) (Product, error) {
	if quantity <= 0 {
		return Product{}, &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	if !ValidPlatform(platform) {
		return Product{}, &ValidationError{Field: "platform", Reason: "unknown platform"}
	}
	if strings.TrimSpace(date) == "" {
		return Product{}, &ValidationError{Field: "date", Reason: "required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.products)
	i := indexOf(next, productID)
	if i < 0 {
		return Product{}, ErrProductNotFound
	}

	newStock := next[i].TotalStock - quantity
	if newStock < 0 {
		return Product{}, &InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: next[i].TotalStock,
		}
	}

	sale := Sale{
		ID:        s.node.Generate().String(),
		Platform:  platform,
		Quantity:  quantity,
		Date:      date,
		Timestamp: time.Now().UTC(),
	}
	next[i].Sales = append(next[i].Sales, sale)
	next[i].TotalStock = newStock

	if err := s.store.Persist(ctx, next); err != nil {
		return Product{}, err
	}
	s.products = next

	s.publish(TopicSaleRecorded, EventSaleRecorded, productID, SaleRecordedPayload{
		ProductID:   productID,
		ProductName: next[i].Name,
		SaleID:      sale.ID,
		Platform:    platform,
		Quantity:    quantity,
		Remaining:   newStock,
		LowStock:    next[i].LowStock(),
		OutOfStock:  next[i].OutOfStock(),
	})
	return next[i].Clone(), nil
}

// DeleteSale is the exact inverse of RecordSale for one sale: the stock
// it consumed is restored and the record removed.
func (s *Service) DeleteSale(ctx context.Context, productID, saleID string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.products)
	i := indexOf(next, productID)
	if i < 0 {
		return Product{}, ErrProductNotFound
	}

	j := -1
	for k, sale := range next[i].Sales {
		if sale.ID == saleID {
			j = k
			break
		}
	}
	if j < 0 {
		return Product{}, ErrSaleNotFound
	}

	restored := next[i].Sales[j].Quantity
	next[i].TotalStock += restored
	next[i].Sales = append(next[i].Sales[:j], next[i].Sales[j+1:]...)

	if err := s.store.Persist(ctx, next); err != nil {
		return Product{}, err
	}
	s.products = next

	s.publish(TopicSaleReversed, EventSaleReversed, productID, SaleReversedPayload{
		ProductID: productID,
		SaleID:    saleID,
		Quantity:  restored,
		Remaining: next[i].TotalStock,
	})
	return next[i].Clone(), nil
}

// Restock adds the product's configured restock quantity. Unconditional:
// no upper bound and no check that the product was actually low.
func (s *Service) Restock(ctx context.Context, productID string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.products)
	i := indexOf(next, productID)
	if i < 0 {
		return Product{}, ErrProductNotFound
	}
	added := next[i].RestockQuantity
	next[i].TotalStock += added

	if err := s.store.Persist(ctx, next); err != nil {
		return Product{}, err
	}
	s.products = next

	s.publish(TopicRestocked, EventRestocked, productID, RestockedPayload{
		ProductID: productID,
		Added:     added,
		Remaining: next[i].TotalStock,
	})
	return next[i].Clone(), nil
}

// ReplaceAll swaps in an entire imported list. The previous list stays
// in place when persisting fails.
func (s *Service) ReplaceAll(ctx context.Context, products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(products)
	if err := s.store.Persist(ctx, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

func (s *Service) Overview() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildOverview(s.products)
}

func (s *Service) TopPerformers(n int) []Performer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TopPerformers(s.products, n)
}

func (s *Service) SalesHistory(query string) []SaleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SalesHistory(s.products, query)
}

func (s *Service) publish(topic, eventType, productID string, payload any) {
	if s.producer == nil {
		return
	}
	env := events.NewEnvelope(eventType, s.name, productID, events.MustMarshal(payload))
	s.producer.Publish(topic, PartitionKey(productID), events.MustMarshal(env))
}

func indexOf(products []Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// mergeFields applies a partial update. Unknown keys are ignored, and a
// numeric field that fails to parse is skipped rather than zeroed. The
// sales list may be replaced wholesale, matching the merge semantics of
// the PUT endpoint.
func mergeFields(p *Product, fields map[string]any) {
	for key, v := range fields {
		switch key {
		case "name":
			p.Name = cast.ToString(v)
		case "sku":
			p.SKU = cast.ToString(v)
		case "category":
			p.Category = cast.ToString(v)
		case "price":
			if f, err := cast.ToFloat64E(v); err == nil {
				p.Price = f
			}
		case "totalStock":
			if n, err := cast.ToIntE(v); err == nil {
				p.TotalStock = n
			}
		case "lowStockThreshold":
			if n, err := cast.ToIntE(v); err == nil {
				p.LowStockThreshold = n
			}
		case "restockQuantity":
			if n, err := cast.ToIntE(v); err == nil {
				p.RestockQuantity = n
			}
		case "sales":
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			var sales []Sale
			if err := json.Unmarshal(b, &sales); err == nil {
				p.Sales = sales
			}
		}
	}
	if p.Sales == nil {
		p.Sales = []Sale{}
	}
}

func intField(fields map[string]any, key string, def int) int {
	v, ok := fields[key]
	if !ok || v == nil {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

func floatField(fields map[string]any, key string, def float64) float64 {
	v, ok := fields[key]
	if !ok || v == nil {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}
