package alerts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meghanshb/go-inventory-tracker.git/internal/events"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	"github.com/meghanshb/go-inventory-tracker.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Service watches the sale stream and raises low-stock / out-of-stock
// alerts. Alerts are just log warnings plus TTL'd Redis flags a UI can
// poll; there is no paging here.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleSaleRecorded is installed as the consumer handler for the
// sale-recorded topic.
func (s *Service) HandleSaleRecorded(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != inventory.EventSaleRecorded {
		return nil
	}

	// dedup by event_id so redelivered messages alert once
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if seen, _ := redisx.Exists(ctx, s.Redis, dkey); seen {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := events.UnwrapPayload[inventory.SaleRecordedPayload](env.Payload)
	if err != nil {
		return err
	}

	switch {
	case p.OutOfStock:
		zap.S().Warnf("out of stock: %s (%s) after sale of %d on %s",
			p.ProductName, p.ProductID, p.Quantity, p.Platform)
		key := fmt.Sprintf(redisx.KeyOutOfStockAlert, p.ProductID)
		_ = s.Redis.Set(ctx, key, p.ProductName, redisx.TTLAlert).Err()
	case p.LowStock:
		zap.S().Warnf("low stock: %s (%s) down to %d units",
			p.ProductName, p.ProductID, p.Remaining)
		key := fmt.Sprintf(redisx.KeyLowStockAlert, p.ProductID)
		_ = s.Redis.Set(ctx, key, p.ProductName, redisx.TTLAlert).Err()
	}
	return nil
}
