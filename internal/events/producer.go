package events

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer writes inventory events asynchronously. Messages are queued
// into an inbox channel and flushed by a single goroutine, so callers
// never block on the broker. A nil *Producer is a no-op, which is how
// the service runs when Kafka is not configured.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewProducer(brokers []string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start runs the flush loop. The loop exits after Close drains the
// inbox; the context only scopes the writes themselves.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		for m := range p.inbox {
			if err := p.w.WriteMessages(ctx, m); err != nil {
				zap.S().Warnf("event publish failed: %v", err)
			}
		}
		_ = p.w.Close()
		close(p.closeCh)
	}()
}

// Publish queues one event. Topic is carried per message so a single
// writer serves all inventory topics.
func (p *Producer) Publish(topic string, key, value []byte) {
	if p == nil {
		return
	}
	p.inbox <- kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-version", Value: []byte("1")},
		},
	}
}

// Close the inbox so the flush goroutine drains remaining messages.
func (p *Producer) Close() {
	if p == nil {
		return
	}
	close(p.inbox)
}

// WaitClosed blocks until the flush goroutine has exited.
func (p *Producer) WaitClosed() {
	if p == nil {
		return
	}
	<-p.closeCh
}
