// Package kafka layers a small publishing facade over segmentio/kafka-go.
package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

const defaultBatchTimeout = 10 * time.Millisecond

// Config holds broker addresses and writer tuning for the producer.
type Config struct {
	Brokers      []string
	BatchTimeout time.Duration
}

// Message is a single record to publish: an ordering key, a payload, and
// optional string headers.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

func (m Message) toRecord() kafkago.Message {
	rec := kafkago.Message{Key: m.Key, Value: m.Value}
	for k, v := range m.Headers {
		rec.Headers = append(rec.Headers, kafkago.Header{Key: k, Value: []byte(v)})
	}
	return rec
}

// Producer owns one kafka-go writer per topic, created on first use and
// shared afterwards. Messages are hashed by key onto partitions so records
// sharing a key stay ordered, and writes require acks from all replicas.
type Producer struct {
	mu           sync.RWMutex
	writers      map[string]*kafkago.Writer
	brokers      []string
	batchTimeout time.Duration
}

// NewProducer creates a Producer for the given brokers.
func NewProducer(cfg Config) *Producer {
	timeout := cfg.BatchTimeout
	if timeout <= 0 {
		timeout = defaultBatchTimeout
	}
	return &Producer{
		writers:      make(map[string]*kafkago.Writer),
		brokers:      cfg.Brokers,
		batchTimeout: timeout,
	}
}

// Publish sends messages to the given topic. Publishing nothing is a no-op.
func (p *Producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	records := make([]kafkago.Message, len(messages))
	for i, m := range messages {
		records[i] = m.toRecord()
	}
	if err := p.writer(topic).WriteMessages(ctx, records...); err != nil {
		return fmt.Errorf("write %d messages to %s: %w", len(records), topic, err)
	}
	return nil
}

// Close closes every writer and forgets them; the producer stays usable and
// will recreate writers on the next Publish.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close writer for %s: %w", topic, err)
		}
	}
	clear(p.writers)
	return firstErr
}

func (p *Producer) writer(topic string) *kafkago.Writer {
	p.mu.RLock()
	w, ok := p.writers[topic]
	p.mu.RUnlock()
	if ok {
		return w
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.writers[topic]; ok {
		return w
	}
	w = &kafkago.Writer{
		Addr:         kafkago.TCP(p.brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: p.batchTimeout,
		RequiredAcks: kafkago.RequireAll,
	}
	p.writers[topic] = w
	return w
}
