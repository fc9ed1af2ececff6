package kafka

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageToRecord(t *testing.T) {
	rec := Message{
		Key:   []byte("agg-1"),
		Value: []byte(`{"ok":true}`),
		Headers: map[string]string{
			"event_type": "credit.request.submitted",
		},
	}.toRecord()

	assert.Equal(t, []byte("agg-1"), rec.Key)
	assert.Equal(t, []byte(`{"ok":true}`), rec.Value)
	require.Len(t, rec.Headers, 1)
	assert.Equal(t, "event_type", rec.Headers[0].Key)
	assert.Equal(t, []byte("credit.request.submitted"), rec.Headers[0].Value)
}

func TestProducerWriterLifecycle(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w := p.writer("credit.events")
	assert.Same(t, w, p.writer("credit.events"), "writers are reused per topic")
	assert.IsType(t, &kafkago.Hash{}, w.Balancer)
	assert.Equal(t, defaultBatchTimeout, w.BatchTimeout)

	require.NoError(t, p.Close())
	assert.NotSame(t, w, p.writer("credit.events"), "closed writers are recreated")
}

func TestProducerBatchTimeoutOverride(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}, BatchTimeout: time.Second})
	assert.Equal(t, time.Second, p.writer("credit.events").BatchTimeout)
}

func TestPublishNothingIsANoOp(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, p.Publish(context.Background(), "credit.events"))
	assert.Empty(t, p.writers, "no writer is created for an empty publish")
}
