package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeKafkaWriter) Close() error {
	f.closed = true
	return nil
}

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func sampleEvent() models.BatchEvent {
	return models.BatchEvent{
		EventID:    "3f1c",
		Type:       models.EventBatchCreated,
		BatchCode:  "BC001",
		Action:     models.ActionCreate,
		UserID:     7,
		TxHash:     "0xabc",
		OccurredAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("KeyedByBatchCode", func(t *testing.T) {
		w := &fakeKafkaWriter{}
		p := NewKafkaPublisher(w)

		require.NoError(t, p.Publish(context.Background(), sampleEvent()))
		require.Len(t, w.msgs, 1)
		assert.Equal(t, "BC001", string(w.msgs[0].Key))

		var got models.BatchEvent
		require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
		assert.Equal(t, sampleEvent(), got)
	})

	t.Run("WriteError", func(t *testing.T) {
		p := NewKafkaPublisher(&fakeKafkaWriter{err: errors.New("broker down")})
		assert.Error(t, p.Publish(context.Background(), sampleEvent()))
	})

	t.Run("Close", func(t *testing.T) {
		w := &fakeKafkaWriter{}
		require.NoError(t, NewKafkaPublisher(w).Close())
		assert.True(t, w.closed)
	})
}

func TestAMQPPublisher(t *testing.T) {
	t.Run("PersistentOnQueue", func(t *testing.T) {
		ch := &fakeChannel{}
		p := NewAMQPPublisher(ch, "batch.events")

		require.NoError(t, p.Publish(context.Background(), sampleEvent()))
		assert.Equal(t, "", ch.exchange)
		assert.Equal(t, "batch.events", ch.key)
		require.Len(t, ch.msgs, 1)
		assert.Equal(t, amqp.Persistent, ch.msgs[0].DeliveryMode)
		assert.Equal(t, "application/json", ch.msgs[0].ContentType)
		assert.Equal(t, models.EventBatchCreated, ch.msgs[0].Type)

		var got models.BatchEvent
		require.NoError(t, json.Unmarshal(ch.msgs[0].Body, &got))
		assert.Equal(t, "BC001", got.BatchCode)
	})

	t.Run("PublishError", func(t *testing.T) {
		p := NewAMQPPublisher(&fakeChannel{err: errors.New("channel closed")}, "batch.events")
		assert.Error(t, p.Publish(context.Background(), sampleEvent()))
	})

	t.Run("Close", func(t *testing.T) {
		ch := &fakeChannel{}
		require.NoError(t, NewAMQPPublisher(ch, "q").Close())
		assert.True(t, ch.closed)
	})
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()
	assert.NoError(t, p.Publish(context.Background(), sampleEvent()))
	assert.NoError(t, p.Close())
}
