package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadithya-J/time_management/internal/events"
)

type publishCall struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type mockChannel struct {
	calls  []publishCall
	err    error
	closed bool
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	m.calls = append(m.calls, publishCall{exchange: exchange, key: key, msg: msg})
	return m.err
}

func (m *mockChannel) Close() error {
	m.closed = true
	return nil
}

func TestProducer_Publish(t *testing.T) {
	ch := &mockChannel{}
	p := &Producer{channel: ch}

	occurred := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), events.Event{
		Type:       events.TypeEntryDeleted,
		EntryID:    "abc",
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	require.Len(t, ch.calls, 1)

	call := ch.calls[0]
	assert.Equal(t, ExchangeName, call.exchange)
	assert.Equal(t, "entry.deleted", call.key)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), call.msg.DeliveryMode)
	assert.Equal(t, "abc", call.msg.MessageId)

	var decoded events.Event
	require.NoError(t, json.Unmarshal(call.msg.Body, &decoded))
	assert.Equal(t, "abc", decoded.EntryID)
	assert.True(t, occurred.Equal(decoded.OccurredAt))
}

func TestProducer_PublishError(t *testing.T) {
	ch := &mockChannel{err: errors.New("channel closed")}
	p := &Producer{channel: ch}

	err := p.Publish(context.Background(), events.Event{Type: events.TypeEntryCreated, EntryID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestProducer_CloseWithoutConnection(t *testing.T) {
	ch := &mockChannel{}
	p := &Producer{channel: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
