package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newClosedEvent(t *testing.T) *settlement.SettlementClosedEvent {
	t.Helper()
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	b, err := settlement.NewBatch(uuid.New(), uuid.New(), settlement.SettlementPartnerCommission,
		settlement.MonthlyPeriod(now.AddDate(0, -1, 0)), "KRW", now)
	require.NoError(t, err)
	require.NoError(t, b.Close(nil, "admin", now))
	evt := settlement.NewSettlementClosedEvent(b)
	evt.NetAmount = decimal.NewFromInt(300)
	return evt
}

func TestKafkaForwarder_Handle(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterLedgerEvents(serializer)
	writer := &fakeWriter{}
	f := NewKafkaForwarder(writer, serializer, time.Second, zap.NewNop())

	evt := newClosedEvent(t)
	require.NoError(t, f.Handle(context.Background(), evt))

	require.Len(t, writer.msgs, 1)
	msg := writer.msgs[0]
	assert.Equal(t, evt.BatchID.String(), string(msg.Key))
	assert.Contains(t, string(msg.Value), `"net_amount":"300"`)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, settlement.EventTypeSettlementClosed, headers["event_type"])
	assert.Equal(t, evt.TenantID().String(), headers["tenant_id"])

	decoded, err := serializer.Deserialize(headers["event_type"], msg.Value)
	require.NoError(t, err)
	assert.Equal(t, evt.BatchID, decoded.(*settlement.SettlementClosedEvent).BatchID)
}

func TestKafkaForwarder_WriteFailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	serializer := NewEventSerializer()
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	f := NewKafkaForwarder(writer, serializer, time.Second, zap.New(core))

	err := f.Handle(context.Background(), newClosedEvent(t))

	assert.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("failed to forward event to kafka").Len())
}

func TestKafkaForwarder_Close(t *testing.T) {
	writer := &fakeWriter{}
	f := NewKafkaForwarder(writer, NewEventSerializer(), 0, zap.NewNop())
	require.NoError(t, f.Close())
	assert.True(t, writer.closed)
	assert.ElementsMatch(t, []string{settlement.EventTypeSettlementClosed, settlement.EventTypeSettlementPaid}, f.EventTypes())
}
