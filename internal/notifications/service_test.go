package notifications

import (
	"context"
	"testing"
	"time"

	"beeos/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingProducer struct {
	published chan *CheckoutNotification
}

func (p *capturingProducer) Publish(ctx context.Context, n *CheckoutNotification) error {
	p.published <- n
	return nil
}

func (p *capturingProducer) Close() error { return nil }

func (p *capturingProducer) HealthCheck(_ context.Context) error { return nil }

func TestNotifyPublishes(t *testing.T) {
	producer := &capturingProducer{published: make(chan *CheckoutNotification, 1)}
	svc := NewService(producer, logger.GetDefault())

	svc.Notify(context.Background(), "success", "user-1", "booking submitted", map[string]interface{}{
		"booking_code": "BEOS-20260830-ABCDEF",
	})

	select {
	case n := <-producer.published:
		assert.Equal(t, "success", n.Kind)
		assert.Equal(t, "user-1", n.UserID)
		assert.Equal(t, "booking submitted", n.Message)
		assert.Equal(t, "BEOS-20260830-ABCDEF", n.Fields["booking_code"])
		assert.Equal(t, "user-1", n.GetPartitionKey())
		assert.NotZero(t, n.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not published")
	}
}

func TestNotifyWithoutProducerIsLogOnly(t *testing.T) {
	svc := NewService(nil, logger.GetDefault())

	// must not panic or block
	svc.Notify(context.Background(), "info", "user-2", "session started", nil)
	require.NoError(t, svc.Close())
}
