package notifications

import (
	"context"
	"time"

	"beeos/pkg/logger"
)

// Service publishes checkout notifications without blocking the caller.
// With a nil producer (Kafka disabled) it degrades to log-only delivery.
type Service struct {
	producer Producer
	log      *logger.Logger
}

func NewService(producer Producer, log *logger.Logger) *Service {
	return &Service{
		producer: producer,
		log:      log,
	}
}

// Notify publishes a checkout notification. Delivery is best effort:
// failures are logged and never surfaced to the checkout flow.
func (s *Service) Notify(ctx context.Context, kind string, userID string, message string, fields map[string]interface{}) {
	notification := NewCheckoutNotification(kind, userID, message, fields)

	if s.producer == nil {
		s.log.Info("notification (log only)",
			"kind", notification.Kind,
			"user_id", notification.UserID,
			"message", notification.Message,
		)
		return
	}

	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.producer.Publish(publishCtx, notification); err != nil {
			s.log.WithError(err).Error("failed to publish notification",
				"kind", notification.Kind,
				"user_id", notification.UserID,
			)
		}
	}()
}

func (s *Service) Close() error {
	if s.producer == nil {
		return nil
	}
	return s.producer.Close()
}
