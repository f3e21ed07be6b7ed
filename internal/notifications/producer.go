package notifications

import (
	"context"
	"fmt"
	"time"

	"beeos/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer defines the contract for publishing checkout notifications
type Producer interface {
	Publish(ctx context.Context, notification *CheckoutNotification) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// KafkaProducerConfig contains configuration for the Kafka producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "checkout-notifications",
		RetryMax:         3,
		TimeoutMs:        10000,             // 10 seconds
		RequiredAcks:     sarama.WaitForAll, // Wait for all in-sync replicas
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

// KafkaProducer publishes checkout notifications to Kafka
type KafkaProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

// NewKafkaProducer creates a new Kafka notification producer
func NewKafkaProducer(config *KafkaProducerConfig, log *logger.Logger) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps each user's notifications on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("kafka notification producer created", "brokers", config.Brokers, "topic", config.Topic)

	return &KafkaProducer{
		producer: producer,
		config:   config,
		log:      log,
	}, nil
}

// Publish publishes a single notification to Kafka
func (kp *KafkaProducer) Publish(ctx context.Context, notification *CheckoutNotification) error {
	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.Topic,
		Key:       sarama.StringEncoder(notification.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(notification),
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	kp.log.Debug("notification published",
		"topic", kp.config.Topic,
		"partition", partition,
		"offset", offset,
		"kind", notification.Kind,
		"user_id", notification.UserID,
	)

	return nil
}

func (kp *KafkaProducer) createHeaders(notification *CheckoutNotification) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
		{Key: []byte("kind"), Value: []byte(notification.Kind)},
		{Key: []byte("user_id"), Value: []byte(notification.UserID)},
		{Key: []byte("producer"), Value: []byte("beeos-checkout")},
		{Key: []byte("created_at"), Value: []byte(notification.CreatedAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer
func (kp *KafkaProducer) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		kp.log.Info("kafka notification producer closed")
	}
	return nil
}

// HealthCheck validates the producer configuration without sending traffic
func (kp *KafkaProducer) HealthCheck(ctx context.Context) error {
	if kp.producer == nil {
		return fmt.Errorf("health check failed: producer is nil")
	}
	if kp.config.Topic == "" {
		return fmt.Errorf("health check failed: notification topic not configured")
	}
	return nil
}
