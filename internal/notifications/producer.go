package notifications

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"saunie/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher hands booking events to whoever listens downstream
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the booking event producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	ClientID         string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "seat-bookings",
		ClientID:         "saunie-console",
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// KafkaPublisher publishes booking events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a synchronous producer against the configured brokers
func NewKafkaPublisher(config *KafkaProducerConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = config.ClientID

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	// idempotent producers require a single in-flight request
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// hash partitioner so one trip's events stay ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.GetDefault().Info("Kafka booking event producer created", "brokers", config.Brokers, "topic", config.Topic)
	return NewKafkaPublisherWithProducer(producer, config.Topic), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (kp *KafkaPublisher) PublishBookingEvent(ctx context.Context, event *BookingEvent) error {
	message, err := kp.buildMessage(event)
	if err != nil {
		return err
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	logger.GetDefault().InfoWithContext(ctx, "Booking event published", map[string]interface{}{
		"topic":      kp.topic,
		"partition":  partition,
		"offset":     offset,
		"event_type": string(event.Type),
		"trip_id":    event.TripID.String(),
	})
	return nil
}

func (kp *KafkaPublisher) buildMessage(event *BookingEvent) (*sarama.ProducerMessage, error) {
	payload, err := event.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic:     kp.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   kp.createHeaders(event),
		Timestamp: event.OccurredAt,
	}, nil
}

func (kp *KafkaPublisher) createHeaders(event *BookingEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("trip_id"), Value: []byte(event.TripID.String())},
		{Key: []byte("booking_id"), Value: []byte(event.BookingID.String())},
		{Key: []byte("seat_number"), Value: []byte(strconv.Itoa(event.SeatNumber))},
		{Key: []byte("version"), Value: []byte("1.0")},
		{Key: []byte("producer"), Value: []byte("saunie-console")},
	}
}

func (kp *KafkaPublisher) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		logger.GetDefault().Info("Kafka booking event producer closed")
	}
	return nil
}

// LogPublisher writes events to the log; used when Kafka is disabled
type LogPublisher struct {
	logger *logger.Logger
}

func NewLogPublisher(l *logger.Logger) *LogPublisher {
	if l == nil {
		l = logger.GetDefault()
	}
	return &LogPublisher{logger: l}
}

func (lp *LogPublisher) PublishBookingEvent(ctx context.Context, event *BookingEvent) error {
	lp.logger.InfoWithContext(ctx, "Booking event", map[string]interface{}{
		"event_id":    event.ID.String(),
		"event_type":  string(event.Type),
		"trip_id":     event.TripID.String(),
		"booking_id":  event.BookingID.String(),
		"patron_id":   event.PatronID.String(),
		"seat_number": event.SeatNumber,
	})
	return nil
}

func (lp *LogPublisher) Close() error { return nil }
