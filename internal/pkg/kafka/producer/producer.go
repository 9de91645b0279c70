package producer

import (
	"context"
	"encoding/json"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Producer publishes refinance-application audit events. Publication is
// fire-and-forget: a broker outage never affects the request that created
// the application.
type Producer struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaProducer(broker, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  broker,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0,
	})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// PublishApplicationCreated emits one audit event keyed by agreement id.
func (p *Producer) PublishApplicationCreated(ctx context.Context, event models.ApplicationAuditEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.AgreementID),
		Value:          value,
	}

	if err := p.producer.Produce(message, nil); err != nil {
		logger.Error(ctx, "failed to publish application audit event: %v", err)
		return err
	}
	logger.Info(ctx, "published application audit event for agreement %s", event.AgreementID)
	return nil
}

func (p *Producer) Close() {
	p.producer.Flush(15 * 1000)
	p.producer.Close()
}
