package queue

import (
	"context"
	"encoding/json"
	"log"

	"prime-flower-shop/internal/config"
	"prime-flower-shop/internal/metrics"
	"prime-flower-shop/internal/model"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=publisher.go -destination=./mocks/publisher_mock.go -package=mocks Publisher

// Publisher ставит уведомления в очередь на отправку.
// Постановка fire-and-forget: ошибки логируются и глотаются,
// пользовательский запрос никогда не ждет и не падает из-за очереди.
type Publisher interface {
	Enqueue(ctx context.Context, n model.Notification)
	Close() error
}

// kafkaPublisher пишет уведомления в Kafka-топик.
type kafkaPublisher struct {
	writer *kafka.Writer
	tracer trace.Tracer // Для трассировки
}

// NewPublisher создает продюсер очереди уведомлений.
func NewPublisher(cfg config.KafkaConfig) Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &kafkaPublisher{
		writer: writer,
		tracer: otel.Tracer("notification-publisher"),
	}
}

// Enqueue сериализует уведомление и отправляет его в топик.
func (p *kafkaPublisher) Enqueue(ctx context.Context, n model.Notification) {
	ctx, span := p.tracer.Start(ctx, "Publisher.Enqueue")
	defer span.End()

	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("Ошибка сериализации уведомления (%s): %v", n.Kind, err)
		metrics.NotificationsEnqueued.WithLabelValues("error").Inc()
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.Kind),
		Value: payload,
	})
	if err != nil {
		log.Printf("Ошибка отправки уведомления в очередь (%s): %v", n.Kind, err)
		metrics.NotificationsEnqueued.WithLabelValues("error").Inc()
		return
	}

	metrics.NotificationsEnqueued.WithLabelValues("success").Inc()
}

// Close закрывает Kafka writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
