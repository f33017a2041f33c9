package queue

import (
	"context"
	"encoding/json"
	"log"

	"prime-flower-shop/internal/config"
	"prime-flower-shop/internal/metrics"
	"prime-flower-shop/internal/model"
	"prime-flower-shop/internal/notify"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// messageReader абстрагирует kafka.Reader для тестов.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Dispatcher читает уведомления из очереди и отправляет их в Telegram.
type Dispatcher struct {
	reader    messageReader
	dlqWriter *kafka.Writer // Продюсер для отправки "битых" сообщений в DLQ
	sender    notify.Client
	tracer    trace.Tracer // Для трассировки
}

// NewDispatcher создает новый экземпляр Dispatcher.
func NewDispatcher(cfg config.KafkaConfig, sender notify.Client) *Dispatcher {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты выполняются вручную после обработки.
	})

	// Продюсер для DLQ
	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Dispatcher{
		reader:    reader,
		dlqWriter: dlqWriter,
		sender:    sender,
		tracer:    otel.Tracer("notification-dispatcher"),
	}
}

// Run запускает цикл чтения уведомлений из очереди.
func (d *Dispatcher) Run(ctx context.Context) {
	log.Println("Диспетчер уведомлений запущен...")
	defer func() {
		if err := d.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := d.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("Диспетчер уведомлений останавливается.")
			return
		default:
			// FetchMessage используется для ручного контроля коммитов
			msg, err := d.reader.FetchMessage(ctx)
			if err != nil {
				log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
				continue
			}

			// Доставка best-effort: сообщение коммитится в любом исходе.
			d.processMessage(ctx, msg)
			if err := d.reader.CommitMessages(ctx, msg); err != nil {
				log.Printf("Ошибка коммита сообщения: %v", err)
			}
		}
	}
}

// processMessage десериализует уведомление и отправляет его адресату.
// Ошибка отправки логируется и глотается: уведомления best-effort,
// повторная доставка им не положена. "Битый" JSON уходит в DLQ.
func (d *Dispatcher) processMessage(ctx context.Context, msg kafka.Message) {
	ctx, span := d.tracer.Start(ctx, "Dispatcher.processMessage")
	defer span.End()

	var n model.Notification
	if err := json.Unmarshal(msg.Value, &n); err != nil {
		log.Printf("Невалидное JSON-сообщение, отправка в DLQ: %v", err)
		d.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.NotificationsSent.WithLabelValues("dlq").Inc()
		return
	}

	if n.ChatID == 0 {
		log.Printf("Уведомление (%s) без чата адресата, пропускаем.", n.Kind)
		return
	}

	if err := d.sender.Send(ctx, n.ChatID, n.Text); err != nil {
		log.Printf("Ошибка отправки уведомления (%s) в чат %d: %v", n.Kind, n.ChatID, err)
		return
	}

	log.Printf("Уведомление (%s) отправлено в чат %d.", n.Kind, n.ChatID)
}

// sendToDLQ отправляет "битое" сообщение в DLQ топик.
func (d *Dispatcher) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := d.tracer.Start(ctx, "Dispatcher.sendToDLQ")
	defer span.End()

	// Отправляем сообщение в DLQ с доп. заголовками об ошибке
	err := d.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить сообщение %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.NotificationsSent.WithLabelValues("dlq_failed_write").Inc()
	} else {
		log.Printf("Сообщение %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
