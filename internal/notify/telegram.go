package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"prime-flower-shop/internal/config"
	"prime-flower-shop/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=telegram.go -destination=./mocks/client_mock.go -package=mocks Client

// Client определяет интерфейс отправки уведомлений сотрудникам.
// Ошибка отправки не покидает границу шлюза уведомлений:
// диспетчер очереди логирует ее и продолжает работу, пользовательские
// запросы никогда не падают из-за проблем с доставкой.
type Client interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// telegramClient отправляет сообщения через Telegram Bot API.
type telegramClient struct {
	botToken string
	apiURL   string
	client   *http.Client
	tracer   trace.Tracer // Для трассировки
}

// NewTelegram создает клиент Telegram Bot API.
func NewTelegram(cfg config.TelegramConfig) Client {
	return &telegramClient{
		botToken: cfg.BotToken,
		apiURL:   cfg.APIURL,
		client:   &http.Client{Timeout: 5 * time.Second},
		tracer:   otel.Tracer("telegram-client"),
	}
}

type sendMessageBody struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send отправляет сообщение в чат. Из ответа используется только
// HTTP-статус.
func (t *telegramClient) Send(ctx context.Context, chatID int64, text string) error {
	ctx, span := t.tracer.Start(ctx, "Telegram.Send")
	defer span.End()

	payload, err := json.Marshal(sendMessageBody{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("не удалось сериализовать сообщение: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("не удалось создать запрос: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("запрос к Telegram не удался: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("telegram ответил статусом %d", resp.StatusCode)
	}

	metrics.NotificationsSent.WithLabelValues("success").Inc()
	return nil
}
