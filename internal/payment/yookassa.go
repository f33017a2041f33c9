package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/config"
	"prime-flower-shop/internal/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=yookassa.go -destination=./mocks/client_mock.go -package=mocks Client

// Client определяет интерфейс платежного провайдера.
type Client interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// IntentRequest - данные для создания платежа у провайдера.
type IntentRequest struct {
	OrderID     string
	Amount      int // Сумма в рублях
	Description string
}

// Intent - созданный у провайдера платеж.
type Intent struct {
	ID              string
	Status          string
	ConfirmationURL string // Страница оплаты, куда редиректим покупателя
}

// Пространство имен для детерминированного ключа идемпотентности.
var keyNamespace = uuid.MustParse("5e0ef0b4-3a44-44f1-9a6c-02a1b2c3d4e5")

// IdempotencyKey выводит ключ идемпотентности из идентификатора заказа
// (UUID v5). Повтор запроса для того же заказа получает тот же ключ,
// поэтому ретрай после сетевого сбоя не создает дубликат платежа.
func IdempotencyKey(orderID string) string {
	return uuid.NewSHA1(keyNamespace, []byte(orderID)).String()
}

// yookassaClient обращается к API ЮKassa.
type yookassaClient struct {
	shopID    string
	secretKey string
	apiURL    string
	returnURL string
	client    *http.Client
	tracer    trace.Tracer // Для трассировки
}

// NewClient создает клиент платежного провайдера.
// Таймаут ограничивает время ожидания ответа: поток запроса
// не должен висеть на медленном провайдере бесконечно.
func NewClient(cfg config.YookassaConfig) Client {
	return &yookassaClient{
		shopID:    cfg.ShopID,
		secretKey: cfg.SecretKey,
		apiURL:    cfg.APIURL,
		returnURL: cfg.ReturnURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		tracer:    otel.Tracer("yookassa-client"),
	}
}

// Тела запроса/ответа API ЮKassa.
type intentBody struct {
	Amount struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
	} `json:"amount"`
	Capture      bool `json:"capture"`
	Confirmation struct {
		Type      string `json:"type"`
		ReturnURL string `json:"return_url"`
	} `json:"confirmation"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

type intentResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Confirmation struct {
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"confirmation"`
}

// CreateIntent создает платеж у провайдера и возвращает ссылку
// на страницу подтверждения оплаты.
func (c *yookassaClient) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	ctx, span := c.tracer.Start(ctx, "Yookassa.CreateIntent")
	defer span.End()

	var body intentBody
	body.Amount.Value = fmt.Sprintf("%d.00", req.Amount)
	body.Amount.Currency = "RUB"
	body.Capture = true
	body.Confirmation.Type = "redirect"
	body.Confirmation.ReturnURL = c.returnURL
	body.Description = req.Description
	body.Metadata = map[string]string{"order_id": req.OrderID}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать платеж: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("не удалось создать запрос: %w", err)
	}
	httpReq.SetBasicAuth(c.shopID, c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotence-Key", IdempotencyKey(req.OrderID))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.PaymentsCreated.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("запрос к провайдеру не удался: %w: %w", apperr.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.PaymentsCreated.WithLabelValues("error").Inc()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("провайдер ответил %d: %s: %w", resp.StatusCode, string(respBody), apperr.ErrExternalService)
	}

	var parsed intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.PaymentsCreated.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("не удалось разобрать ответ провайдера: %w: %w", apperr.ErrExternalService, err)
	}

	metrics.PaymentsCreated.WithLabelValues("success").Inc()
	return &Intent{
		ID:              parsed.ID,
		Status:          parsed.Status,
		ConfirmationURL: parsed.Confirmation.ConfirmationURL,
	}, nil
}
