package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/metrics"
	"prime-flower-shop/internal/model"
	"prime-flower-shop/internal/payment"
	"prime-flower-shop/internal/queue"
	"prime-flower-shop/internal/validator"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Событие провайдера об успешной оплате. Остальные типы событий
// принимаются и игнорируются: провайдер доставляет at-least-once.
const eventPaymentSucceeded = "payment.succeeded"

// PaymentFailedError сообщает, что заказ сохранен, но платеж у
// провайдера создать не удалось. OrderID нужен клиенту для повторной
// попытки оплаты.
type PaymentFailedError struct {
	OrderID string
	Err     error
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("оплата заказа %s не создана: %v", e.OrderID, e.Err)
}

func (e *PaymentFailedError) Unwrap() error {
	return e.Err
}

// OrderService реализует процесс заказа: оформление, создание платежа
// у провайдера, сверку по вебхуку и статус для страницы возврата.
type OrderService struct {
	storage        database.Storage
	payments       payment.Client
	notifications  queue.Publisher
	fallbackChatID int64 // Чат для уведомлений, когда курьер не назначен
	tracer         trace.Tracer
}

// NewOrderService создает сервис заказов.
func NewOrderService(storage database.Storage, payments payment.Client, notifications queue.Publisher, fallbackChatID int64) *OrderService {
	return &OrderService{
		storage:        storage,
		payments:       payments,
		notifications:  notifications,
		fallbackChatID: fallbackChatID,
		tracer:         otel.Tracer("order-service"),
	}
}

// CreateOrder оформляет заказ: валидирует форму, создает покупателя и
// заказ (одной транзакцией), затем создает платеж у провайдера.
// Заказ коммитится до обращения к провайдеру, поэтому при сбое оплаты
// заказ остается без платежа - покупатель может повторить оплату.
func (s *OrderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.CreatedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	}
	if !validator.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: телефон должен начинаться с '+' и кода страны", apperr.ErrValidation)
	}
	if !validDeliveryWindow(req.DeliveryTime) {
		return nil, fmt.Errorf("%w: недопустимое время доставки %q", apperr.ErrValidation, req.DeliveryTime)
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: некорректная дата доставки %q", apperr.ErrValidation, req.DeliveryDate)
		}
		deliveryDate = &parsed
	}

	bouquet, err := s.storage.GetBouquet(ctx, req.BouquetID)
	if err != nil {
		return nil, err
	}

	courierID, err := s.leastLoadedCourier(ctx)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		HomeAddress: req.DeliveryAddress,
	}
	order := &model.Order{
		ID:              uuid.New().String(),
		BouquetID:       bouquet.ID,
		OrderPrice:      bouquet.Price, // Цена фиксируется на момент заказа
		Status:          model.OrderStatusProcessing,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    deliveryDate,
		DeliveryTime:    req.DeliveryTime,
		Comments:        req.Comments,
		CourierID:       courierID,
		CreatedAt:       time.Now(),
	}

	if err := s.storage.CreateOrder(ctx, customer, order); err != nil {
		return nil, err
	}
	log.Printf("Заказ %s создан (букет %q, курьер %v).", order.ID, bouquet.Name, courierID)

	return s.createPayment(ctx, order, bouquet.Name)
}

// RetryPayment повторно создает платеж для заказа, оставшегося без
// платежа после сбоя провайдера. Заказ не дублируется, а ключ
// идемпотентности выводится из id заказа, так что и удаленный платеж
// не задвоится.
func (s *OrderService) RetryPayment(ctx context.Context, orderID string) (*model.CreatedOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.RetryPayment")
	defer span.End()

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPaymentByOrder(ctx, orderID); err == nil {
		return nil, fmt.Errorf("%w: платеж по заказу уже создан", apperr.ErrValidation)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	bouquet, err := s.storage.GetBouquet(ctx, order.BouquetID)
	if err != nil {
		return nil, err
	}

	return s.createPayment(ctx, order, bouquet.Name)
}

// createPayment создает платеж у провайдера и сохраняет его локально.
func (s *OrderService) createPayment(ctx context.Context, order *model.Order, bouquetName string) (*model.CreatedOrder, error) {
	intent, err := s.payments.CreateIntent(ctx, payment.IntentRequest{
		OrderID:     order.ID,
		Amount:      order.OrderPrice,
		Description: fmt.Sprintf("Букет %q, заказ %s", bouquetName, order.ID),
	})
	if err != nil {
		// Заказ уже сохранен; платежа нет. Покупателю показывается
		// ошибка оплаты с возможностью повторить.
		return nil, &PaymentFailedError{OrderID: order.ID, Err: err}
	}

	p := &model.Payment{
		OrderID:    order.ID,
		ExternalID: intent.ID,
		Status:     intent.Status, // Зеркалируем статус провайдера
		Amount:     order.OrderPrice,
		CreatedAt:  time.Now(),
	}
	if err := s.storage.SavePayment(ctx, p); err != nil {
		return nil, err
	}
	log.Printf("Платеж %s создан для заказа %s (статус %s).", intent.ID, order.ID, intent.Status)

	return &model.CreatedOrder{
		OrderID:         order.ID,
		ConfirmationURL: intent.ConfirmationURL,
	}, nil
}

// ReconcileWebhook сверяет локальный платеж с событием провайдера.
// Контракт вебхука: 400 только на структурно битое тело, все остальные
// исходы - успех, чтобы провайдер не ретраил понапрасну.
func (s *OrderService) ReconcileWebhook(ctx context.Context, payload []byte) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.ReconcileWebhook")
	defer span.End()

	var event model.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		metrics.WebhooksProcessed.WithLabelValues("bad_payload").Inc()
		return fmt.Errorf("%w: %w", apperr.ErrBadPayload, err)
	}
	if event.Event == "" || event.Object.ID == "" {
		metrics.WebhooksProcessed.WithLabelValues("bad_payload").Inc()
		return fmt.Errorf("%w: отсутствуют обязательные поля события", apperr.ErrBadPayload)
	}

	if event.Event != eventPaymentSucceeded {
		metrics.WebhooksProcessed.WithLabelValues("ignored").Inc()
		return nil
	}

	p, err := s.storage.GetPaymentByExternalID(ctx, event.Object.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Вебхук по неизвестному платежу: отвечаем успехом,
			// чтобы не провоцировать бесконечные повторы доставки.
			log.Printf("Вебхук по неизвестному платежу %s, игнорируем.", event.Object.ID)
			metrics.WebhooksProcessed.WithLabelValues("unknown_payment").Inc()
			return nil
		}
		return err
	}

	transitioned, err := s.storage.TransitionPaymentSucceeded(ctx, event.Object.ID)
	if err != nil {
		return err
	}
	if !transitioned {
		// Повторная доставка: платеж уже succeeded, состояние не трогаем.
		metrics.WebhooksProcessed.WithLabelValues("duplicate").Inc()
		return nil
	}

	if err := s.storage.UpdateOrderStatus(ctx, p.OrderID, model.OrderStatusAssembling); err != nil {
		// Платеж (источник истины) уже переведен; статус заказа
		// поправят сотрудники. Вебхук не фейлим.
		log.Printf("Не удалось обновить статус заказа %s: %v", p.OrderID, err)
	}

	s.notifyCourier(ctx, p)
	metrics.WebhooksProcessed.WithLabelValues("succeeded").Inc()
	return nil
}

// notifyCourier ставит в очередь уведомление назначенному курьеру
// (или в резервный чат). Любые проблемы здесь не влияют на ответ
// провайдеру.
func (s *OrderService) notifyCourier(ctx context.Context, p *model.Payment) {
	chatID := s.fallbackChatID

	order, err := s.storage.GetOrder(ctx, p.OrderID)
	if err != nil {
		log.Printf("Не удалось получить заказ %s для уведомления: %v", p.OrderID, err)
		order = nil
	}

	text := fmt.Sprintf("Оплачен заказ %s на %d руб.", p.OrderID, p.Amount)
	if order != nil {
		text = fmt.Sprintf("Оплачен заказ %s на %d руб.\nАдрес: %s\nВремя: %s",
			order.ID, p.Amount, order.DeliveryAddress, order.DeliveryTime)

		if order.CourierID != nil {
			courier, err := s.storage.GetCourier(ctx, *order.CourierID)
			if err != nil {
				log.Printf("Не удалось получить курьера %d: %v", *order.CourierID, err)
			} else if courier.TelegramChatID != 0 {
				chatID = courier.TelegramChatID
			}
		}
	}

	s.notifications.Enqueue(ctx, model.Notification{
		ChatID: chatID,
		Text:   text,
		Kind:   "order_paid",
	})
}

// PaymentStatus возвращает бинарный статус оплаты для страницы,
// на которую покупатель возвращается от провайдера. Ничего не мутирует:
// статус меняет только вебхук.
func (s *OrderService) PaymentStatus(ctx context.Context, orderID string) (*model.PaymentStatusView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PaymentStatus")
	defer span.End()

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	p, err := s.storage.GetPaymentByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	view := &model.PaymentStatusView{OrderID: order.ID}
	if p.Status == model.PaymentStatusSucceeded {
		view.Paid = true
		view.Message = "Оплата успешно обработана! Заказ принят."
	} else {
		view.Message = "Оплата не подтверждена. Проверьте данные и попробуйте еще раз."
	}
	return view, nil
}

// leastLoadedCourier выбирает курьера с наименьшим числом привязанных
// заказов. Ничьи разрешаются стабильным порядком справочника (по id).
// Пустой справочник - заказ остается без курьера.
func (s *OrderService) leastLoadedCourier(ctx context.Context) (*int64, error) {
	couriers, err := s.storage.ListCouriers(ctx)
	if err != nil {
		return nil, err
	}
	if len(couriers) == 0 {
		return nil, nil
	}

	counts, err := s.storage.CountOrdersByCourier(ctx)
	if err != nil {
		return nil, err
	}

	best := couriers[0].ID
	bestCount := counts[best]
	for _, c := range couriers[1:] {
		if counts[c.ID] < bestCount {
			best = c.ID
			bestCount = counts[c.ID]
		}
	}
	return &best, nil
}

// validDeliveryWindow проверяет время доставки по фиксированному набору.
func validDeliveryWindow(window string) bool {
	for _, w := range model.DeliveryWindows {
		if w == window {
			return true
		}
	}
	return false
}
