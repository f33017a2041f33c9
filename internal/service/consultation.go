package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/model"
	"prime-flower-shop/internal/queue"
	"prime-flower-shop/internal/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ConsultationService реализует прием заявок на консультацию флориста.
type ConsultationService struct {
	storage       database.Storage
	notifications queue.Publisher
	floristChatID int64 // Общий чат флористов, если персональный не настроен
	tracer        trace.Tracer
}

// NewConsultationService создает сервис консультаций.
func NewConsultationService(storage database.Storage, notifications queue.Publisher, floristChatID int64) *ConsultationService {
	return &ConsultationService{
		storage:       storage,
		notifications: notifications,
		floristChatID: floristChatID,
		tracer:        otel.Tracer("consultation-service"),
	}
}

// Submit принимает заявку: создает покупателя, назначает наименее
// загруженного флориста и ставит в очередь уведомление. Заявка
// помечается notified безусловно после попытки отправки - для
// покупателя неуспех уведомления неотличим от успеха.
func (s *ConsultationService) Submit(ctx context.Context, req model.ConsultationRequest) (*model.Consultation, error) {
	ctx, span := s.tracer.Start(ctx, "ConsultationService.Submit")
	defer span.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	}
	if !validator.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: телефон должен начинаться с '+' и кода страны", apperr.ErrValidation)
	}

	florist, err := s.leastLoadedFlorist(ctx)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		FirstName: req.Name,
		Phone:     req.Phone,
	}
	consultation := &model.Consultation{
		CreatedAt: time.Now(),
	}
	if florist != nil {
		consultation.FloristID = &florist.ID
	}

	if err := s.storage.CreateConsultation(ctx, customer, consultation); err != nil {
		return nil, err
	}

	chatID := s.floristChatID
	floristName := "не назначен"
	if florist != nil {
		floristName = florist.Name
		if florist.TelegramChatID != 0 {
			chatID = florist.TelegramChatID
		}
	}

	s.notifications.Enqueue(ctx, model.Notification{
		ChatID: chatID,
		Text: fmt.Sprintf("Новая заявка на консультацию\nИмя: %s\nТелефон: %s\nEmail: %s\nФлорист: %s",
			req.Name, req.Phone, req.Email, floristName),
		Kind: "consultation",
	})

	// Флаг ставим после попытки отправки, независимо от ее исхода.
	if err := s.storage.MarkConsultationNotified(ctx, consultation.ID); err != nil {
		log.Printf("Не удалось пометить консультацию %d: %v", consultation.ID, err)
	}
	consultation.Notified = true

	log.Printf("Заявка на консультацию %d создана (флорист: %s).", consultation.ID, floristName)
	return consultation, nil
}

// leastLoadedFlorist выбирает флориста с наименьшим числом заявок.
// Ничьи разрешаются стабильным порядком справочника (по id).
func (s *ConsultationService) leastLoadedFlorist(ctx context.Context) (*model.Florist, error) {
	florists, err := s.storage.ListFlorists(ctx)
	if err != nil {
		return nil, err
	}
	if len(florists) == 0 {
		return nil, nil
	}

	counts, err := s.storage.CountConsultationsByFlorist(ctx)
	if err != nil {
		return nil, err
	}

	best := florists[0]
	bestCount := counts[best.ID]
	for _, f := range florists[1:] {
		if counts[f.ID] < bestCount {
			best = f
			bestCount = counts[f.ID]
		}
	}
	return &best, nil
}
