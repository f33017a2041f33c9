package service

import (
	"context"
	"errors"
	"fmt"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/model"
	"prime-flower-shop/internal/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// QuizService подбирает букет по поводу и бюджету.
type QuizService struct {
	storage database.Storage
	tracer  trace.Tracer
}

// NewQuizService создает сервис квиза.
func NewQuizService(storage database.Storage) *QuizService {
	return &QuizService{
		storage: storage,
		tracer:  otel.Tracer("quiz-service"),
	}
}

// Recommend возвращает первый подходящий букет. Для выбранной ценовой
// категории пустая выборка - это отказ: пользователю сообщается, что
// подходящих букетов нет. Ослабление условий (любой букет повода, затем
// любой букет каталога) применяется только когда категория не выбрана
// или не распознана.
func (s *QuizService) Recommend(ctx context.Context, req model.QuizRequest) (*model.Bouquet, error) {
	ctx, span := s.tracer.Start(ctx, "QuizService.Recommend")
	defer span.End()

	if err := validator.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	}

	minPrice, maxPrice, known := budgetRange(req.Budget)
	if known {
		return s.storage.FindBouquet(ctx, req.Occasion, minPrice, maxPrice)
	}

	bouquet, err := s.storage.FindBouquet(ctx, req.Occasion, 0, 0)
	if err == nil {
		return bouquet, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	return s.storage.FindBouquet(ctx, "", 0, 0)
}

// budgetRange переводит ценовую категорию в вилку цен.
// Границы включительные с обеих сторон. Для нераспознанной категории
// возвращает known=false.
func budgetRange(budget string) (minPrice, maxPrice int, known bool) {
	switch budget {
	case model.BudgetLow:
		return 0, 1000, true
	case model.BudgetMid:
		return 1000, 5000, true
	case model.BudgetHigh:
		return 5000, 0, true
	default:
		return 0, 0, false
	}
}
