package service

import (
	"context"
	"fmt"
	"testing"

	"prime-flower-shop/internal/apperr"
	db_mocks "prime-flower-shop/internal/database/mocks"
	"prime-flower-shop/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var helperNotFound = fmt.Errorf("подходящий букет: %w", apperr.ErrNotFound)

func setupQuizService(t *testing.T) (*gomock.Controller, *QuizService, *db_mocks.MockStorage) {
	ctrl := gomock.NewController(t)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	return ctrl, NewQuizService(mockStorage), mockStorage
}

func TestQuizService_Recommend_ExactMatch(t *testing.T) {
	ctrl, svc, mockStorage := setupQuizService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionBirthday, 1000, 5000).
		Return(helperTestBouquet, nil)

	bouquet, err := svc.Recommend(context.Background(), model.QuizRequest{
		Occasion: model.OccasionBirthday,
		Budget:   model.BudgetMid,
	})
	assert.NoError(t, err)
	assert.Equal(t, helperTestBouquet.ID, bouquet.ID)
}

func TestQuizService_Recommend_BudgetRanges(t *testing.T) {
	tests := []struct {
		budget   string
		minPrice int
		maxPrice int
	}{
		{model.BudgetLow, 0, 1000},
		{model.BudgetMid, 1000, 5000},
		{model.BudgetHigh, 5000, 0},
	}

	for _, tc := range tests {
		t.Run(tc.budget, func(t *testing.T) {
			ctrl, svc, mockStorage := setupQuizService(t)
			defer ctrl.Finish()

			mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionWedding, tc.minPrice, tc.maxPrice).
				Return(helperTestBouquet, nil)

			_, err := svc.Recommend(context.Background(), model.QuizRequest{
				Occasion: model.OccasionWedding,
				Budget:   tc.budget,
			})
			assert.NoError(t, err)
		})
	}
}

func TestQuizService_Recommend_KnownBudget_NoMatch(t *testing.T) {
	ctrl, svc, mockStorage := setupQuizService(t)
	defer ctrl.Finish()

	// Для выбранной категории пустая выборка - отказ без ослабления условий
	mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionBirthday, 5000, 0).
		Return(nil, helperNotFound)
	mockStorage.EXPECT().FindBouquet(gomock.Any(), gomock.Any(), 0, 0).Times(0)

	bouquet, err := svc.Recommend(context.Background(), model.QuizRequest{
		Occasion: model.OccasionBirthday,
		Budget:   model.BudgetHigh,
	})
	assert.Nil(t, bouquet)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuizService_Recommend_NoBudget_FallbackToOccasion(t *testing.T) {
	ctrl, svc, mockStorage := setupQuizService(t)
	defer ctrl.Finish()

	// Категория не выбрана: сначала любой букет повода
	mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionBirthday, 0, 0).
		Return(helperTestBouquet, nil)

	bouquet, err := svc.Recommend(context.Background(), model.QuizRequest{
		Occasion: model.OccasionBirthday,
	})
	assert.NoError(t, err)
	assert.NotNil(t, bouquet)
}

func TestQuizService_Recommend_NoBudget_FallbackToAnyBouquet(t *testing.T) {
	ctrl, svc, mockStorage := setupQuizService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionSchool, 0, 0).
		Return(nil, helperNotFound)
	// Последняя ступень: любой букет каталога
	mockStorage.EXPECT().FindBouquet(gomock.Any(), "", 0, 0).
		Return(helperTestBouquet, nil)

	bouquet, err := svc.Recommend(context.Background(), model.QuizRequest{
		Occasion: model.OccasionSchool,
	})
	assert.NoError(t, err)
	assert.NotNil(t, bouquet)
}

func TestQuizService_Recommend_UnknownBudget_TreatedAsNoBudget(t *testing.T) {
	ctrl, svc, mockStorage := setupQuizService(t)
	defer ctrl.Finish()

	// Нераспознанная категория равносильна невыбранной
	mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionWedding, 0, 0).
		Return(helperTestBouquet, nil)

	_, err := svc.Recommend(context.Background(), model.QuizRequest{
		Occasion: model.OccasionWedding,
		Budget:   "сколько угодно",
	})
	assert.NoError(t, err)
}

func TestQuizService_Recommend_EmptyCatalog(t *testing.T) {
	ctrl, svc, mockStorage := setupQuizService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().FindBouquet(gomock.Any(), model.OccasionNoReason, 0, 0).
		Return(nil, helperNotFound)
	mockStorage.EXPECT().FindBouquet(gomock.Any(), "", 0, 0).
		Return(nil, helperNotFound)

	bouquet, err := svc.Recommend(context.Background(), model.QuizRequest{
		Occasion: model.OccasionNoReason,
	})
	assert.Nil(t, bouquet)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuizService_Recommend_MissingOccasion(t *testing.T) {
	ctrl, svc, _ := setupQuizService(t)
	defer ctrl.Finish()

	_, err := svc.Recommend(context.Background(), model.QuizRequest{Budget: model.BudgetLow})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
