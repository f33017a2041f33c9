package service

import (
	"context"
	"fmt"
	"testing"

	"prime-flower-shop/internal/apperr"
	db_mocks "prime-flower-shop/internal/database/mocks"
	"prime-flower-shop/internal/model"
	queue_mocks "prime-flower-shop/internal/queue/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const helperFloristChatID = int64(222)

func setupConsultationService(t *testing.T) (*gomock.Controller, *ConsultationService, *db_mocks.MockStorage, *queue_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	mockQueue := queue_mocks.NewMockPublisher(ctrl)
	svc := NewConsultationService(mockStorage, mockQueue, helperFloristChatID)
	return ctrl, svc, mockStorage, mockQueue
}

func helperConsultationRequest() model.ConsultationRequest {
	return model.ConsultationRequest{
		Name:  "Мария",
		Phone: "+79990001122",
		Email: "maria@example.com",
	}
}

func TestConsultationService_Submit_Success(t *testing.T) {
	ctrl, svc, mockStorage, mockQueue := setupConsultationService(t)
	defer ctrl.Finish()

	florist := model.Florist{ID: 4, Name: "Ольга", TelegramChatID: 888}

	mockStorage.EXPECT().ListFlorists(gomock.Any()).Return([]model.Florist{florist}, nil)
	mockStorage.EXPECT().CountConsultationsByFlorist(gomock.Any()).Return(map[int64]int{}, nil)

	mockStorage.EXPECT().CreateConsultation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customer *model.Customer, c *model.Consultation) error {
			c.ID = 10
			assert.Equal(t, "Мария", customer.FirstName)
			assert.NotNil(t, c.FloristID)
			assert.Equal(t, int64(4), *c.FloristID)
			return nil
		})

	// Уведомление в персональный чат флориста
	mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n model.Notification) {
			assert.Equal(t, int64(888), n.ChatID)
			assert.Equal(t, "consultation", n.Kind)
			assert.Contains(t, n.Text, "Мария")
			assert.Contains(t, n.Text, "Ольга")
		})

	mockStorage.EXPECT().MarkConsultationNotified(gomock.Any(), int64(10)).Return(nil)

	consultation, err := svc.Submit(context.Background(), helperConsultationRequest())
	assert.NoError(t, err)
	assert.True(t, consultation.Notified)
}

func TestConsultationService_Submit_LeastLoadedFlorist(t *testing.T) {
	ctrl, svc, mockStorage, mockQueue := setupConsultationService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().ListFlorists(gomock.Any()).
		Return([]model.Florist{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	mockStorage.EXPECT().CountConsultationsByFlorist(gomock.Any()).
		Return(map[int64]int{1: 5, 2: 2, 3: 4}, nil)

	mockStorage.EXPECT().CreateConsultation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.Customer, c *model.Consultation) error {
			c.ID = 11
			// Назначен флорист 2 (2 заявки)
			assert.Equal(t, int64(2), *c.FloristID)
			return nil
		})
	mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any())
	mockStorage.EXPECT().MarkConsultationNotified(gomock.Any(), int64(11)).Return(nil)

	_, err := svc.Submit(context.Background(), helperConsultationRequest())
	assert.NoError(t, err)
}

func TestConsultationService_Submit_NoFlorists(t *testing.T) {
	ctrl, svc, mockStorage, mockQueue := setupConsultationService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().ListFlorists(gomock.Any()).Return([]model.Florist{}, nil)

	mockStorage.EXPECT().CreateConsultation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.Customer, c *model.Consultation) error {
			c.ID = 12
			assert.Nil(t, c.FloristID)
			return nil
		})

	// Без флориста уведомление уходит в общий чат
	mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n model.Notification) {
			assert.Equal(t, helperFloristChatID, n.ChatID)
			assert.Contains(t, n.Text, "не назначен")
		})
	mockStorage.EXPECT().MarkConsultationNotified(gomock.Any(), int64(12)).Return(nil)

	consultation, err := svc.Submit(context.Background(), helperConsultationRequest())
	assert.NoError(t, err)
	assert.Nil(t, consultation.FloristID)
}

func TestConsultationService_Submit_InvalidPhone(t *testing.T) {
	ctrl, svc, _, _ := setupConsultationService(t)
	defer ctrl.Finish()

	req := helperConsultationRequest()
	req.Phone = "79990001122"

	consultation, err := svc.Submit(context.Background(), req)
	assert.Nil(t, consultation)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestConsultationService_Submit_InvalidEmail(t *testing.T) {
	ctrl, svc, _, _ := setupConsultationService(t)
	defer ctrl.Finish()

	req := helperConsultationRequest()
	req.Email = "not-an-email"

	consultation, err := svc.Submit(context.Background(), req)
	assert.Nil(t, consultation)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestConsultationService_Submit_StorageError(t *testing.T) {
	ctrl, svc, mockStorage, mockQueue := setupConsultationService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().ListFlorists(gomock.Any()).Return([]model.Florist{{ID: 1}}, nil)
	mockStorage.EXPECT().CountConsultationsByFlorist(gomock.Any()).Return(map[int64]int{}, nil)
	mockStorage.EXPECT().CreateConsultation(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("ошибка сохранения консультации"))

	// Уведомление не ставится в очередь
	mockQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(0)

	consultation, err := svc.Submit(context.Background(), helperConsultationRequest())
	assert.Nil(t, consultation)
	assert.Error(t, err)
}
