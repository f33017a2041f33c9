package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
)

// setupStorageWithMock настраивает postgresStorage с моком sqlx.DB
func setupStorageWithMock(t *testing.T) (Storage, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("не удалось создать sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(db, "postgres")

	storage := &postgresStorage{
		db:     sqlxDB,
		tracer: otel.Tracer("postgres-storage-test"),
	}
	return storage, mock
}

// helperTestCustomer - покупатель для тестов
var helperTestCustomer = &model.Customer{
	FirstName:   "Анна",
	LastName:    "Иванова",
	Phone:       "+79991234567",
	HomeAddress: "ул. Ленина, д. 1",
}

// helperNewTestOrder - заказ для тестов
func helperNewTestOrder() *model.Order {
	return &model.Order{
		ID:              "b563feb7-b2b8-4b6f-807c-9b63a11e81b9",
		BouquetID:       7,
		OrderPrice:      2500,
		Status:          model.OrderStatusProcessing,
		DeliveryAddress: "ул. Ленина, д. 1",
		DeliveryTime:    "10:00-12:00",
		CreatedAt:       time.Now(),
	}
}

func TestPostgresStorage_Close(t *testing.T) {
	storage, mock := setupStorageWithMock(t)

	mock.ExpectClose()

	err := storage.Close()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CreateOrder_Success(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()
	customer := *helperTestCustomer
	order := helperNewTestOrder()

	mock.ExpectBegin()

	// 1. Insert покупателя
	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs(customer.FirstName, customer.LastName, customer.Phone, customer.HomeAddress).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	// 2. Insert заказа
	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, int64(1), order.BouquetID, order.OrderPrice, order.Status, order.DeliveryAddress, order.DeliveryDate, order.DeliveryTime, order.Comments, order.CourierID, order.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectCommit()

	err := storage.CreateOrder(ctx, &customer, order)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), order.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CreateOrder_CustomerError_Rollback(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()
	customer := *helperTestCustomer
	mockErr := errors.New("customer insert error")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO customers`).WillReturnError(mockErr)
	mock.ExpectRollback() // Ожидаем откат

	err := storage.CreateOrder(ctx, &customer, helperNewTestOrder())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка сохранения покупателя")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CreateOrder_OrderError_Rollback(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()
	customer := *helperTestCustomer
	mockErr := errors.New("order insert error")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO orders`).WillReturnError(mockErr)
	mock.ExpectRollback()

	err := storage.CreateOrder(ctx, &customer, helperNewTestOrder())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка сохранения заказа")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CreateOrder_CommitError(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()
	customer := *helperTestCustomer
	mockErr := errors.New("commit error")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO orders`).WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectCommit().WillReturnError(mockErr)
	mock.ExpectRollback() // defer сработает на ошибку коммита

	err := storage.CreateOrder(ctx, &customer, helperNewTestOrder())
	assert.Error(t, err)
	assert.Equal(t, mockErr, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_GetBouquet_Success(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "price", "description", "composition", "occasion", "color_scheme", "image_url"}).
		AddRow(7, "Пионы «Нежные»", 2500, "", "Пионы - 9 шт.", model.OccasionBirthday, "Красные", "/media/b.jpg")

	mock.ExpectQuery(`SELECT id, name, price`).WithArgs(int64(7)).WillReturnRows(rows)

	bouquet, err := storage.GetBouquet(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Пионы «Нежные»", bouquet.Name)
	assert.Equal(t, 2500, bouquet.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_GetBouquet_NotFound(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, name, price`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	bouquet, err := storage.GetBouquet(ctx, 404)
	assert.Nil(t, bouquet)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_FindBouquet_NotFound(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, name, price`).
		WithArgs(model.OccasionWedding, 5000, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	bouquet, err := storage.FindBouquet(ctx, model.OccasionWedding, 5000, 0)
	assert.Nil(t, bouquet)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_GetOrder_NotFound(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, customer_id, bouquet_id`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := storage.GetOrder(ctx, "missing")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_TransitionPaymentSucceeded_Transitioned(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE payments SET status`).
		WithArgs(model.PaymentStatusSucceeded, "ext-1", model.PaymentStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	transitioned, err := storage.TransitionPaymentSucceeded(ctx, "ext-1")
	assert.NoError(t, err)
	assert.True(t, transitioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_TransitionPaymentSucceeded_AlreadySucceeded(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	// Платеж уже не pending: условный UPDATE не трогает ни одной строки
	mock.ExpectExec(`UPDATE payments SET status`).
		WithArgs(model.PaymentStatusSucceeded, "ext-1", model.PaymentStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	transitioned, err := storage.TransitionPaymentSucceeded(ctx, "ext-1")
	assert.NoError(t, err)
	assert.False(t, transitioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_GetPaymentByExternalID_NotFound(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, order_id, external_id`).
		WithArgs("ext-ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := storage.GetPaymentByExternalID(ctx, "ext-ghost")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CountOrdersByCourier(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"courier_id", "count"}).
		AddRow(1, 3).
		AddRow(2, 1)

	mock.ExpectQuery(`SELECT courier_id, COUNT`).WillReturnRows(rows)

	counts, err := storage.CountOrdersByCourier(ctx)
	assert.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 3, 2: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CreateConsultation_Success(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()
	customer := *helperTestCustomer
	floristID := int64(4)
	consultation := &model.Consultation{
		FloristID: &floristID,
		CreatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO consultations`).
		WithArgs(int64(2), consultation.FloristID, consultation.CreatedAt, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	err := storage.CreateConsultation(ctx, &customer, consultation)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), consultation.ID)
	assert.Equal(t, int64(2), consultation.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_CountOrdersByBouquet(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"label", "count"}).
		AddRow("Пионы «Нежные»", 2).
		AddRow("Розы «Алые»", 1)

	mock.ExpectQuery(`SELECT b.name AS label`).WillReturnRows(rows)

	report, err := storage.CountOrdersByBouquet(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []model.ReportRow{
		{Label: "Пионы «Нежные»", Count: 2},
		{Label: "Розы «Алые»", Count: 1},
	}, report)
	assert.NoError(t, mock.ExpectationsWereMet())
}
