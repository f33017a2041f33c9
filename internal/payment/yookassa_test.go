package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyKey_Deterministic(t *testing.T) {
	// Ключ выводится из id заказа: ретрай получает тот же ключ
	key1 := IdempotencyKey("order-1")
	key2 := IdempotencyKey("order-1")
	assert.Equal(t, key1, key2)

	// Разные заказы - разные ключи
	assert.NotEqual(t, key1, IdempotencyKey("order-2"))
}

func newTestClient(apiURL string) Client {
	return NewClient(config.YookassaConfig{
		ShopID:    "shop-123",
		SecretKey: "secret-key",
		APIURL:    apiURL,
		ReturnURL: "http://localhost:8081/order-complete",
	})
}

func TestYookassaClient_CreateIntent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)

		// Basic-авторизация реквизитами магазина
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "shop-123", user)
		assert.Equal(t, "secret-key", pass)

		// Ключ идемпотентности детерминирован по заказу
		assert.Equal(t, IdempotencyKey("order-1"), r.Header.Get("Idempotence-Key"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		amount := body["amount"].(map[string]interface{})
		assert.Equal(t, "2500.00", amount["value"])
		assert.Equal(t, "RUB", amount["currency"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ext-123",
			"status": "pending",
			"confirmation": {"confirmation_url": "https://pay.example/confirm"}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	intent, err := client.CreateIntent(context.Background(), IntentRequest{
		OrderID:     "order-1",
		Amount:      2500,
		Description: "Букет «Пионы», заказ order-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ext-123", intent.ID)
	assert.Equal(t, "pending", intent.Status)
	assert.Equal(t, "https://pay.example/confirm", intent.ConfirmationURL)
}

func TestYookassaClient_CreateIntent_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type": "error"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	intent, err := client.CreateIntent(context.Background(), IntentRequest{
		OrderID: "order-1",
		Amount:  2500,
	})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, apperr.ErrExternalService)
}

func TestYookassaClient_CreateIntent_TransportError(t *testing.T) {
	// Сервер закрыт - транспортная ошибка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	intent, err := client.CreateIntent(context.Background(), IntentRequest{
		OrderID: "order-1",
		Amount:  2500,
	})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, apperr.ErrExternalService)
}

func TestYookassaClient_CreateIntent_BadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	intent, err := client.CreateIntent(context.Background(), IntentRequest{
		OrderID: "order-1",
		Amount:  2500,
	})

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, apperr.ErrExternalService)
}
