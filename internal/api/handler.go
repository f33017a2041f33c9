package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/cache"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/metrics"
	"prime-flower-shop/internal/model"
	"prime-flower-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Количество букетов на главной странице.
const recommendedLimit = 3

// Handler обрабатывает HTTP-запросы витрины.
type Handler struct {
	storage       database.Storage
	cache         cache.Cache
	orders        *service.OrderService
	consultations *service.ConsultationService
	quiz          *service.QuizService
	reports       *service.ReportService
}

// NewHandler создает новый экземпляр Handler.
func NewHandler(storage database.Storage, cache cache.Cache, orders *service.OrderService, consultations *service.ConsultationService, quiz *service.QuizService, reports *service.ReportService) *Handler {
	return &Handler{
		storage:       storage,
		cache:         cache,
		orders:        orders,
		consultations: consultations,
		quiz:          quiz,
		reports:       reports,
	}
}

// ListBouquets возвращает весь каталог.
func (h *Handler) ListBouquets(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListBouquets"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	bouquets, err := h.storage.ListBouquets(r.Context())
	if err != nil {
		log.Printf("Ошибка получения каталога: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось получить каталог", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, bouquets)
}

// RecommendedBouquets возвращает первые букеты каталога для главной.
func (h *Handler) RecommendedBouquets(w http.ResponseWriter, r *http.Request) {
	handlerName := "RecommendedBouquets"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	bouquets, err := h.storage.ListBouquets(r.Context())
	if err != nil {
		log.Printf("Ошибка получения каталога: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось получить каталог", handlerName)
		return
	}
	if len(bouquets) > recommendedLimit {
		bouquets = bouquets[:recommendedLimit]
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, bouquets)
}

// GetBouquet ищет букет по id сначала в кэше, затем в БД.
func (h *Handler) GetBouquet(w http.ResponseWriter, r *http.Request) {
	handlerName := "GetBouquet"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, err := strconv.ParseInt(chi.URLParam(r, "bouquetID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный id букета", handlerName)
		return
	}

	// Поиск в кэше. Передаем контекст (r.Context()) для трейсинга.
	if bouquet, found := h.cache.Get(r.Context(), cache.BouquetKey(id)); found {
		metrics.CacheHits.Inc()
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
		respondWithJSON(w, http.StatusOK, bouquet)
		return
	}
	metrics.CacheMisses.Inc()

	bouquet, err := h.storage.GetBouquet(r.Context(), id)
	if err != nil {
		log.Printf("Ошибка получения букета %d: %v", id, err)
		respondWithError(w, statusFromError(err), "Букет не найден", handlerName)
		return
	}

	h.cache.Set(r.Context(), cache.BouquetKey(id), bouquet)

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, bouquet)
}

// Quiz подбирает букет по ответам квиза.
func (h *Handler) Quiz(w http.ResponseWriter, r *http.Request) {
	handlerName := "Quiz"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var req model.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", handlerName)
		return
	}

	bouquet, err := h.quiz.Recommend(r.Context(), req)
	if err != nil {
		log.Printf("Ошибка подбора букета: %v", err)
		respondWithError(w, statusFromError(err), "Нет подходящих букетов для выбранного события и бюджета", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, bouquet)
}

// CreateOrder оформляет заказ и возвращает ссылку на оплату.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	handlerName := "CreateOrder"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", handlerName)
		return
	}

	created, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		log.Printf("Ошибка оформления заказа: %v", err)
		// Заказ мог сохраниться до сбоя оплаты: отдаем его id,
		// чтобы клиент мог повторить оплату.
		var payErr *service.PaymentFailedError
		if errors.As(err, &payErr) {
			metrics.HttpRequestsTotal.WithLabelValues(handlerName, "502").Inc()
			respondWithJSON(w, http.StatusBadGateway, map[string]string{
				"error":    "Ошибка оплаты. Попробуйте еще раз.",
				"order_id": payErr.OrderID,
			})
			return
		}
		respondWithError(w, statusFromError(err), "Ошибка в заполнении формы. Проверьте данные.", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, created)
}

// RetryPayment повторно создает платеж для заказа без платежа.
func (h *Handler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	handlerName := "RetryPayment"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	created, err := h.orders.RetryPayment(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		log.Printf("Ошибка повторной оплаты: %v", err)
		respondWithError(w, statusFromError(err), "Не удалось создать платеж", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, created)
}

// PaymentStatus возвращает статус оплаты для страницы возврата.
func (h *Handler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	handlerName := "PaymentStatus"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	view, err := h.orders.PaymentStatus(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		log.Printf("Ошибка получения статуса оплаты: %v", err)
		respondWithError(w, statusFromError(err), "Заказ или платеж не найден", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, view)
}

// PaymentWebhook принимает событие платежного провайдера.
// 400 только на структурно битое тело; остальные исходы - 200,
// чтобы провайдер не ретраил понапрасну.
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	handlerName := "PaymentWebhook"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Не удалось прочитать тело запроса", handlerName)
		return
	}

	if err := h.orders.ReconcileWebhook(r.Context(), payload); err != nil {
		log.Printf("Ошибка обработки вебхука: %v", err)
		if errors.Is(err, apperr.ErrBadPayload) {
			respondWithError(w, http.StatusBadRequest, "Некорректное тело вебхука", handlerName)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Ошибка обработки вебхука", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateConsultation принимает заявку на консультацию.
func (h *Handler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	handlerName := "CreateConsultation"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var req model.ConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", handlerName)
		return
	}

	consultation, err := h.consultations.Submit(r.Context(), req)
	if err != nil {
		log.Printf("Ошибка приема заявки: %v", err)
		respondWithError(w, statusFromError(err), "Ошибка в заполнении формы.", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, consultation)
}

// Report возвращает агрегацию заказов по выбранному разрезу.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	handlerName := "Report"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	rows, err := h.reports.AggregateBy(r.Context(), chi.URLParam(r, "dimension"))
	if err != nil {
		log.Printf("Ошибка построения отчета: %v", err)
		respondWithError(w, statusFromError(err), "Не удалось построить отчет", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, rows)
}

// ExportReport выгружает все агрегации одним CSV-файлом.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	handlerName := "ExportReport"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders_report.csv"`)

	if err := h.reports.ExportCSV(r.Context(), w); err != nil {
		// Заголовки уже могли уйти клиенту, статус менять поздно.
		log.Printf("Ошибка выгрузки отчета: %v", err)
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "500").Inc()
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
}

// statusFromError маппит ошибку сервиса на HTTP-статус.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrBadPayload):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(code)).Inc()
	http.Error(w, message, code)
}
