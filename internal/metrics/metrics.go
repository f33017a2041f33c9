package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal - Счетчик HTTP-запросов
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"handler", "status"}, // Метки: хэндлер и http-статус
	)

	// HttpRequestDuration - Гистограмма длительности HTTP-запросов
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Длительность HTTP запросов",
		},
		[]string{"handler"}, // Метки: хэндлер
	)

	// CacheHits - Счетчик попаданий в кэш каталога
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Количество попаданий в кэш",
		},
	)

	// CacheMisses - Счетчик промахов кэша каталога
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Количество промахов кэша",
		},
	)

	// CacheSize - Датчик (Gauge) текущего размера кэша
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size_items",
			Help: "Текущий размер кэша в элементах",
		},
	)

	// CacheEvictions - Счетчик вытеснений из кэша (LRU)
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Количество вытесненных из кэша элементов",
		},
	)

	// DBErrors - Счетчик ошибок базы данных
	DBErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Количество ошибок при работе с БД",
		},
		[]string{"operation"}, // Метки: "create_order", "save_payment", "get_bouquet" и т.д.
	)

	// PaymentsCreated - Счетчик созданных платежей у провайдера
	PaymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_created_total",
			Help: "Количество созданных платежей",
		},
		[]string{"status"}, // Метки: "success", "error"
	)

	// WebhooksProcessed - Счетчик обработанных вебхуков провайдера
	WebhooksProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_processed_total",
			Help: "Количество обработанных вебхуков оплаты",
		},
		[]string{"result"}, // Метки: "succeeded", "duplicate", "ignored", "unknown_payment", "bad_payload"
	)

	// NotificationsSent - Счетчик отправленных уведомлений в Telegram
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Количество отправленных уведомлений",
		},
		[]string{"status"}, // Метки: "success", "error", "dlq", "dlq_failed_write"
	)

	// NotificationsEnqueued - Счетчик уведомлений, поставленных в очередь
	NotificationsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_enqueued_total",
			Help: "Количество уведомлений, отправленных в очередь",
		},
		[]string{"status"}, // Метки: "success", "error"
	)
)

// Init используется для регистрации метрик.
// promauto регистрирует их автоматически при создании.
func Init() {
	log.Println("Prometheus метрики инициализированы.")
}
