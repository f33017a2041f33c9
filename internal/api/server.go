package api

import (
	"fmt"
	"net/http"

	"prime-flower-shop/internal/cache"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server представляет HTTP-сервер витрины.
type Server struct {
	port    string
	router  *chi.Mux
	handler *Handler
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, storage database.Storage, cache cache.Cache, orders *service.OrderService, consultations *service.ConsultationService, quiz *service.QuizService, reports *service.ReportService) *Server {
	server := &Server{
		port:    port,
		handler: NewHandler(storage, cache, orders, consultations, quiz, reports),
	}
	server.router = server.setupRouter()
	return server
}

// Run запускает HTTP-сервер.
func (s *Server) Run() error {
	address := fmt.Sprintf(":%s", s.port)
	fmt.Printf("🌸 HTTP-сервер запущен на http://localhost%s\n", address)
	return http.ListenAndServe(address, s.router)
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Каталог и квиз
	router.Get("/api/bouquets", s.handler.ListBouquets)
	router.Get("/api/bouquets/recommended", s.handler.RecommendedBouquets)
	router.Get("/api/bouquets/{bouquetID}", s.handler.GetBouquet)
	router.Post("/api/quiz", s.handler.Quiz)

	// Заказы и оплата
	router.Post("/api/orders", s.handler.CreateOrder)
	router.Post("/api/orders/{orderID}/payment", s.handler.RetryPayment)
	router.Get("/api/orders/{orderID}/payment", s.handler.PaymentStatus)
	router.Post("/api/webhooks/yookassa", s.handler.PaymentWebhook)

	// Консультации
	router.Post("/api/consultations", s.handler.CreateConsultation)

	// Отчеты
	router.Get("/api/reports/export", s.handler.ExportReport)
	router.Get("/api/reports/{dimension}", s.handler.Report)

	// Метрики Prometheus
	router.Handle("/metrics", promhttp.Handler())

	return router
}
