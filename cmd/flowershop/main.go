package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prime-flower-shop/internal/api"
	"prime-flower-shop/internal/cache"
	"prime-flower-shop/internal/config"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/metrics"
	"prime-flower-shop/internal/notify"
	"prime-flower-shop/internal/payment"
	"prime-flower-shop/internal/queue"
	"prime-flower-shop/internal/service"
	"prime-flower-shop/internal/tracing"
)

func main() {
	cfg := config.Get()

	// Инициализация метрик и трассировки
	metrics.Init()
	shutdownTracing := tracing.InitTracerProvider("flower-shop")
	defer shutdownTracing()

	// Инициализация хранилища
	storage, err := database.New(cfg.Postgres.URL, "./internal/database/migrations")
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	// Инициализация кэша каталога
	catalogCache := cache.NewLRUCache(cfg.Cache.Size)
	if err := cache.WarmUp(context.Background(), storage, catalogCache); err != nil {
		log.Printf("Ошибка при прогреве кэша: %v", err)
	}

	// Очередь уведомлений: продюсер для сервисов и диспетчер-отправитель
	ctx, cancel := context.WithCancel(context.Background())
	publisher := queue.NewPublisher(cfg.Kafka)
	defer publisher.Close()

	telegram := notify.NewTelegram(cfg.Telegram)
	dispatcher := queue.NewDispatcher(cfg.Kafka, telegram)
	go dispatcher.Run(ctx)

	// Сервисы витрины
	payments := payment.NewClient(cfg.Yookassa)
	orders := service.NewOrderService(storage, payments, publisher, cfg.Telegram.FallbackChatID)
	consultations := service.NewConsultationService(storage, publisher, cfg.Telegram.FloristChatID)
	quiz := service.NewQuizService(storage)
	reports := service.NewReportService(storage)

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, storage, catalogCache, orders, consultations, quiz, reports)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	cancel()
	log.Println("Сервис успешно остановлен.")
}
