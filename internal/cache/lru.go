package cache

import (
	"container/list"
	"context"
	"log"
	"strconv"
	"sync"

	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=lru.go -destination=./mocks/cache_mock.go -package=mocks Cache

// Cache определяет интерфейс для кэширования каталога.
// Контекст добавлен для поддержки сквозной трассировки.
type Cache interface {
	Set(ctx context.Context, key string, value interface{})
	Get(ctx context.Context, key string) (interface{}, bool)
}

// lruCache реализует LRU (Least Recently Used) кэш.
type lruCache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	tracer   trace.Tracer // Для трассировки
}

type cacheItem struct {
	key   string
	value interface{}
}

// NewLRUCache создает новый LRU-кэш с заданной емкостью.
func NewLRUCache(capacity int) Cache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
		tracer:   otel.Tracer("lru-cache"), // Инициализация трейсера
	}
}

func (c *lruCache) Set(ctx context.Context, key string, value interface{}) {
	_, span := c.tracer.Start(ctx, "Cache.Set")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*cacheItem).value = value
		return
	}

	if c.queue.Len() >= c.capacity && c.capacity > 0 {
		c.removeOldest()
	}

	item := &cacheItem{key: key, value: value}
	element := c.queue.PushFront(item)
	c.items[key] = element

	// Обновляем метрику размера кэша
	metrics.CacheSize.Set(float64(c.queue.Len()))
}

func (c *lruCache) Get(ctx context.Context, key string) (interface{}, bool) {
	_, span := c.tracer.Start(ctx, "Cache.Get")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		return element.Value.(*cacheItem).value, true
	}

	return nil, false
}

// removeOldest удаляет самый старый элемент (внутренняя функция, мьютекс уже захвачен).
func (c *lruCache) removeOldest() {
	element := c.queue.Back()
	if element != nil {
		item := c.queue.Remove(element).(*cacheItem)
		delete(c.items, item.key)

		// Обновляем метрики
		metrics.CacheEvictions.Inc()
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// BouquetKey строит ключ кэша для букета.
func BouquetKey(id int64) string {
	return "bouquet:" + strconv.FormatInt(id, 10)
}

// WarmUp загружает каталог букетов из БД в кэш.
// Каталог read-mostly, поэтому прогрев при старте окупается сразу.
func WarmUp(ctx context.Context, storage database.Storage, cache Cache) error {
	log.Println("Выполняется прогрев кэша каталога...")
	bouquets, err := storage.ListBouquets(ctx)
	if err != nil {
		return err
	}

	for _, bouquet := range bouquets {
		bouquetCopy := bouquet
		cache.Set(ctx, BouquetKey(bouquet.ID), &bouquetCopy)
	}

	log.Printf("Кэш прогрет. Загружено %d букетов.", len(bouquets))
	return nil
}
