package main

import (
	"context"
	"flag"
	"log"

	"prime-flower-shop/internal/config"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/generator"
)

// Сидер наполняет БД тестовым каталогом и справочниками сотрудников
// для локального запуска витрины.
func main() {
	bouquets := flag.Int("bouquets", 12, "сколько букетов создать")
	couriers := flag.Int("couriers", 3, "сколько курьеров создать")
	florists := flag.Int("florists", 2, "сколько флористов создать")
	flag.Parse()

	cfg := config.Get()

	storage, err := database.New(cfg.Postgres.URL, "./internal/database/migrations")
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	ctx := context.Background()

	for i := 0; i < *bouquets; i++ {
		b := generator.NewBouquet()
		if err := storage.SaveBouquet(ctx, &b); err != nil {
			log.Printf("Ошибка сохранения букета %q: %v", b.Name, err)
			continue
		}
		log.Printf("Букет %q создан (id=%d, цена %d руб).", b.Name, b.ID, b.Price)
	}

	for i := 0; i < *couriers; i++ {
		c := generator.NewCourier()
		if err := storage.SaveCourier(ctx, &c); err != nil {
			log.Printf("Ошибка сохранения курьера %q: %v", c.Name, err)
			continue
		}
		log.Printf("Курьер %q создан (id=%d).", c.Name, c.ID)
	}

	for i := 0; i < *florists; i++ {
		f := generator.NewFlorist()
		if err := storage.SaveFlorist(ctx, &f); err != nil {
			log.Printf("Ошибка сохранения флориста %q: %v", f.Name, err)
			continue
		}
		log.Printf("Флорист %q создан (id=%d).", f.Name, f.ID)
	}

	log.Println("Наполнение БД завершено.")
}
