package generator

import (
	"fmt"

	"prime-flower-shop/internal/model"

	"github.com/brianvoe/gofakeit/v6"
)

// Названия цветов для генерации каталога.
var flowers = []string{
	"Розы", "Пионы", "Тюльпаны", "Лилии", "Хризантемы",
	"Гортензии", "Ирисы", "Ромашки", "Эустомы", "Гвоздики",
}

var colorSchemes = []string{"Без цветовой гаммы", "Красные", "Синие"}

// NewBouquet создает случайный букет для наполнения каталога.
func NewBouquet() model.Bouquet {
	flower := gofakeit.RandomString(flowers)
	name := fmt.Sprintf("%s «%s»", flower, gofakeit.AdjectiveDescriptive())

	return model.Bouquet{
		Name:        name,
		Price:       gofakeit.Number(500, 9000),
		Description: gofakeit.Sentence(8),
		Composition: fmt.Sprintf("%s - %d шт., зелень, упаковка", flower, gofakeit.Number(5, 25)),
		Occasion:    gofakeit.RandomString(model.Occasions),
		ColorScheme: gofakeit.RandomString(colorSchemes),
		ImageURL:    fmt.Sprintf("/media/bouquets/%s.jpg", gofakeit.UUID()),
	}
}

// NewCourier создает случайного курьера.
func NewCourier() model.Courier {
	return model.Courier{
		Name:           gofakeit.Name(),
		Phone:          fmt.Sprintf("+7%d", gofakeit.Number(9000000000, 9999999999)),
		TelegramChatID: int64(gofakeit.Number(100000000, 999999999)),
	}
}

// NewFlorist создает случайного флориста.
func NewFlorist() model.Florist {
	return model.Florist{
		Name:           gofakeit.Name(),
		Phone:          fmt.Sprintf("+7%d", gofakeit.Number(9000000000, 9999999999)),
		TelegramChatID: int64(gofakeit.Number(100000000, 999999999)),
	}
}
