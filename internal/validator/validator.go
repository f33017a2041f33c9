package validator

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance возвращает синглтон-экземпляр валидатора.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateStruct выполняет валидацию по тегам структуры.
func ValidateStruct(s interface{}) error {
	return getInstance().Struct(s)
}

// ValidPhone проверяет, что телефон начинается с "+" и кода страны,
// например +79991123456.
func ValidPhone(phone string) bool {
	return strings.HasPrefix(phone, "+") && len(phone) > 1
}
