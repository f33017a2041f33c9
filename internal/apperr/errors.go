package apperr

import "errors"

// Таксономия ошибок сервиса. Хендлеры маппят их на HTTP-статусы:
// ErrValidation -> 422, ErrNotFound -> 404, ErrBadPayload -> 400,
// ErrExternalService -> 502 (пользователю предлагается повторить оплату).
var (
	ErrValidation      = errors.New("некорректные данные формы")
	ErrNotFound        = errors.New("запись не найдена")
	ErrExternalService = errors.New("ошибка внешнего сервиса")
	ErrBadPayload      = errors.New("некорректное тело запроса")
)
