package model

import "time"

// Поводы для букета.
const (
	OccasionBirthday = "День рождения"
	OccasionWedding  = "Свадьба"
	OccasionSchool   = "В школу"
	OccasionNoReason = "Без повода"
	OccasionOther    = "Другой повод"
)

// Occasions - допустимые значения повода.
var Occasions = []string{
	OccasionBirthday,
	OccasionWedding,
	OccasionSchool,
	OccasionNoReason,
	OccasionOther,
}

// Ценовые категории квиза.
const (
	BudgetLow  = "До 1 000 руб"
	BudgetMid  = "1 000 - 5 000 руб"
	BudgetHigh = "от 5 000 руб"
)

// Статусы заказа. Переходы только вперед; автоматически заказ
// продвигается лишь вебхуком оплаты (обрабатывается -> собираем),
// остальное делают сотрудники вручную.
const (
	OrderStatusProcessing = "Заявка обрабатывается"
	OrderStatusAssembling = "Собираем ваш букет"
	OrderStatusInTransit  = "Букет в пути"
	OrderStatusDelivered  = "Букет у вас"
)

// Статусы платежа. Зеркалируют статус платежного провайдера.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// DeliveryWindows - фиксированный набор интервалов доставки.
var DeliveryWindows = []string{
	"Как можно скорее",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
	"18:00-20:00",
}

type Bouquet struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"required,max=50"`
	Price       int    `json:"price" db:"price" validate:"gte=0"`
	Description string `json:"description" db:"description"`
	Composition string `json:"composition" db:"composition"`
	Occasion    string `json:"occasion" db:"occasion" validate:"required"`
	ColorScheme string `json:"color_scheme" db:"color_scheme"`
	ImageURL    string `json:"image_url" db:"image_url"`
}

type Customer struct {
	ID          int64  `json:"id" db:"id"`
	FirstName   string `json:"first_name" db:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" db:"last_name" validate:"max=50"`
	Phone       string `json:"phone" db:"phone" validate:"required"`
	HomeAddress string `json:"home_address" db:"home_address"`
}

type Courier struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name" validate:"required"`
	Phone          string `json:"phone" db:"phone" validate:"required"`
	TelegramChatID int64  `json:"telegram_chat_id" db:"telegram_chat_id"`
}

type Florist struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name" validate:"required"`
	Phone          string `json:"phone" db:"phone" validate:"required"`
	TelegramChatID int64  `json:"telegram_chat_id" db:"telegram_chat_id"`
}

type Order struct {
	ID              string     `json:"id" db:"id"`
	CustomerID      int64      `json:"customer_id" db:"customer_id"`
	BouquetID       int64      `json:"bouquet_id" db:"bouquet_id"`
	OrderPrice      int        `json:"order_price" db:"order_price"`
	Status          string     `json:"status" db:"status"`
	DeliveryAddress string     `json:"delivery_address" db:"delivery_address"`
	DeliveryDate    *time.Time `json:"delivery_date,omitempty" db:"delivery_date"`
	DeliveryTime    string     `json:"delivery_time" db:"delivery_time"`
	Comments        string     `json:"comments" db:"comments"`
	CourierID       *int64     `json:"courier_id,omitempty" db:"courier_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type Payment struct {
	ID         int64     `json:"id" db:"id"`
	OrderID    string    `json:"order_id" db:"order_id"`
	ExternalID string    `json:"external_id" db:"external_id"`
	Status     string    `json:"status" db:"status"`
	Amount     int       `json:"amount" db:"amount"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Consultation struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customer_id" db:"customer_id"`
	FloristID  *int64    `json:"florist_id,omitempty" db:"florist_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	Notified   bool      `json:"notified" db:"notified"`
}

// CreateOrderRequest - данные формы оформления заказа.
type CreateOrderRequest struct {
	BouquetID       int64  `json:"bouquet_id" validate:"required"`
	FirstName       string `json:"first_name" validate:"required,max=50"`
	LastName        string `json:"last_name" validate:"max=50"`
	Phone           string `json:"phone" validate:"required"`
	DeliveryAddress string `json:"delivery_address" validate:"required,max=256"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time" validate:"required"`
	Comments        string `json:"comments"`
}

// ConsultationRequest - данные формы заявки на консультацию.
type ConsultationRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// QuizRequest - ответы квиза подбора букета.
type QuizRequest struct {
	Occasion string `json:"occasion" validate:"required"`
	Budget   string `json:"budget"`
}

// CreatedOrder - результат оформления заказа: куда вести покупателя платить.
type CreatedOrder struct {
	OrderID         string `json:"order_id"`
	ConfirmationURL string `json:"confirmation_url"`
}

// PaymentStatusView - бинарный ответ для страницы возврата с оплаты.
type PaymentStatusView struct {
	OrderID string `json:"order_id"`
	Paid    bool   `json:"paid"`
	Message string `json:"message"`
}

// WebhookEvent - тело вебхука платежного провайдера.
type WebhookEvent struct {
	Event  string `json:"event"`
	Object struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"object"`
}

// Notification - сообщение для отправки сотруднику в Telegram.
type Notification struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
	Kind   string `json:"kind"`
}

// ReportRow - одна строка агрегации для отчетов.
type ReportRow struct {
	Label string `json:"label" db:"label"`
	Count int    `json:"count" db:"count"`
}
