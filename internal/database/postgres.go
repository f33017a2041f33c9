package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/metrics"
	"prime-flower-shop/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=postgres.go -destination=./mocks/storage_mock.go -package=mocks Storage

// Storage определяет интерфейс для работы с хранилищем магазина.
type Storage interface {
	// Каталог
	ListBouquets(ctx context.Context) ([]model.Bouquet, error)
	GetBouquet(ctx context.Context, id int64) (*model.Bouquet, error)
	FindBouquet(ctx context.Context, occasion string, minPrice, maxPrice int) (*model.Bouquet, error)
	SaveBouquet(ctx context.Context, b *model.Bouquet) error

	// Справочники сотрудников
	ListCouriers(ctx context.Context) ([]model.Courier, error)
	GetCourier(ctx context.Context, id int64) (*model.Courier, error)
	SaveCourier(ctx context.Context, c *model.Courier) error
	ListFlorists(ctx context.Context) ([]model.Florist, error)
	SaveFlorist(ctx context.Context, f *model.Florist) error
	CountOrdersByCourier(ctx context.Context) (map[int64]int, error)
	CountConsultationsByFlorist(ctx context.Context) (map[int64]int, error)

	// Заказы
	CreateOrder(ctx context.Context, customer *model.Customer, order *model.Order) error
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error

	// Платежи
	SavePayment(ctx context.Context, p *model.Payment) error
	GetPaymentByOrder(ctx context.Context, orderID string) (*model.Payment, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (*model.Payment, error)
	TransitionPaymentSucceeded(ctx context.Context, externalID string) (bool, error)

	// Консультации
	CreateConsultation(ctx context.Context, customer *model.Customer, c *model.Consultation) error
	MarkConsultationNotified(ctx context.Context, id int64) error

	// Отчеты
	CountOrdersByBouquet(ctx context.Context) ([]model.ReportRow, error)
	CountOrdersByDate(ctx context.Context) ([]model.ReportRow, error)
	CountOrdersByCustomer(ctx context.Context) ([]model.ReportRow, error)

	Close() error
}

// postgresStorage обеспечивает взаимодействие с базой данных PostgreSQL.
// Это конкретная реализация интерфейса Storage.
type postgresStorage struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Storage.
func New(dbURL, migrationsPath string) (Storage, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// Запуск миграций
	if err := runMigrations(dbURL, migrationsPath); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresStorage{
		db:     db,
		tracer: otel.Tracer("postgres-storage"), // Инициализация трейсера
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}

	// Применяем миграции "вверх"
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// ListBouquets возвращает весь каталог букетов.
func (s *postgresStorage) ListBouquets(ctx context.Context) ([]model.Bouquet, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListBouquets")
	defer span.End()

	var bouquets []model.Bouquet
	query := `SELECT id, name, price, description, composition, occasion, color_scheme, image_url FROM bouquets ORDER BY id`
	if err := s.db.SelectContext(ctx, &bouquets, query); err != nil {
		metrics.DBErrors.WithLabelValues("list_bouquets").Inc()
		return nil, fmt.Errorf("не удалось получить каталог: %w", err)
	}
	return bouquets, nil
}

// GetBouquet извлекает букет по идентификатору.
func (s *postgresStorage) GetBouquet(ctx context.Context, id int64) (*model.Bouquet, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetBouquet")
	defer span.End()

	var b model.Bouquet
	query := `SELECT id, name, price, description, composition, occasion, color_scheme, image_url FROM bouquets WHERE id = $1`
	if err := s.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("букет %d: %w", id, apperr.ErrNotFound)
		}
		metrics.DBErrors.WithLabelValues("get_bouquet").Inc()
		return nil, fmt.Errorf("не удалось получить букет: %w", err)
	}
	return &b, nil
}

// FindBouquet подбирает букет по поводу и ценовой вилке для квиза.
// Нулевые границы означают отсутствие ограничения, пустой повод - любой.
func (s *postgresStorage) FindBouquet(ctx context.Context, occasion string, minPrice, maxPrice int) (*model.Bouquet, error) {
	ctx, span := s.tracer.Start(ctx, "DB.FindBouquet")
	defer span.End()

	query := `SELECT id, name, price, description, composition, occasion, color_scheme, image_url FROM bouquets
		WHERE ($1 = '' OR occasion = $1)
		  AND ($2 = 0 OR price >= $2)
		  AND ($3 = 0 OR price <= $3)
		ORDER BY id LIMIT 1`

	var b model.Bouquet
	if err := s.db.GetContext(ctx, &b, query, occasion, minPrice, maxPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("подходящий букет: %w", apperr.ErrNotFound)
		}
		metrics.DBErrors.WithLabelValues("find_bouquet").Inc()
		return nil, fmt.Errorf("не удалось подобрать букет: %w", err)
	}
	return &b, nil
}

// SaveBouquet сохраняет букет (используется сидером).
func (s *postgresStorage) SaveBouquet(ctx context.Context, b *model.Bouquet) error {
	ctx, span := s.tracer.Start(ctx, "DB.SaveBouquet")
	defer span.End()

	query := `INSERT INTO bouquets (name, price, description, composition, occasion, color_scheme, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := s.db.GetContext(ctx, &b.ID, query, b.Name, b.Price, b.Description, b.Composition, b.Occasion, b.ColorScheme, b.ImageURL); err != nil {
		metrics.DBErrors.WithLabelValues("save_bouquet").Inc()
		return fmt.Errorf("не удалось сохранить букет: %w", err)
	}
	return nil
}

// ListCouriers возвращает курьеров в стабильном порядке (по id).
// Порядок важен для детерминированного разрешения ничьих при назначении.
func (s *postgresStorage) ListCouriers(ctx context.Context) ([]model.Courier, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListCouriers")
	defer span.End()

	var couriers []model.Courier
	if err := s.db.SelectContext(ctx, &couriers, `SELECT id, name, phone, telegram_chat_id FROM couriers ORDER BY id`); err != nil {
		metrics.DBErrors.WithLabelValues("list_couriers").Inc()
		return nil, fmt.Errorf("не удалось получить курьеров: %w", err)
	}
	return couriers, nil
}

// GetCourier извлекает курьера по идентификатору.
func (s *postgresStorage) GetCourier(ctx context.Context, id int64) (*model.Courier, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetCourier")
	defer span.End()

	var c model.Courier
	if err := s.db.GetContext(ctx, &c, `SELECT id, name, phone, telegram_chat_id FROM couriers WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("курьер %d: %w", id, apperr.ErrNotFound)
		}
		metrics.DBErrors.WithLabelValues("get_courier").Inc()
		return nil, fmt.Errorf("не удалось получить курьера: %w", err)
	}
	return &c, nil
}

// SaveCourier сохраняет курьера (используется сидером).
func (s *postgresStorage) SaveCourier(ctx context.Context, c *model.Courier) error {
	ctx, span := s.tracer.Start(ctx, "DB.SaveCourier")
	defer span.End()

	query := `INSERT INTO couriers (name, phone, telegram_chat_id) VALUES ($1, $2, $3) RETURNING id`
	if err := s.db.GetContext(ctx, &c.ID, query, c.Name, c.Phone, c.TelegramChatID); err != nil {
		metrics.DBErrors.WithLabelValues("save_courier").Inc()
		return fmt.Errorf("не удалось сохранить курьера: %w", err)
	}
	return nil
}

// ListFlorists возвращает флористов в стабильном порядке (по id).
func (s *postgresStorage) ListFlorists(ctx context.Context) ([]model.Florist, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListFlorists")
	defer span.End()

	var florists []model.Florist
	if err := s.db.SelectContext(ctx, &florists, `SELECT id, name, phone, telegram_chat_id FROM florists ORDER BY id`); err != nil {
		metrics.DBErrors.WithLabelValues("list_florists").Inc()
		return nil, fmt.Errorf("не удалось получить флористов: %w", err)
	}
	return florists, nil
}

// SaveFlorist сохраняет флориста (используется сидером).
func (s *postgresStorage) SaveFlorist(ctx context.Context, f *model.Florist) error {
	ctx, span := s.tracer.Start(ctx, "DB.SaveFlorist")
	defer span.End()

	query := `INSERT INTO florists (name, phone, telegram_chat_id) VALUES ($1, $2, $3) RETURNING id`
	if err := s.db.GetContext(ctx, &f.ID, query, f.Name, f.Phone, f.TelegramChatID); err != nil {
		metrics.DBErrors.WithLabelValues("save_florist").Inc()
		return fmt.Errorf("не удалось сохранить флориста: %w", err)
	}
	return nil
}

// CountOrdersByCourier возвращает текущую нагрузку по курьерам:
// id курьера -> количество привязанных заказов.
func (s *postgresStorage) CountOrdersByCourier(ctx context.Context) (map[int64]int, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CountOrdersByCourier")
	defer span.End()

	rows := []struct {
		CourierID int64 `db:"courier_id"`
		Count     int   `db:"count"`
	}{}
	query := `SELECT courier_id, COUNT(*) AS count FROM orders WHERE courier_id IS NOT NULL GROUP BY courier_id`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		metrics.DBErrors.WithLabelValues("count_orders_by_courier").Inc()
		return nil, fmt.Errorf("не удалось посчитать нагрузку курьеров: %w", err)
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.CourierID] = row.Count
	}
	return counts, nil
}

// CountConsultationsByFlorist возвращает текущую нагрузку по флористам.
func (s *postgresStorage) CountConsultationsByFlorist(ctx context.Context) (map[int64]int, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CountConsultationsByFlorist")
	defer span.End()

	rows := []struct {
		FloristID int64 `db:"florist_id"`
		Count     int   `db:"count"`
	}{}
	query := `SELECT florist_id, COUNT(*) AS count FROM consultations WHERE florist_id IS NOT NULL GROUP BY florist_id`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		metrics.DBErrors.WithLabelValues("count_consultations_by_florist").Inc()
		return nil, fmt.Errorf("не удалось посчитать нагрузку флористов: %w", err)
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.FloristID] = row.Count
	}
	return counts, nil
}

// CreateOrder сохраняет покупателя и заказ в одной транзакции.
// Платеж сюда не входит: он создается отдельно после ответа провайдера,
// поэтому заказ без платежа - достижимое состояние.
func (s *postgresStorage) CreateOrder(ctx context.Context, customer *model.Customer, order *model.Order) (err error) {
	ctx, span := s.tracer.Start(ctx, "DB.CreateOrder")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	// Используем defer с функцией, чтобы корректно обработать panic и ошибки
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p) // Восстанавливаем панику
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	customerQuery := `INSERT INTO customers (first_name, last_name, phone, home_address) VALUES ($1, $2, $3, $4) RETURNING id`
	if err = tx.GetContext(ctx, &customer.ID, customerQuery, customer.FirstName, customer.LastName, customer.Phone, customer.HomeAddress); err != nil {
		metrics.DBErrors.WithLabelValues("create_order").Inc()
		return fmt.Errorf("ошибка сохранения покупателя: %w", err)
	}

	order.CustomerID = customer.ID
	orderQuery := `INSERT INTO orders (id, customer_id, bouquet_id, order_price, status, delivery_address, delivery_date, delivery_time, comments, courier_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(ctx, orderQuery, order.ID, order.CustomerID, order.BouquetID, order.OrderPrice, order.Status, order.DeliveryAddress, order.DeliveryDate, order.DeliveryTime, order.Comments, order.CourierID, order.CreatedAt); err != nil {
		metrics.DBErrors.WithLabelValues("create_order").Inc()
		return fmt.Errorf("ошибка сохранения заказа: %w", err)
	}

	err = tx.Commit()
	return err
}

// GetOrder извлекает заказ по идентификатору.
func (s *postgresStorage) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOrder")
	defer span.End()

	var order model.Order
	query := `SELECT id, customer_id, bouquet_id, order_price, status, delivery_address, delivery_date, delivery_time, comments, courier_id, created_at FROM orders WHERE id = $1`
	if err := s.db.GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("заказ %s: %w", orderID, apperr.ErrNotFound)
		}
		metrics.DBErrors.WithLabelValues("get_order").Inc()
		return nil, fmt.Errorf("не удалось получить заказ: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus обновляет статус заказа.
func (s *postgresStorage) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateOrderStatus")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, orderID, status); err != nil {
		metrics.DBErrors.WithLabelValues("update_order_status").Inc()
		return fmt.Errorf("не удалось обновить статус заказа: %w", err)
	}
	return nil
}

// SavePayment сохраняет платеж. Уникальный индекс по order_id
// гарантирует не более одного платежа на заказ.
func (s *postgresStorage) SavePayment(ctx context.Context, p *model.Payment) error {
	ctx, span := s.tracer.Start(ctx, "DB.SavePayment")
	defer span.End()

	query := `INSERT INTO payments (order_id, external_id, status, amount, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := s.db.GetContext(ctx, &p.ID, query, p.OrderID, p.ExternalID, p.Status, p.Amount, p.CreatedAt); err != nil {
		metrics.DBErrors.WithLabelValues("save_payment").Inc()
		return fmt.Errorf("не удалось сохранить платеж: %w", err)
	}
	return nil
}

// GetPaymentByOrder извлекает платеж по идентификатору заказа.
func (s *postgresStorage) GetPaymentByOrder(ctx context.Context, orderID string) (*model.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetPaymentByOrder")
	defer span.End()

	var p model.Payment
	query := `SELECT id, order_id, external_id, status, amount, created_at FROM payments WHERE order_id = $1`
	if err := s.db.GetContext(ctx, &p, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("платеж заказа %s: %w", orderID, apperr.ErrNotFound)
		}
		metrics.DBErrors.WithLabelValues("get_payment").Inc()
		return nil, fmt.Errorf("не удалось получить платеж: %w", err)
	}
	return &p, nil
}

// GetPaymentByExternalID извлекает платеж по идентификатору провайдера.
func (s *postgresStorage) GetPaymentByExternalID(ctx context.Context, externalID string) (*model.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetPaymentByExternalID")
	defer span.End()

	var p model.Payment
	query := `SELECT id, order_id, external_id, status, amount, created_at FROM payments WHERE external_id = $1`
	if err := s.db.GetContext(ctx, &p, query, externalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("платеж %s: %w", externalID, apperr.ErrNotFound)
		}
		metrics.DBErrors.WithLabelValues("get_payment").Inc()
		return nil, fmt.Errorf("не удалось получить платеж: %w", err)
	}
	return &p, nil
}

// TransitionPaymentSucceeded переводит платеж pending -> succeeded.
// Условный UPDATE защищает от гонки вебхука с повторной доставкой:
// легален только один переход вперед. Возвращает true, если переход
// произошел именно сейчас.
func (s *postgresStorage) TransitionPaymentSucceeded(ctx context.Context, externalID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "DB.TransitionPaymentSucceeded")
	defer span.End()

	query := `UPDATE payments SET status = $1 WHERE external_id = $2 AND status = $3`
	res, err := s.db.ExecContext(ctx, query, model.PaymentStatusSucceeded, externalID, model.PaymentStatusPending)
	if err != nil {
		metrics.DBErrors.WithLabelValues("transition_payment").Inc()
		return false, fmt.Errorf("не удалось обновить статус платежа: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("не удалось получить число обновленных строк: %w", err)
	}
	return affected > 0, nil
}

// CreateConsultation сохраняет покупателя и заявку на консультацию
// в одной транзакции.
func (s *postgresStorage) CreateConsultation(ctx context.Context, customer *model.Customer, c *model.Consultation) (err error) {
	ctx, span := s.tracer.Start(ctx, "DB.CreateConsultation")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	customerQuery := `INSERT INTO customers (first_name, last_name, phone, home_address) VALUES ($1, $2, $3, $4) RETURNING id`
	if err = tx.GetContext(ctx, &customer.ID, customerQuery, customer.FirstName, customer.LastName, customer.Phone, customer.HomeAddress); err != nil {
		metrics.DBErrors.WithLabelValues("create_consultation").Inc()
		return fmt.Errorf("ошибка сохранения покупателя: %w", err)
	}

	c.CustomerID = customer.ID
	consultationQuery := `INSERT INTO consultations (customer_id, florist_id, created_at, notified) VALUES ($1, $2, $3, $4) RETURNING id`
	if err = tx.GetContext(ctx, &c.ID, consultationQuery, c.CustomerID, c.FloristID, c.CreatedAt, c.Notified); err != nil {
		metrics.DBErrors.WithLabelValues("create_consultation").Inc()
		return fmt.Errorf("ошибка сохранения консультации: %w", err)
	}

	err = tx.Commit()
	return err
}

// MarkConsultationNotified помечает заявку как обработанную
// (уведомление флористу отправлено или хотя бы предпринята попытка).
func (s *postgresStorage) MarkConsultationNotified(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "DB.MarkConsultationNotified")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `UPDATE consultations SET notified = TRUE WHERE id = $1`, id); err != nil {
		metrics.DBErrors.WithLabelValues("mark_consultation_notified").Inc()
		return fmt.Errorf("не удалось пометить консультацию: %w", err)
	}
	return nil
}

// CountOrdersByBouquet агрегирует заказы по названию букета.
func (s *postgresStorage) CountOrdersByBouquet(ctx context.Context) ([]model.ReportRow, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CountOrdersByBouquet")
	defer span.End()

	query := `SELECT b.name AS label, COUNT(*) AS count
		FROM orders o JOIN bouquets b ON o.bouquet_id = b.id
		GROUP BY b.name ORDER BY count DESC, label ASC`
	return s.selectReport(ctx, query, "report_by_bouquet")
}

// CountOrdersByDate агрегирует заказы по календарной дате создания.
func (s *postgresStorage) CountOrdersByDate(ctx context.Context) ([]model.ReportRow, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CountOrdersByDate")
	defer span.End()

	query := `SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS label, COUNT(*) AS count
		FROM orders GROUP BY label ORDER BY count DESC, label ASC`
	return s.selectReport(ctx, query, "report_by_date")
}

// CountOrdersByCustomer агрегирует заказы по полному имени покупателя.
func (s *postgresStorage) CountOrdersByCustomer(ctx context.Context) ([]model.ReportRow, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CountOrdersByCustomer")
	defer span.End()

	query := `SELECT TRIM(c.first_name || ' ' || c.last_name) AS label, COUNT(*) AS count
		FROM orders o JOIN customers c ON o.customer_id = c.id
		GROUP BY label ORDER BY count DESC, label ASC`
	return s.selectReport(ctx, query, "report_by_customer")
}

// selectReport выполняет запрос агрегации и возвращает строки отчета.
func (s *postgresStorage) selectReport(ctx context.Context, query, operation string) ([]model.ReportRow, error) {
	var rows []model.ReportRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		metrics.DBErrors.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("не удалось построить отчет: %w", err)
	}
	return rows, nil
}

// Close закрывает соединение с БД.
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
