package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"prime-flower-shop/internal/apperr"
	"prime-flower-shop/internal/database"
	"prime-flower-shop/internal/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Разрезы отчетов по заказам.
const (
	DimensionBouquet  = "bouquet"
	DimensionDate     = "date"
	DimensionCustomer = "customer"
)

// utf8BOM нужен, чтобы Excel корректно открывал кириллицу в CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReportService строит агрегации по историческим заказам для
// дашбордов и выгрузки в CSV. Объемы операционные, без пагинации.
type ReportService struct {
	storage database.Storage
	tracer  trace.Tracer
}

// NewReportService создает сервис отчетов.
func NewReportService(storage database.Storage) *ReportService {
	return &ReportService{
		storage: storage,
		tracer:  otel.Tracer("report-service"),
	}
}

// AggregateBy возвращает пары (метка, количество) по выбранному разрезу.
func (s *ReportService) AggregateBy(ctx context.Context, dimension string) ([]model.ReportRow, error) {
	ctx, span := s.tracer.Start(ctx, "ReportService.AggregateBy")
	defer span.End()

	switch dimension {
	case DimensionBouquet:
		return s.storage.CountOrdersByBouquet(ctx)
	case DimensionDate:
		return s.storage.CountOrdersByDate(ctx)
	case DimensionCustomer:
		return s.storage.CountOrdersByCustomer(ctx)
	default:
		return nil, fmt.Errorf("%w: неизвестный разрез отчета %q", apperr.ErrValidation, dimension)
	}
}

// ExportCSV пишет все три агрегации одной таблицей: первая колонка
// указывает, к какому разрезу относится строка.
func (s *ReportService) ExportCSV(ctx context.Context, w io.Writer) error {
	ctx, span := s.tracer.Start(ctx, "ReportService.ExportCSV")
	defer span.End()

	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("не удалось записать BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Категория", "Значение", "Количество"}); err != nil {
		return fmt.Errorf("не удалось записать заголовок: %w", err)
	}

	sections := []struct {
		kind      string
		dimension string
	}{
		{"Букеты", DimensionBouquet},
		{"Даты", DimensionDate},
		{"Покупатели", DimensionCustomer},
	}

	for _, section := range sections {
		rows, err := s.AggregateBy(ctx, section.dimension)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write([]string{section.kind, row.Label, strconv.Itoa(row.Count)}); err != nil {
				return fmt.Errorf("не удалось записать строку отчета: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
