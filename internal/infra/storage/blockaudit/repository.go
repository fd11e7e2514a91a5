package blockaudit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/pkg/dbmetrics"
	"github.com/m04kA/barber-frontdesk/pkg/psqlbuilder"
)

const (
	batchesTable = "block_batches"
	itemsTable   = "block_batch_items"
)

// Filter выборка журнала блокировок
type Filter struct {
	EmployeeID *string
	Day        *time.Time
	Limit      uint64
}

// Repository журнал массовых блокировок слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch сохраняет заголовок пачки
// Если в контексте есть транзакция (txmanager), запрос выполняется в ней
func (r *Repository) CreateBatch(ctx context.Context, b *domain.BlockBatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(batchesTable).
		Columns(
			"id",
			"employee_id",
			"day",
			"requested",
			"succeeded",
			"failed",
			"skipped",
		).
		Values(
			b.ID,
			b.EmployeeID,
			b.Day.Format(domain.DateFormat),
			b.Requested,
			b.Succeeded,
			b.Failed,
			b.Skipped,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.CreatedAt); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// AddItems сохраняет исходы по слотам одной вставкой
func (r *Repository) AddItems(ctx context.Context, batchID string, items []domain.BlockItem) error {
	if len(items) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(itemsTable).
		Columns("batch_id", "slot", "ok", "skipped", "reservation_id", "error")
	for _, it := range items {
		builder = builder.Values(batchID, it.Slot.UTC(), it.OK, it.Skipped, nullString(it.ReservationID), nullString(it.Error))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddItems - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddItems - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List получает пачки по фильтру, новые первыми. Позиции не загружаются
func (r *Repository) List(ctx context.Context, filter Filter) ([]domain.BlockBatch, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"employee_id",
		"day",
		"requested",
		"succeeded",
		"failed",
		"skipped",
		"created_at",
	).
		From(batchesTable).
		OrderBy("created_at DESC")

	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.Day != nil {
		builder = builder.Where(squirrel.Eq{"day": filter.Day.Format(domain.DateFormat)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	batches := make([]domain.BlockBatch, 0)
	for rows.Next() {
		var b domain.BlockBatch
		if err := rows.Scan(
			&b.ID,
			&b.EmployeeID,
			&b.Day,
			&b.Requested,
			&b.Succeeded,
			&b.Failed,
			&b.Skipped,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan batch: %v", ErrScanRow, err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return batches, nil
}

// GetItems получает исходы по слотам пачки
func (r *Repository) GetItems(ctx context.Context, batchID string) ([]domain.BlockItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot", "ok", "skipped", "reservation_id", "error").
		From(itemsTable).
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("slot").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetItems - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.BlockItem, 0)
	for rows.Next() {
		var (
			it            domain.BlockItem
			reservationID sql.NullString
			errText       sql.NullString
		)
		if err := rows.Scan(&it.Slot, &it.OK, &it.Skipped, &reservationID, &errText); err != nil {
			return nil, fmt.Errorf("%w: GetItems - scan item: %v", ErrScanRow, err)
		}
		it.ReservationID = reservationID.String
		it.Error = errText.String
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetItems - iterate rows: %v", ErrScanRow, err)
	}

	if len(items) == 0 {
		return nil, ErrBatchNotFound
	}
	return items, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
