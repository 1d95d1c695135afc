package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mntdherm/CW-BookingService/internal/domain"
	"github.com/mntdherm/CW-BookingService/pkg/dbmetrics"
	"github.com/mntdherm/CW-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий расписания вендора: окна работы и блокировки времени
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOperatingWindow получает окно работы вендора на день недели
// Возвращает ErrWindowNotFound, если записи нет (день считается закрытым)
func (r *Repository) GetOperatingWindow(ctx context.Context, vendorID int64, weekday time.Weekday) (*domain.OperatingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("operating_hours").
		Where(squirrel.Eq{"vendor_id": vendorID, "day_of_week": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingWindow - build select query: %v", ErrBuildQuery, err)
	}

	window, err := r.scanWindow(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return window, nil
}

// ListOperatingWindows получает все окна работы вендора (недельная сетка)
func (r *Repository) ListOperatingWindows(ctx context.Context, vendorID int64) ([]*domain.OperatingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("operating_hours").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOperatingWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOperatingWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.OperatingWindow, 0, 7)
	for rows.Next() {
		var w domain.OperatingWindow
		var weekday int
		var openTime, closeTime sql.NullString

		if err := rows.Scan(&w.ID, &w.VendorID, &weekday, &openTime, &closeTime, &w.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: ListOperatingWindows - scan row: %v", ErrScanRow, err)
		}
		w.Weekday = time.Weekday(weekday)
		if err := assignTimes(&w, openTime, closeTime); err != nil {
			return nil, err
		}

		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOperatingWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// UpsertOperatingWindow создает или обновляет окно работы вендора на день недели
func (r *Repository) UpsertOperatingWindow(ctx context.Context, window *domain.OperatingWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// У закрытого дня времена не хранятся
	var openTime, closeTime interface{}
	if !window.IsClosed {
		openTime = window.OpenTime
		closeTime = window.CloseTime
	}

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns("vendor_id", "day_of_week", "open_time", "close_time", "is_closed").
		Values(window.VendorID, int(window.Weekday), openTime, closeTime, window.IsClosed).
		Suffix(`ON CONFLICT (vendor_id, day_of_week) DO UPDATE
			SET open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    is_closed = EXCLUDED.is_closed,
			    updated_at = NOW()
			RETURNING id`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertOperatingWindow - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&window.ID); err != nil {
		return fmt.Errorf("%w: UpsertOperatingWindow - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateBlockedTime создает блокировку времени вендора
func (r *Repository) CreateBlockedTime(ctx context.Context, blocked *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("vendor_id", "start_time", "end_time", "reason").
		Values(blocked.VendorID, blocked.StartTime, blocked.EndTime, blocked.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// ListBlockedOverlapping получает блокировки вендора, пересекающиеся с интервалом
func (r *Repository) ListBlockedOverlapping(ctx context.Context, vendorID int64, interval domain.TimeInterval) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("blocked_times").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		// Полуоткрытые интервалы, как и в проверке бронирований
		Where(squirrel.Lt{"start_time": interval.End}).
		Where(squirrel.Gt{"end_time": interval.Start}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		var t domain.BlockedTime
		var createdAt sql.NullTime

		if err := rows.Scan(&t.ID, &t.VendorID, &t.StartTime, &t.EndTime, &t.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedOverlapping - scan row: %v", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time

		blocked = append(blocked, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedOverlapping - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// DeleteBlockedTime удаляет блокировку времени вендора
// vendorID входит в условие, чтобы вендор не мог удалить чужую блокировку
func (r *Repository) DeleteBlockedTime(ctx context.Context, vendorID, blockedTimeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": blockedTimeID, "vendor_id": vendorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

// scanWindow сканирует одну строку окна работы
func (r *Repository) scanWindow(row *sql.Row) (*domain.OperatingWindow, error) {
	var w domain.OperatingWindow
	var weekday int
	var openTime, closeTime sql.NullString

	err := row.Scan(&w.ID, &w.VendorID, &weekday, &openTime, &closeTime, &w.IsClosed)
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanWindow - scan row: %v", ErrScanRow, err)
	}

	w.Weekday = time.Weekday(weekday)
	if err := assignTimes(&w, openTime, closeTime); err != nil {
		return nil, err
	}

	return &w, nil
}

// assignTimes переносит open/close из NULL-able колонок в доменную модель
func assignTimes(w *domain.OperatingWindow, openTime, closeTime sql.NullString) error {
	if w.IsClosed {
		return nil
	}
	if !openTime.Valid || !closeTime.Valid {
		// Открытый день без времен - некорректные данные
		return fmt.Errorf("%w: open window without open/close times (vendor=%d, weekday=%d)",
			ErrScanRow, w.VendorID, int(w.Weekday))
	}
	if err := w.OpenTime.Scan(openTime.String); err != nil {
		return fmt.Errorf("%w: invalid open_time: %v", ErrScanRow, err)
	}
	if err := w.CloseTime.Scan(closeTime.String); err != nil {
		return fmt.Errorf("%w: invalid close_time: %v", ErrScanRow, err)
	}
	return nil
}
