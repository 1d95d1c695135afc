package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/mntdherm/CW-BookingService/pkg/dbmetrics"
)

var (
	// ErrSerializationFailure возвращается, когда БД отклонила транзакцию
	// из-за конфликта сериализации (SQLSTATE 40001) или взаимоблокировки.
	// Вызывающий код трактует это как проигранную гонку за слот
	ErrSerializationFailure = errors.New("txmanager: serialization failure")

	// ErrExclusionViolation возвращается при нарушении exclusion constraint
	// (SQLSTATE 23P01) - страховка на уровне хранилища от двойного бронирования
	ErrExclusionViolation = errors.New("txmanager: exclusion constraint violation")

	// ErrBeginTx возвращается при ошибке начала транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// Коды ошибок PostgreSQL
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqExclusionViolation   = "23P01"
)

// TransactionManager выполняет функции внутри транзакции БД
// Транзакция кладется в контекст (dbmetrics.WithExecutor), репозитории
// автоматически используют её вместо обычного соединения
type TransactionManager struct {
	db dbmetrics.TxBeginner
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db dbmetrics.TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE
// Используется для операций, где нужна защита от гонок read-then-write
// (проверка доступности слота + вставка бронирования)
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	// Откат гарантирован на всех путях выхода, включая panic в fn
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		return translatePQError(err)
	}

	if err := tx.Commit(); err != nil {
		if translated := translatePQError(err); !errors.Is(translated, err) {
			return translated
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}
	committed = true

	return nil
}

// translatePQError конвертирует коды ошибок PostgreSQL в sentinel-ошибки пакета
func translatePQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pqSerializationFailure, pqDeadlockDetected:
		return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	case pqExclusionViolation:
		return fmt.Errorf("%w: %v", ErrExclusionViolation, err)
	default:
		return err
	}
}
