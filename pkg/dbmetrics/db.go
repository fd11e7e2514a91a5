package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// Observer приёмник метрик БД. *metrics.Metrics реализует этот интерфейс
type Observer interface {
	ObserveDBQuery(kind string, d time.Duration)
	SetDBPool(db string, open, inUse int)
}

// DefaultStatsInterval период сбора статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, которая пишет длительность запросов и статистику пула
// nil Observer допустим: тогда обёртка только прокидывает вызовы
type DB struct {
	db   *sql.DB
	obs  Observer
	name string
}

// Wrap оборачивает db и запускает сбор статистики пула до закрытия stopCh
func Wrap(db *sql.DB, obs Observer, name string, interval time.Duration, stopCh <-chan struct{}) *DB {
	w := &DB{db: db, obs: obs, name: name}
	if obs != nil && stopCh != nil {
		go w.collectStats(interval, stopCh)
	}
	return w
}

// WrapWithDefault Wrap с интервалом DefaultStatsInterval
func WrapWithDefault(db *sql.DB, obs Observer, name string, stopCh <-chan struct{}) *DB {
	return Wrap(db, obs, name, DefaultStatsInterval, stopCh)
}

// Unwrap исходный *sql.DB
func (w *DB) Unwrap() *sql.DB { return w.db }

func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer w.observe("exec", time.Now())
	return w.db.ExecContext(ctx, query, args...)
}

func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer w.observe("query", time.Now())
	return w.db.QueryContext(ctx, query, args...)
}

func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer w.observe("query_row", time.Now())
	return w.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию, запросы внутри которой тоже измеряются
func (w *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := w.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &tracedTx{SqlTxWrapper: SqlTxWrapper{Tx: tx}, parent: w}, nil
}

// PingContext проверка соединения (для /healthz)
func (w *DB) PingContext(ctx context.Context) error {
	return w.db.PingContext(ctx)
}

func (w *DB) observe(kind string, start time.Time) {
	if w.obs == nil {
		return
	}
	w.obs.ObserveDBQuery(kind, time.Since(start))
}

func (w *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := w.db.Stats()
			w.obs.SetDBPool(w.name, stats.OpenConnections, stats.InUse)
		}
	}
}

type tracedTx struct {
	SqlTxWrapper
	parent *DB
}

func (t *tracedTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe("tx_exec", time.Now())
	return t.Tx.ExecContext(ctx, query, args...)
}

func (t *tracedTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe("tx_query", time.Now())
	return t.Tx.QueryContext(ctx, query, args...)
}

func (t *tracedTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe("tx_query_row", time.Now())
	return t.Tx.QueryRowContext(ctx, query, args...)
}
