// Пакет postgres — бэкенд kvstore на Postgres (pgxpool): ключ → jsonb.
// Даёт долговечное общее хранилище нескольким экземплярам сервиса,
// не меняя контракта last-writer-wins регистра.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/craftline/shopfront/internal/kvstore"
	"github.com/craftline/shopfront/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.KVStore = (*Store)(nil)

// NewPool — создаёт пул соединений к Postgres на базе DSN.
// Если maxConns > 0 — переопределяем размер пула.
// В конце выполняем Ping для fail-fast.
func NewPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if connErr := pool.Ping(ctx); connErr != nil {
		pool.Close()
		return nil, connErr
	}
	return pool, nil
}

// Store — kvstore поверх таблицы kv_entries.
// quotaBytes ограничивает суммарный размер значений; 0 — без лимита.
type Store struct {
	pool       *pgxpool.Pool
	quotaBytes int64
	log        ports.Logger
}

// New — конструктор Store.
func New(pool *pgxpool.Pool, quotaBytes int64, log ports.Logger) *Store {
	return &Store{pool: pool, quotaBytes: quotaBytes, log: log}
}

// Get — значение ключа; повреждённый jsonb считаем отсутствием (с логом).
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warnf(ctx, "kvstore: malformed value key=%s err=%v (treated as absent)", key, err)
		return false, nil
	}
	return true, nil
}

// Put — транзакционный upsert с проверкой бюджета внутри той же транзакции.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if s.quotaBytes > 0 {
		var used int64
		if err := tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(octet_length(value::text)), 0)
			FROM kv_entries WHERE key <> $1
		`, key).Scan(&used); err != nil {
			return fmt.Errorf("quota check: %w", err)
		}
		if used+int64(len(raw)) > s.quotaBytes {
			return fmt.Errorf("put %s (%d bytes over %d used): %w", key, len(raw), used, kvstore.ErrQuotaExceeded)
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO kv_entries (key, value, version, updated_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			version = kv_entries.version + 1,
			updated_at = now()
	`, key, raw); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete — удаляет ключ; отсутствие строки не ошибка.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Version — счётчик записей ключа; пустая строка — ключа нет.
func (s *Store) Version(ctx context.Context, key string) (string, error) {
	var version int64
	err := s.pool.QueryRow(ctx, `SELECT version FROM kv_entries WHERE key = $1`, key).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("version %s: %w", key, err)
	}
	return strconv.FormatInt(version, 10), nil
}
