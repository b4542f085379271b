// Пакет file — файловый бэкенд kvstore: одно JSON-значение на ключ
// в каталоге состояния, с бюджетом места на весь каталог.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/craftline/shopfront/internal/kvstore"
	"github.com/craftline/shopfront/internal/ports"
)

// Проверка, что Store удовлетворяет порту KVStore.
var _ ports.KVStore = (*Store)(nil)

// Store — каталог с JSON-файлами, по файлу на ключ.
// quotaBytes ограничивает суммарный размер всех значений; 0 — без лимита.
// Мьютекс сериализует писателей внутри процесса; между процессами
// хранилище остаётся last-writer-wins регистром.
type Store struct {
	dir        string
	quotaBytes int64
	log        ports.Logger

	mu sync.Mutex
}

// New — создаёт каталог состояния (если его нет) и возвращает Store.
func New(dir string, quotaBytes int64, log ports.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir, quotaBytes: quotaBytes, log: log}, nil
}

// Get — читает и десериализует значение ключа.
// Повреждённый JSON не пробрасывается: логируем и отвечаем «ключа нет»,
// чтобы вызывающий мог самовосстановиться чистой записью.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warnf(ctx, "kvstore: malformed value key=%s err=%v (treated as absent)", key, err)
		return false, nil
	}
	return true, nil
}

// Put — сериализует значение и атомарно (tmp + rename) записывает файл ключа.
// Превышение бюджета каталога — kvstore.ErrQuotaExceeded.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quotaBytes > 0 {
		used, err := s.usedBytesExcept(key)
		if err != nil {
			return err
		}
		if used+int64(len(raw)) > s.quotaBytes {
			return fmt.Errorf("put %s (%d bytes over %d used): %w", key, len(raw), used, kvstore.ErrQuotaExceeded)
		}
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

// Delete — удаляет ключ; отсутствие ключа не ошибка.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Version — маркер содержимого ключа (FNV-хэш байтов файла).
// Пустая строка — ключа нет.
func (s *Store) Version(_ context.Context, key string) (string, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("version %s: %w", key, err)
	}
	h := fnv.New64a()
	_, _ = h.Write(raw)
	return fmt.Sprintf("%x", h.Sum64()), nil
}

// ------вспомогательные функции------

// path — имя файла ключа (двоеточия недопустимы в именах на части ФС).
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, strings.ReplaceAll(key, ":", "_")+".json")
}

// usedBytesExcept — суммарный размер значений каталога без файла key.
func (s *Store) usedBytesExcept(key string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read dir: %w", err)
	}
	self := filepath.Base(s.path(key))

	var used int64
	for _, e := range entries {
		if e.IsDir() || e.Name() == self || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		used += info.Size()
	}
	return used, nil
}
