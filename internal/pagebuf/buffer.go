// Пакет pagebuf — буферный кэш постраничной подгрузки для админ-таблицы:
// разреженный буфер по абсолютным позициям, подкачка фиксированными чанками,
// уже виденные чанки повторно не запрашиваются.
package pagebuf

import (
	"context"
	"fmt"
	"sync"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/ports"
	"github.com/craftline/shopfront/pkg/metrics"
)

// DefaultChunkSize — размер чанка подкачки по умолчанию.
const DefaultChunkSize = 100

var _ ports.AdminCatalog = (*Buffer)(nil)

// Buffer — буферный кэш поверх листинга каталога.
//
// Оценка общего числа записей спекулятивна: полный чанк означает
// «дальше может быть ещё» (total = конец чанка + 1), короткий чанк
// фиксирует точный конец. Запоздавший ответ сети просто перезаписывает
// буфер, возможно более старыми данными — принятая и задокументированная
// слабость (отмена запросов не требуется).
type Buffer struct {
	client    ports.CatalogClient
	chunkSize int
	log       ports.Logger

	mu         sync.Mutex
	entries    map[int]domain.Product
	loaded     map[int]bool // начала загруженных чанков
	total      int
	totalExact bool
}

// New — конструктор. chunkSize <= 0 заменяется на DefaultChunkSize.
func New(client ports.CatalogClient, chunkSize int, log ports.Logger) *Buffer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Buffer{
		client:    client,
		chunkSize: chunkSize,
		log:       log,
		entries:   make(map[int]domain.Product),
		loaded:    make(map[int]bool),
	}
}

// Window — записи окна [first, first+rows) и текущая оценка total.
// Полностью забуференное окно отдаётся без сетевого вызова; иначе
// подкачиваются недостающие чанки, и окно НАРЕЗАЕТСЯ ЗАНОВО из буфера
// (окно может склеиваться из старого и нового чанков на границе).
func (b *Buffer) Window(ctx context.Context, first, rows int) ([]domain.Product, int, error) {
	if first < 0 {
		first = 0
	}
	if rows <= 0 {
		return nil, 0, fmt.Errorf("pagebuf: rows must be positive, got %d", rows)
	}

	fetched := false
	for _, cs := range b.missingChunks(first, rows) {
		if err := b.fetchChunk(ctx, cs); err != nil {
			return nil, b.totalEstimate(), err
		}
		fetched = true
	}
	if !fetched {
		metrics.BufferCacheOps.WithLabelValues("hit").Inc()
	}

	items, total := b.slice(first, rows)
	return items, total, nil
}

// Refresh — полный сброс буфера и оценки total; частичная инвалидация
// не поддерживается (простота важнее экономии на маленьких админ-списках).
func (b *Buffer) Refresh(_ context.Context) {
	b.mu.Lock()
	b.entries = make(map[int]domain.Product)
	b.loaded = make(map[int]bool)
	b.total = 0
	b.totalExact = false
	b.mu.Unlock()

	metrics.BufferCacheOps.WithLabelValues("refresh").Inc()
	metrics.BufferCacheSize.Set(0)
}
