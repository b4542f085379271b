package pagebuf

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/pkg/metrics"
)

// missingChunks — начала чанков, пересекающих окно и ещё не загруженных.
// Чанки за известным точным концом данных не запрашиваются.
func (b *Buffer) missingChunks(first, rows int) []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []int
	start := (first / b.chunkSize) * b.chunkSize
	for cs := start; cs < first+rows; cs += b.chunkSize {
		if b.totalExact && cs >= b.total {
			break
		}
		if !b.loaded[cs] {
			out = append(out, cs)
		}
	}
	return out
}

// fetchChunk — подкачка одного чанка. Сетевой вызов идёт без мьютекса;
// результат перезаписывает буфер (last-write-wins для запоздавших ответов).
func (b *Buffer) fetchChunk(ctx context.Context, chunkStart int) error {
	metrics.BufferCacheOps.WithLabelValues("fetch").Inc()

	items, err := b.client.ListProducts(ctx, chunkStart, b.chunkSize)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, p := range items {
		b.entries[chunkStart+i] = p
	}
	b.loaded[chunkStart] = true

	// Полный чанк — спекулятивно сигналим «есть ещё хотя бы одна страница»;
	// короткий непустой чанк (или пустой на нуле) фиксирует точный конец.
	// Пустой чанк в глубине говорит лишь «конец раньше chunkStart»: точное
	// значение даст короткий чанк ближе к началу.
	switch {
	case len(items) == b.chunkSize:
		if !b.totalExact && chunkStart+len(items)+1 > b.total {
			b.total = chunkStart + len(items) + 1
		}
	case len(items) > 0 || chunkStart == 0:
		b.total = chunkStart + len(items)
		b.totalExact = true
	default:
		if !b.totalExact && b.total > chunkStart {
			b.total = chunkStart
		}
	}

	metrics.BufferCacheSize.Set(float64(len(b.entries)))
	return nil
}

// slice — нарезка окна из буфера после (воз)можной подкачки.
func (b *Buffer) slice(first, rows int) ([]domain.Product, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := first + rows
	if b.totalExact && end > b.total {
		end = b.total
	}

	items := make([]domain.Product, 0, rows)
	for i := first; i < end; i++ {
		if p, ok := b.entries[i]; ok {
			items = append(items, p)
		}
	}
	return items, b.total
}

// totalEstimate — текущая оценка total (для ответа при ошибке подкачки).
func (b *Buffer) totalEstimate() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}
