package ports

import "context"

// KVStore — адаптер локального key-value хранилища с JSON-значениями.
// Контракт:
//   - Get десериализует значение в dest; (false, nil) — ключа нет ЛИБО
//     значение повреждено (повреждение логируется реализацией, не пробрасывается);
//   - Put при исчерпании бюджета места возвращает ошибку, для которой
//     errors.Is(err, kvstore.ErrQuotaExceeded) == true, чтобы вызывающий
//     мог применить свою политику вытеснения;
//   - Version возвращает монотонно меняющийся маркер содержимого ключа
//     (для poll-наблюдателя за внешними изменениями).
//
// Хранилище — это last-writer-wins регистр без транзакций: каждая запись
// полностью пересериализует коллекцию, одновременные писатели одного ключа
// могут затереть друг друга. Это принятое ограничение, а не недосмотр.
type KVStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Version(ctx context.Context, key string) (string, error)
}
