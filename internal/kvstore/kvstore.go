// Пакет kvstore — общие контракты локального key-value хранилища:
// сигнальные ошибки, имена ключей и poll-наблюдатель за внешними изменениями.
// Реализации бэкендов живут в подпакетах (file, postgres).
package kvstore

import "errors"

// ErrQuotaExceeded — запись не влезла в бюджет места.
// Вызывающий применяет свою политику вытеснения и повторяет запись.
var ErrQuotaExceeded = errors.New("kvstore: quota exceeded")

// Ключи коллекций. Каждая коллекция целиком живёт под одним ключом
// и целиком пересериализуется при каждой записи.
const (
	KeyCart          = "shopfront:cart"
	KeyOrders        = "shopfront:orders"
	KeyNotifications = "shopfront:notifications"
)
