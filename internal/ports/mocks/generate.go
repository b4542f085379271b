//go:generate mockgen -source=../kv_store.go             -destination=./mock_kv_store.go             -package=mocks
//go:generate mockgen -source=../catalog.go              -destination=./mock_catalog.go              -package=mocks
//go:generate mockgen -source=../cart_manager.go         -destination=./mock_cart_manager.go         -package=mocks
//go:generate mockgen -source=../order_registry.go       -destination=./mock_order_registry.go       -package=mocks
//go:generate mockgen -source=../order_validator.go      -destination=./mock_order_validator.go      -package=mocks
//go:generate mockgen -source=../checkout.go             -destination=./mock_checkout.go             -package=mocks
//go:generate mockgen -source=../event_publisher.go      -destination=./mock_event_publisher.go      -package=mocks
//go:generate mockgen -source=../notification_history.go -destination=./mock_notification_history.go -package=mocks
//go:generate mockgen -source=../admin_catalog.go        -destination=./mock_admin_catalog.go        -package=mocks

package mocks
