package services

import "errors"

var (
	ErrUnknown        = errors.New("[service]: unknown error")
	ErrRecordNotFound = errors.New("[service]: record not found")
	// ErrNoItemsSubmitted пакет пришел без единого идентификатора. Пакет не выполняется.
	ErrNoItemsSubmitted = errors.New("[service]: no items submitted")
	// ErrInsufficientPermissions у пользователя нет права edit_posts ни на одну запись.
	ErrInsufficientPermissions = errors.New("[service]: insufficient permissions")
	ErrActionRegistered        = errors.New("[service]: bulk action already registered")
	ErrUnknownAction           = errors.New("[service]: unknown bulk action")
)
