package repositories

import "errors"

// Общие ошибки уровня репозитория. Реализации обязаны приводить к ним ошибки своих хранилищ.
var (
	ErrNotFound     = errors.New("[repository]: record not found")
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
