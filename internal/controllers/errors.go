package controllers

import "errors"

// Ошибки.
var (
	ErrMalformedRequest = errors.New("malformed request")  // Тело запроса не разобрано
	ErrUnknownAction    = errors.New("unknown bulk action") // Действие не зарегистрировано для типа записей
	ErrInternal         = errors.New("internal error")      // Прочая ошибка
)
