package services

import "fmt"

// ErrorKind причина, по которой запись пакета не обновлена.
type ErrorKind string

const (
	ErrorKindNotFound         ErrorKind = "not_found"
	ErrorKindPermissionDenied ErrorKind = "permission_denied"
	ErrorKindValidationFailed ErrorKind = "validation_failed"
	ErrorKindWriteFailed      ErrorKind = "write_failed"
)

// ItemError ошибка по одной записи пакета. ItemID равен нулю, если ошибка не относится к записи.
type ItemError struct {
	ItemID ItemID    `json:"id,omitempty"`
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

// Message человекочитаемое описание ошибки.
func (e ItemError) Message() string {
	switch e.Kind {
	case ErrorKindNotFound:
		return fmt.Sprintf("Post ID %d not found", e.ItemID)
	case ErrorKindPermissionDenied:
		return "Cannot edit: " + e.Detail
	case ErrorKindValidationFailed:
		return "Empty title for: " + e.Detail
	case ErrorKindWriteFailed:
		return "Failed to update: " + e.Detail
	default:
		return e.Detail
	}
}

// BatchRequest входные данные пакетного действия.
type BatchRequest struct {
	Tokens []string // Сырые идентификаторы, как пришли от клиента
	Actor  Actor
}

// BatchResult итог пакетного действия.
// Updated + len(Errors) равно числу различных валидных идентификаторов пакета.
type BatchResult struct {
	Updated int         `json:"updated"`
	Errors  []ItemError `json:"errors"`
}
