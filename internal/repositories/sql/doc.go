// Package sql предоставляет реализацию репозитория записей поверх gorm (SQLite).
//
// Ошибки gorm преобразуются в общие ошибки уровня репозитория с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
