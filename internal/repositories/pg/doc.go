// Package pg предоставляет реализацию репозитория записей для PostgreSQL поверх pgx.
//
// Ошибки драйвера преобразуются в общие ошибки уровня репозитория с помощью convertErrorType:
//   - pgx.ErrNoRows -> repositories.ErrNotFound
//   - uniqueViolationCode (23505) -> repositories.ErrDuplicateKey
//   - другие ошибки -> repositories.ErrUnknown
package pg
