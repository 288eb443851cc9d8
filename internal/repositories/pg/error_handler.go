package pg

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/bulkmeta/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// convertErrorType приводит ошибки pgx к ошибкам уровня репозитория.
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		nativeErr = repositories.ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
		nativeErr = repositories.ErrDuplicateKey
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %s", nativeErr, err.Error())
}
