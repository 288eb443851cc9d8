package sql

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/bulkmeta/internal/repositories"
	"gorm.io/gorm"
)

// convertErrorType приводит ошибки gorm к ошибкам уровня репозитория, сохраняя исходный текст.
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %s", nativeErr, err.Error())
}
