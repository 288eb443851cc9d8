package smocks

import (
	"context"

	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/stretchr/testify/mock"
)

type BulkActionMock struct {
	mock.Mock
}

func (b *BulkActionMock) Run(ctx context.Context, batch services.BatchRequest) (services.BatchResult, error) {
	args := b.Called(ctx, batch)
	return args.Get(0).(services.BatchResult), args.Error(1) //nolint:wrapcheck,errcheck
}
