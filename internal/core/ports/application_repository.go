package ports

import (
	"context"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

// ApplicationRepository persists submitted applications.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *domain.Application) error
}
