package actions

import (
	"context"

	"github.com/carson-networks/audit-sampler/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
