package fixture

import (
	"context"

	"sqlfix/internal/domain"
)

// Executor executes fixture scripts against the target store
type Executor interface {
	Setup(ctx context.Context, scriptLocation string) (domain.ScriptResult, error)
	Teardown(ctx context.Context, scriptLocation string) (domain.ScriptResult, error)
}
