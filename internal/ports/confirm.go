package ports

import (
	"context"

	"artifact-cleaner/internal/types"
)

// ConfirmPort decides whether an obsolete version may be deleted. It returns
// types.ErrInputClosed when no further answers can be obtained.
type ConfirmPort interface {
	ConfirmDeletion(ctx context.Context, candidate types.VersionDecision) (bool, error)
}
