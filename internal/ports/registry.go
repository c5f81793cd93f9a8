package ports

import (
	"context"

	"artifact-cleaner/internal/types"
)

// VersionRegistryPort is the subset of the hosting service API used for
// cleaning. Non-2xx answers surface as *types.StatusError and timeouts wrap
// types.ErrTimeout.
type VersionRegistryPort interface {
	ListVersions(ctx context.Context, pkg types.PackageCoordinates) ([]string, error)
	GetVersion(ctx context.Context, creds types.Credentials, pkg types.PackageCoordinates, version string) (types.VersionInfo, error)
	DeleteVersion(ctx context.Context, creds types.Credentials, pkg types.PackageCoordinates, version string) error
}
