package types

import "time"

type ArtifactType string

const (
	ArtifactTypeEAP   ArtifactType = "EAP"
	ArtifactTypeDEV   ArtifactType = "DEV"
	ArtifactTypeOther ArtifactType = "OTHER"
)

// Deletable reports whether versions of this type are ever considered for
// removal. Release builds (OTHER) never are.
func (t ArtifactType) Deletable() bool {
	return t == ArtifactTypeDEV || t == ArtifactTypeEAP
}

type PackageCoordinates struct {
	Owner   string
	Repo    string
	Package string
}

type Credentials struct {
	User   string
	APIKey string
}

type VersionInfo struct {
	Name      string
	CreatedAt time.Time
}
