package core

import (
	"regexp"

	"artifact-cleaner/internal/types"
)

// versionPattern matches a numeric version core, an optional alphanumeric
// tag and an optional "-<qualifier>-<build>" suffix. Only lowercase
// qualifiers are captured.
var versionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[A-Za-z0-9]+)?(?:-([a-z]+)-\d+)?$`)

// ClassifyVersion maps a published version identifier to its artifact type.
// Identifiers that do not match the whole pattern are OTHER.
func ClassifyVersion(version string) types.ArtifactType {
	match := versionPattern.FindStringSubmatch(version)
	if match == nil {
		return types.ArtifactTypeOther
	}
	switch match[1] {
	case "eap", "rc":
		return types.ArtifactTypeEAP
	case "dev":
		return types.ArtifactTypeDEV
	default:
		return types.ArtifactTypeOther
	}
}
