package core

import (
	"time"

	"artifact-cleaner/internal/types"
)

const (
	DefaultPreserveCount = 15
	DefaultMaxAge        = 30 * 24 * time.Hour
)

func DefaultRetentionPolicy() types.RetentionPolicy {
	return types.RetentionPolicy{
		PreserveCount: DefaultPreserveCount,
		MaxAge:        DefaultMaxAge,
	}
}

// PreservedSet takes the first count entries of versions in service order
// (newest first) and keeps those classified DEV. DEV builds further down the
// list are never preserved.
func PreservedSet(versions []string, count int) map[string]struct{} {
	preserved := map[string]struct{}{}
	if count <= 0 {
		return preserved
	}
	limit := count
	if limit > len(versions) {
		limit = len(versions)
	}
	for _, version := range versions[:limit] {
		if ClassifyVersion(version) == types.ArtifactTypeDEV {
			preserved[version] = struct{}{}
		}
	}
	return preserved
}

// Cutoff is the creation time from which a version counts as too new to
// delete.
func Cutoff(now time.Time, policy types.RetentionPolicy) time.Time {
	return now.Add(-policy.MaxAge)
}

// PreliminaryDecision applies the checks that need no metadata. It returns
// an empty decision when the version has to be looked up remotely.
func PreliminaryDecision(version string, kind types.ArtifactType, preserved map[string]struct{}) types.Decision {
	if !kind.Deletable() {
		return types.DecisionSkipType
	}
	if _, ok := preserved[version]; ok {
		return types.DecisionSkipPreserved
	}
	return ""
}

// TooNew reports whether created is on or after cutoff.
func TooNew(created time.Time, cutoff time.Time) bool {
	return !created.Before(cutoff)
}

// Reversed returns a copy of versions in reverse order so the oldest
// entries are visited first.
func Reversed(versions []string) []string {
	out := make([]string, len(versions))
	for i, version := range versions {
		out[len(versions)-1-i] = version
	}
	return out
}
