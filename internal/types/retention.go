package types

import "time"

type RetentionPolicy struct {
	PreserveCount int
	MaxAge        time.Duration
}

type Decision string

const (
	DecisionSkipType      Decision = "skip-type"
	DecisionSkipPreserved Decision = "skip-preserved"
	DecisionSkipRecent    Decision = "skip-recent"
	DecisionDeclined      Decision = "declined"
	DecisionDeleted       Decision = "deleted"
	DecisionDryRun        Decision = "dry-run"
	DecisionTimeout       Decision = "timeout"
	DecisionFailed        Decision = "failed"
)

type VersionDecision struct {
	Version   string
	Type      ArtifactType
	Decision  Decision
	CreatedAt time.Time
	Outcome   string
}

type CleanReport struct {
	Owner     string
	Repo      string
	Package   string
	StartedAt time.Time
	Found     int
	Stopped   bool
	Decisions []VersionDecision
}
