package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifact-cleaner/internal/types"
)

func TestPreservedSetFirstCountOnly(t *testing.T) {
	var versions []string
	for i := 20; i > 0; i-- {
		versions = append(versions, fmt.Sprintf("2023.1-dev-%d", i))
	}
	preserved := PreservedSet(versions, 15)
	require.Len(t, preserved, 15)
	for _, version := range versions[:15] {
		assert.Contains(t, preserved, version)
	}
	for _, version := range versions[15:] {
		assert.NotContains(t, preserved, version)
	}
}

func TestPreservedSetFiltersNonDevInWindow(t *testing.T) {
	versions := []string{
		"2023.2",
		"2023.2-dev-30",
		"2023.2-eap-4",
		"2023.2-dev-29",
		"2023.1.5",
		"2023.1-dev-10",
	}
	preserved := PreservedSet(versions, 4)
	want := map[string]struct{}{
		"2023.2-dev-30": {},
		"2023.2-dev-29": {},
	}
	if diff := cmp.Diff(want, preserved); diff != "" {
		t.Fatalf("unexpected preserved set (-want +got):\n%s", diff)
	}
}

func TestPreservedSetShortList(t *testing.T) {
	preserved := PreservedSet([]string{"1.0-dev-1"}, 15)
	assert.Len(t, preserved, 1)
	assert.Empty(t, PreservedSet(nil, 15))
	assert.Empty(t, PreservedSet([]string{"1.0-dev-1"}, 0))
}

func TestPreliminaryDecision(t *testing.T) {
	preserved := map[string]struct{}{"1.0-dev-2": {}}
	tests := []struct {
		name     string
		version  string
		expected types.Decision
	}{
		{name: "other skipped", version: "1.0", expected: types.DecisionSkipType},
		{name: "preserved dev", version: "1.0-dev-2", expected: types.DecisionSkipPreserved},
		{name: "old dev needs lookup", version: "1.0-dev-1", expected: ""},
		{name: "eap needs lookup", version: "1.0-eap-1", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreliminaryDecision(tt.version, ClassifyVersion(tt.version), preserved)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPreliminaryDecisionOtherIgnoresPreservation(t *testing.T) {
	preserved := map[string]struct{}{"2023.1": {}}
	assert.Equal(t, types.DecisionSkipType, PreliminaryDecision("2023.1", types.ArtifactTypeOther, preserved))
}

func TestCutoffAndTooNew(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	cutoff := Cutoff(now, DefaultRetentionPolicy())
	assert.Equal(t, time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC), cutoff)

	assert.True(t, TooNew(cutoff, cutoff), "on cutoff is too new")
	assert.True(t, TooNew(cutoff.Add(time.Second), cutoff))
	assert.False(t, TooNew(cutoff.Add(-time.Second), cutoff))
}

func TestReversed(t *testing.T) {
	input := []string{"c", "b", "a"}
	if diff := cmp.Diff([]string{"a", "b", "c"}, Reversed(input)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"c", "b", "a"}, input, "input must not be mutated")
	assert.Empty(t, Reversed(nil))
}
