package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artifact-cleaner/internal/types"
)

func TestClassifyVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.ArtifactType
	}{
		{name: "eap qualifier", input: "2023.1.2-eap-99", expected: types.ArtifactTypeEAP},
		{name: "rc qualifier", input: "1.4-rc-3", expected: types.ArtifactTypeEAP},
		{name: "dev qualifier two part", input: "2023.1-dev-12", expected: types.ArtifactTypeDEV},
		{name: "dev qualifier with tag", input: "2023.1.1-M2-dev-4512", expected: types.ArtifactTypeDEV},
		{name: "release", input: "2023.1.3", expected: types.ArtifactTypeOther},
		{name: "release with tag", input: "1.3.50-release", expected: types.ArtifactTypeOther},
		{name: "unknown qualifier", input: "1.3-beta-1", expected: types.ArtifactTypeOther},
		{name: "uppercase qualifier", input: "1.3-DEV-1", expected: types.ArtifactTypeOther},
		{name: "mixed case qualifier", input: "1.3-Eap-1", expected: types.ArtifactTypeOther},
		{name: "qualifier without build", input: "1.3-dev", expected: types.ArtifactTypeOther},
		{name: "not a version", input: "not-a-version", expected: types.ArtifactTypeOther},
		{name: "trailing garbage", input: "1.3-dev-1x", expected: types.ArtifactTypeOther},
		{name: "leading garbage", input: "v1.3-dev-1", expected: types.ArtifactTypeOther},
		{name: "single number", input: "12-dev-1", expected: types.ArtifactTypeOther},
		{name: "empty", input: "", expected: types.ArtifactTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyVersion(tt.input))
		})
	}
}

func TestArtifactTypeDeletable(t *testing.T) {
	assert.True(t, types.ArtifactTypeDEV.Deletable())
	assert.True(t, types.ArtifactTypeEAP.Deletable())
	assert.False(t, types.ArtifactTypeOther.Deletable())
}
