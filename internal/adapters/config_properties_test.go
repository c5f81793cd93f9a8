package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPropertiesConfigRequire(t *testing.T) {
	path := writeProperties(t, "bintray.owner=acme\nbintray.repo = builds\n# comment\nbintray.api.key=s3cr3t\nbintray.user=\n")
	config, err := NewPropertiesConfigAdapter(path, "").Load()
	require.NoError(t, err)

	owner, err := config.Require(KeyOwner)
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)

	repo, err := config.Require(KeyRepo)
	require.NoError(t, err)
	assert.Equal(t, "builds", repo)

	key, err := config.Require(KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", key)
}

func TestPropertiesConfigMissingOrEmptyKey(t *testing.T) {
	path := writeProperties(t, "bintray.owner=acme\nbintray.user=\n")
	config, err := NewPropertiesConfigAdapter(path, "").Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty value", key: KeyUser},
		{name: "absent key", key: KeyPackage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Require(tt.key)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Equal(t, "Error: define '"+tt.key+"' in '"+path+"'", builderMessage(err))
		})
	}
}

func TestPropertiesConfigKeysAreCaseSensitive(t *testing.T) {
	path := writeProperties(t, "Bintray.Owner=acme\nbintray.repo=builds\n")
	config, err := NewPropertiesConfigAdapter(path, "ARTIFACT_CLEANER_TEST").Load()
	require.NoError(t, err)

	_, err = config.Require(KeyOwner)
	require.Error(t, err)
	assert.Equal(t, "Error: define '"+KeyOwner+"' in '"+path+"'", builderMessage(err))
	assert.Equal(t, "builds", config.Lookup(KeyRepo))
}

func TestPropertiesConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.properties")
	_, err := NewPropertiesConfigAdapter(path, "").Load()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Equal(t, "Error: '"+path+"' file does not exist", builderMessage(err))
}

func TestPropertiesConfigEnvironmentOverride(t *testing.T) {
	path := writeProperties(t, "bintray.owner=acme\nbintray.api.key=from-file\n")
	t.Setenv("ARTIFACT_CLEANER_TEST_BINTRAY_API_KEY", "from-env")

	config, err := NewPropertiesConfigAdapter(path, "ARTIFACT_CLEANER_TEST").Load()
	require.NoError(t, err)
	key, err := config.Require(KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
	assert.Equal(t, "acme", config.Lookup(KeyOwner))
	assert.Equal(t, "", config.Lookup(KeyEndpoint))
}

func TestNewPropertiesConfigAdapterDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultConfigFile, NewPropertiesConfigAdapter("  ", "").Path)
}

func builderMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return builder.Msg
	}
	return ""
}
