package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"
	"github.com/spf13/viper"

	"artifact-cleaner/internal/ports"
)

const DefaultConfigFile = "conf.properties"

const (
	KeyOwner    = "bintray.owner"
	KeyRepo     = "bintray.repo"
	KeyPackage  = "bintray.package"
	KeyUser     = "bintray.user"
	KeyAPIKey   = "bintray.api.key"
	KeyEndpoint = "bintray.endpoint"
)

// PropertiesConfig is a loaded key=value configuration file. Keys are
// case-sensitive. Values can be overridden from the environment, e.g.
// BINTRAY_API_KEY under the configured prefix.
type PropertiesConfig struct {
	source string
	props  *properties.Properties
	env    *viper.Viper
}

type PropertiesConfigAdapter struct {
	Path      string
	EnvPrefix string
}

func NewPropertiesConfigAdapter(path string, envPrefix string) PropertiesConfigAdapter {
	if strings.TrimSpace(path) == "" {
		path = DefaultConfigFile
	}
	return PropertiesConfigAdapter{Path: path, EnvPrefix: envPrefix}
}

func (a PropertiesConfigAdapter) Load() (PropertiesConfig, error) {
	if _, err := os.Stat(a.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PropertiesConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("Error: '%s' file does not exist", a.Path)).
				WithCause(err)
		}
		return PropertiesConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("Error: cannot access '%s'", a.Path)).
			WithCause(err)
	}
	props, err := properties.LoadFile(a.Path, properties.UTF8)
	if err != nil {
		return PropertiesConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("Error: cannot read '%s'", a.Path)).
			WithCause(err)
	}
	config := PropertiesConfig{source: a.Path, props: props}
	if a.EnvPrefix != "" {
		env := viper.New()
		env.SetEnvPrefix(a.EnvPrefix)
		env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		env.AutomaticEnv()
		config.env = env
	}
	return config, nil
}

// Require returns the value for key, failing when it is absent or empty.
func (c PropertiesConfig) Require(key string) (string, error) {
	value := c.Lookup(key)
	if value == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("Error: define '%s' in '%s'", key, c.source))
	}
	return value, nil
}

// Lookup returns the value for key, or "" when it is not set.
func (c PropertiesConfig) Lookup(key string) string {
	if c.env != nil {
		if value := strings.TrimSpace(c.env.GetString(key)); value != "" {
			return value
		}
	}
	if c.props == nil {
		return ""
	}
	value, _ := c.props.Get(key)
	return strings.TrimSpace(value)
}

var _ ports.ConfigPort = PropertiesConfig{}
