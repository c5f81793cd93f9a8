package cli

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"artifact-cleaner/internal/adapters"
	"artifact-cleaner/internal/app"
	"artifact-cleaner/internal/ports"
	"artifact-cleaner/internal/types"
)

type cleanOptions struct {
	Help       bool
	Options    types.CliOptions
	ConfigFile string
	LogLevel   string
	ReportPath string
}

// valueFlags take a value either as "--name=value" or as the next argument.
var valueFlags = []string{"--config", "--log-level", "--report"}

func parseOptions(args []string) cleanOptions {
	opts := cleanOptions{Options: types.NewCliOptions()}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if applyOption(&opts, arg) {
			continue
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if !isValueFlag(name) {
			continue
		}
		if !hasValue {
			// A following option is never taken as the value.
			if i+1 >= len(args) || isOption(args[i+1]) {
				continue
			}
			i++
			value = args[i]
		}
		switch name {
		case "--config":
			opts.ConfigFile = value
		case "--log-level":
			opts.LogLevel = value
		case "--report":
			opts.ReportPath = value
		}
	}
	return opts
}

func applyOption(opts *cleanOptions, arg string) bool {
	switch arg {
	case "-help", "--help", "-h":
		opts.Help = true
	case string(types.CliOptionDryRun):
		opts.Options[types.CliOptionDryRun] = struct{}{}
	case string(types.CliOptionAutomatic):
		opts.Options[types.CliOptionAutomatic] = struct{}{}
	default:
		return false
	}
	return true
}

func isOption(arg string) bool {
	scratch := cleanOptions{Options: types.NewCliOptions()}
	if applyOption(&scratch, arg) {
		return true
	}
	name, _, _ := strings.Cut(arg, "=")
	return isValueFlag(name)
}

func isValueFlag(name string) bool {
	for _, flag := range valueFlags {
		if name == flag {
			return true
		}
	}
	return false
}

func runClean(ctx context.Context, in io.Reader, out io.Writer, opts cleanOptions) error {
	config, err := adapters.NewPropertiesConfigAdapter(opts.ConfigFile, envPrefix).Load()
	if err != nil {
		return err
	}
	req, err := buildCleanRequest(config, opts.Options)
	if err != nil {
		return err
	}
	service := app.NewService(
		adapters.NewBintrayAdapter(config.Lookup(adapters.KeyEndpoint), 0),
		newConfirmer(opts.Options, in, out),
	)
	service.Out = out
	if strings.TrimSpace(opts.ReportPath) != "" {
		service.Report = adapters.NewReportFileAdapter(opts.ReportPath)
	}
	ctx = log.Logger.WithContext(ctx)
	_, err = service.Clean(ctx, req)
	return err
}

// buildCleanRequest reads every required key up front so a bad
// configuration fails before any request is sent.
func buildCleanRequest(config ports.ConfigPort, options types.CliOptions) (app.CleanRequest, error) {
	keys := []string{
		adapters.KeyOwner,
		adapters.KeyRepo,
		adapters.KeyPackage,
		adapters.KeyUser,
		adapters.KeyAPIKey,
	}
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := config.Require(key)
		if err != nil {
			return app.CleanRequest{}, err
		}
		values[key] = value
	}
	return app.CleanRequest{
		Package: types.PackageCoordinates{
			Owner:   values[adapters.KeyOwner],
			Repo:    values[adapters.KeyRepo],
			Package: values[adapters.KeyPackage],
		},
		Credentials: types.Credentials{
			User:   values[adapters.KeyUser],
			APIKey: values[adapters.KeyAPIKey],
		},
		Options: options,
	}, nil
}

func newConfirmer(options types.CliOptions, in io.Reader, out io.Writer) ports.ConfirmPort {
	if options.Has(types.CliOptionAutomatic) {
		return adapters.NewAutoConfirmAdapter(out)
	}
	return adapters.NewPromptConfirmAdapter(in, out)
}
