package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ARTIFACT_CLEANER"

const usageText = `Bintray artifact cleaner.

Usage:
------
artifact-cleaner [-n] [-a]

Options:
--------
-n | dry run
-a | automatic (non-interactive) mode

Configuration:
--------------
Set the 'bintray.owner', 'bintray.repo', 'bintray.package', 'bintray.user'
and 'bintray.api.key' options in the 'conf.properties' file.`

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "artifact-cleaner [-n] [-a]",
		Short:   "Delete obsolete development and EAP versions of a Bintray package",
		Long:    usageText,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// Arguments are matched by hand: the historic "-help" spelling must
		// work and anything unrecognised is ignored.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := parseOptions(args)
			if opts.Help {
				fmt.Fprintln(cmd.OutOrStdout(), usageText)
				return nil
			}
			initConfig(opts.LogLevel)
			setupLogging(viper.GetString("log_level"))
			return runClean(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	return cmd
}

func initConfig(logLevel string) {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")
	if strings.TrimSpace(logLevel) != "" {
		viper.Set("log_level", logLevel)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCodeForError maps every fatal error to status 1; help and completed
// runs never reach here.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
