// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewRootCommand returns the seqgen command with logging configured the
// same way across all invocations. Log output always goes to stderr;
// stdout is reserved for the generated bytes.
func NewRootCommand(commit string) *cobra.Command {
	if commit == "" {
		commit = "unknown"
	}

	type LogFormat int8
	const (
		Unspecified LogFormat = iota
		Pretty
		Plain
		Json
	)

	logFormat := Unspecified
	logLevel := zerolog.InfoLevel

	cmd := newGenCommand()
	cmd.Version = commit
	cmd.SilenceUsage = true
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if logFormat == Unspecified {
			if isStdErrTerminal() {
				logFormat = Pretty
			} else {
				logFormat = Plain
			}
		}

		zerolog.SetGlobalLevel(logLevel)
		zerolog.TimeFieldFormat = time.RFC3339Nano
		switch logFormat {
		case Pretty, Plain:
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02T15:04:05.000Z07:00", // like RFC3339Nano, but always showing three digits for the fractional seconds
				NoColor:    logFormat == Plain,
			})
		}

		log.Logger = log.Logger.With().Str("command", cmd.CommandPath()).Logger()
	}

	// hide --help as a flag in the usage output
	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	cmd.PersistentFlags().Lookup("help").Hidden = true

	var levelIds = map[zerolog.Level][]string{
		zerolog.TraceLevel: {"trace"},
		zerolog.DebugLevel: {"debug"},
		zerolog.InfoLevel:  {"info"},
		zerolog.WarnLevel:  {"warn"},
		zerolog.ErrorLevel: {"error"},
	}

	var logFormatIds = map[LogFormat][]string{
		Unspecified: {""},
		Pretty:      {"pretty"},
		Plain:       {"plain"},
		Json:        {"json"},
	}

	cmd.PersistentFlags().Var(
		enumflag.New(&logLevel, "level", levelIds, enumflag.EnumCaseInsensitive),
		"log-level",
		"specifies logging level. Can be one of: 'trace', 'debug', 'info', 'warn', or 'error'.")

	cmd.PersistentFlags().Var(
		enumflag.New(&logFormat, "format", logFormatIds, enumflag.EnumCaseInsensitive),
		"log-format",
		"specifies logging format. Can be one of: 'pretty', 'plain', or 'json'. The default is 'pretty' unless stderr is redirected, in which case it will be 'plain'.")

	return cmd
}

func isStdErrTerminal() bool {
	o, _ := os.Stderr.Stat()
	return (o.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
