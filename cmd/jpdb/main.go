package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/jpdb"
)

var (
	configFile   string
	outputFormat = OutputText
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %s\n", describeError(err)); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "jpdb",
		Short:         "Manage jpdb.io decks and vocabulary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&outputFormat, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))

	rootCommand.AddCommand(
		newPingCommand(),
		newDeckCommand(),
		newDecksCommand(),
		newLookupCommand(),
		newParseCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr so they never mix with json or yaml output.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func describeError(err error) string {
	if kind := jpdb.KindOf(err); kind != jpdb.KindUnknown {
		return fmt.Sprintf("[%s] %+v", kind, err)
	}
	return fmt.Sprintf("%+v", err)
}
