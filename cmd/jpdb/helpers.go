package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/internal/config"
	"github.com/at-ishikawa/jpdb/jpdb"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// withClient builds a client from the configuration and passes it to run.
func withClient(cmd *cobra.Command, run func(ctx context.Context, api jpdb.API, p printer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	client, err := jpdb.NewClient(cfg.JPDB.Token, cfg.JPDB.ClientOptions(slog.Default())...)
	if err != nil {
		return fmt.Errorf("jpdb.NewClient > %w", err)
	}
	defer func() {
		_ = client.Close()
	}()
	slog.Debug("created a client", "client", client.String())

	return run(cmd.Context(), client, newPrinter(cmd.OutOrStdout(), outputFormat))
}

func parseVocabularyArgs(args []string) ([]jpdb.Vocabulary, error) {
	vocabulary := make([]jpdb.Vocabulary, 0, len(args))
	for _, arg := range args {
		v, err := jpdb.ParseVocabulary(arg)
		if err != nil {
			return nil, fmt.Errorf("jpdb.ParseVocabulary > %w", err)
		}
		vocabulary = append(vocabulary, v)
	}
	return vocabulary, nil
}

func parseUserDeckArg(arg string) (jpdb.UserDeckID, error) {
	ref, err := jpdb.ParseDeckReference(arg)
	if err != nil {
		return 0, fmt.Errorf("jpdb.ParseDeckReference > %w", err)
	}
	id, ok := ref.UserDeck()
	if !ok {
		return 0, fmt.Errorf("%s is a special deck, a user deck id is required", arg)
	}
	return id, nil
}

type field interface {
	~string
	Valid() bool
}

func parseFields[F field](names []string) ([]F, error) {
	fields := make([]F, 0, len(names))
	var invalid []string
	for _, name := range names {
		f := F(strings.TrimSpace(name))
		if !f.Valid() {
			invalid = append(invalid, name)
			continue
		}
		fields = append(fields, f)
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("unknown fields: %s", strings.Join(invalid, ", "))
	}
	return fields, nil
}

func fieldNames[F ~string](fields []F) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return names
}

// formatVocabularyInfo renders whichever fields were requested on one line.
func formatVocabularyInfo(info jpdb.VocabularyInfo) string {
	var parts []string
	if info.VID != nil && info.SID != nil {
		parts = append(parts, jpdb.NewVocabulary(*info.VID, *info.SID).String())
	} else if info.VID != nil {
		parts = append(parts, fmt.Sprintf("vid=%d", *info.VID))
	}
	if info.Spelling != nil {
		parts = append(parts, *info.Spelling)
	}
	if info.Reading != nil {
		parts = append(parts, "["+*info.Reading+"]")
	}
	if info.FrequencyRank != nil {
		parts = append(parts, fmt.Sprintf("#%d", *info.FrequencyRank))
	}
	if len(info.PartOfSpeech) > 0 {
		parts = append(parts, "("+strings.Join(info.PartOfSpeech, ", ")+")")
	}
	if len(info.Meanings) > 0 {
		parts = append(parts, strings.Join(info.Meanings, "; "))
	}
	if len(info.CardState) > 0 {
		parts = append(parts, "{"+strings.Join(info.CardState, ", ")+"}")
	}
	return strings.Join(parts, " ")
}
