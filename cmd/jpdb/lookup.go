package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/jpdb"
)

var defaultVocabularyFields = []string{
	string(jpdb.VocabularyFieldVID),
	string(jpdb.VocabularyFieldSID),
	string(jpdb.VocabularyFieldSpelling),
	string(jpdb.VocabularyFieldReading),
	string(jpdb.VocabularyFieldMeanings),
}

func newLookupCommand() *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "lookup <vid:sid>...",
		Short: "Look up vocabulary entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocabulary, err := parseVocabularyArgs(args)
			if err != nil {
				return err
			}
			fields, err := parseFields[jpdb.VocabularyField](names)
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runLookupVocabulary(ctx, api, p, vocabulary, fields)
			})
		},
	}
	cmd.Flags().StringSliceVar(&names, "fields", defaultVocabularyFields,
		fmt.Sprintf("Fields to fetch. Possible values are %v", jpdb.AllVocabularyFields))
	return cmd
}

func runLookupVocabulary(ctx context.Context, api jpdb.API, p printer, vocabulary []jpdb.Vocabulary, fields []jpdb.VocabularyField) error {
	infos, err := api.LookupVocabulary(ctx, vocabulary, fields)
	if err != nil {
		return fmt.Errorf("api.LookupVocabulary > %w", err)
	}
	return p.print(infos, func(w io.Writer) error {
		for _, info := range infos {
			if _, err := fmt.Fprintln(w, formatVocabularyInfo(info)); err != nil {
				return err
			}
		}
		return nil
	})
}
