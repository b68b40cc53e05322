package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/jpdb"
)

var defaultTokenFields = []string{
	string(jpdb.TokenFieldVocabularyIndex),
	string(jpdb.TokenFieldPositionUTF32),
	string(jpdb.TokenFieldLengthUTF32),
}

func newParseCommand() *cobra.Command {
	var (
		tokenFieldNames      []string
		vocabularyFieldNames []string
	)
	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Split Japanese text into tokens and show their vocabulary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenFields, err := parseFields[jpdb.TokenField](tokenFieldNames)
			if err != nil {
				return err
			}
			vocabularyFields, err := parseFields[jpdb.VocabularyField](vocabularyFieldNames)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runParseText(ctx, api, p, text, tokenFields, vocabularyFields)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&tokenFieldNames, "token-fields", defaultTokenFields,
		fmt.Sprintf("Token fields to fetch. Possible values are %v", jpdb.AllTokenFields))
	flags.StringSliceVar(&vocabularyFieldNames, "vocabulary-fields", defaultVocabularyFields,
		fmt.Sprintf("Vocabulary fields to fetch. Possible values are %v", jpdb.AllVocabularyFields))
	return cmd
}

func runParseText(ctx context.Context, api jpdb.API, p printer, text string, tokenFields []jpdb.TokenField, vocabularyFields []jpdb.VocabularyField) error {
	result, err := api.ParseText(ctx, text, tokenFields, vocabularyFields)
	if err != nil {
		return fmt.Errorf("api.ParseText > %w", err)
	}

	return p.print(result, func(w io.Writer) error {
		runes := []rune(text)
		for _, token := range result.Tokens {
			surface := tokenSurface(runes, token)
			var description string
			if token.VocabularyIndex != nil && *token.VocabularyIndex >= 0 && *token.VocabularyIndex < len(result.Vocabulary) {
				description = formatVocabularyInfo(result.Vocabulary[*token.VocabularyIndex])
			}
			if _, err := p.heading.Fprint(w, surface); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "\t%s\n", description); err != nil {
				return err
			}
		}
		return nil
	})
}

// tokenSurface cuts the token out of text using code point positions.
func tokenSurface(runes []rune, token jpdb.Token) string {
	if token.PositionUTF32 == nil || token.LengthUTF32 == nil {
		return "?"
	}
	start, end := *token.PositionUTF32, *token.PositionUTF32+*token.LengthUTF32
	if start < 0 || end > len(runes) || start > end {
		return "?"
	}
	return string(runes[start:end])
}
