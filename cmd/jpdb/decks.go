package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/jpdb"
)

func newDecksCommand() *cobra.Command {
	var (
		special bool
		names   []string
	)
	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List user decks, or the special decks with --special",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields[jpdb.DeckField](names)
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runListDecks(ctx, api, p, special, fields)
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&special, "special", false, "List the special decks instead of user decks")
	flags.StringSliceVar(&names, "fields", []string{string(jpdb.DeckFieldID), string(jpdb.DeckFieldName), string(jpdb.DeckFieldVocabularyCount)},
		fmt.Sprintf("Fields to fetch. Possible values are %v", jpdb.AllDeckFields))
	return cmd
}

func runListDecks(ctx context.Context, api jpdb.API, p printer, special bool, fields []jpdb.DeckField) error {
	var (
		decks []jpdb.Deck
		err   error
	)
	if special {
		decks, err = api.ListSpecialDecks(ctx, fields)
	} else {
		decks, err = api.ListUserDecks(ctx, fields)
	}
	if err != nil {
		return fmt.Errorf("failed to list decks: %w", err)
	}

	return p.print(decks, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, strings.ToUpper(strings.Join(fieldNames(fields), "\t")))
		for _, deck := range decks {
			columns := make([]string, 0, len(fields))
			for _, f := range fields {
				columns = append(columns, deckColumn(deck, f))
			}
			_, _ = fmt.Fprintln(tw, strings.Join(columns, "\t"))
		}
		return tw.Flush()
	})
}

func deckColumn(deck jpdb.Deck, field jpdb.DeckField) string {
	switch field {
	case jpdb.DeckFieldID:
		return formatOptional(deck.ID, jpdb.DeckReference.String)
	case jpdb.DeckFieldName:
		return formatOptional(deck.Name, func(s string) string { return s })
	case jpdb.DeckFieldVocabularyCount:
		return formatOptional(deck.VocabularyCount, strconv.Itoa)
	case jpdb.DeckFieldWordCount:
		return formatOptional(deck.WordCount, strconv.Itoa)
	case jpdb.DeckFieldKnownCoverage:
		return formatOptional(deck.KnownCoverage, formatPercentage)
	case jpdb.DeckFieldInProgressCoverage:
		return formatOptional(deck.InProgressCoverage, formatPercentage)
	case jpdb.DeckFieldIsBuiltIn:
		return formatOptional(deck.IsBuiltIn, strconv.FormatBool)
	}
	return "-"
}

func formatOptional[T any](v *T, format func(T) string) string {
	if v == nil {
		return "-"
	}
	return format(*v)
}

func formatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
