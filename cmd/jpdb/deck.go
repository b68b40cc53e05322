package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/jpdb"
)

func newDeckCommand() *cobra.Command {
	deckCmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage a deck and its vocabulary",
	}

	deckCmd.AddCommand(
		newDeckCreateCommand(),
		newDeckDeleteCommand(),
		newDeckRenameCommand(),
		newDeckClearCommand(),
		newDeckAddCommand(),
		newDeckRemoveCommand(),
		newDeckVocabularyCommand(),
		newDeckSentenceCommand(),
	)
	return deckCmd
}

func newDeckCreateCommand() *cobra.Command {
	var position int
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pos *int
			if cmd.Flags().Changed("position") {
				pos = jpdb.Ptr(position)
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runCreateDeck(ctx, api, p, args[0], pos)
			})
		},
	}
	cmd.Flags().IntVar(&position, "position", 0, "Position of the new deck. The deck is appended when omitted")
	return cmd
}

type createDeckResult struct {
	ID jpdb.UserDeckID `json:"id" yaml:"id"`
}

func runCreateDeck(ctx context.Context, api jpdb.API, p printer, name string, position *int) error {
	id, err := api.CreateEmptyDeck(ctx, name, position)
	if err != nil {
		return fmt.Errorf("api.CreateEmptyDeck > %w", err)
	}
	return p.print(createDeckResult{ID: id}, func(w io.Writer) error {
		_, err := p.success.Fprintf(w, "created deck %d\n", id)
		return err
	})
}

func newDeckDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deck-id>",
		Short: "Delete a user deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserDeckArg(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runDeleteDeck(ctx, api, p, id)
			})
		},
	}
}

func runDeleteDeck(ctx context.Context, api jpdb.API, p printer, id jpdb.UserDeckID) error {
	if err := api.DeleteDeck(ctx, id); err != nil {
		return fmt.Errorf("api.DeleteDeck > %w", err)
	}
	return p.done("deleted deck %d", id)
}

func newDeckRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <deck-id> <name>",
		Short: "Rename a user deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserDeckArg(args[0])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runRenameDeck(ctx, api, p, id, args[1])
			})
		},
	}
}

func runRenameDeck(ctx context.Context, api jpdb.API, p printer, id jpdb.UserDeckID, name string) error {
	if err := api.RenameDeck(ctx, id, name); err != nil {
		return fmt.Errorf("api.RenameDeck > %w", err)
	}
	return p.done("renamed deck %d to %s", id, name)
}

func newDeckClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <deck>",
		Short: "Remove all vocabulary from a deck",
		Long:  "Remove all vocabulary from a deck. <deck> is a deck id, blacklist or never-forget.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := jpdb.ParseDeckReference(args[0])
			if err != nil {
				return fmt.Errorf("jpdb.ParseDeckReference > %w", err)
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runClearDeck(ctx, api, p, deck)
			})
		},
	}
}

func runClearDeck(ctx context.Context, api jpdb.API, p printer, deck jpdb.DeckReference) error {
	if err := api.ClearDeck(ctx, deck); err != nil {
		return fmt.Errorf("api.ClearDeck > %w", err)
	}
	return p.done("cleared deck %s", deck)
}

func newDeckAddCommand() *cobra.Command {
	var (
		occurrences          []int
		overwriteOccurrences bool
		ignoreUnknown        bool
	)
	cmd := &cobra.Command{
		Use:   "add <deck> <vid:sid>...",
		Short: "Add vocabulary to a deck",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := jpdb.ParseDeckReference(args[0])
			if err != nil {
				return fmt.Errorf("jpdb.ParseDeckReference > %w", err)
			}
			vocabulary, err := parseVocabularyArgs(args[1:])
			if err != nil {
				return err
			}

			options := jpdb.AddVocabularyOptions{Vocabulary: vocabulary}
			flags := cmd.Flags()
			if flags.Changed("occurrences") {
				options.Occurrences = occurrences
			}
			if flags.Changed("overwrite-occurrences") {
				options.OverwriteOccurrences = jpdb.Ptr(overwriteOccurrences)
			}
			if flags.Changed("ignore-unknown") {
				options.IgnoreUnknown = jpdb.Ptr(ignoreUnknown)
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runAddVocabulary(ctx, api, p, deck, options)
			})
		},
	}
	flags := cmd.Flags()
	flags.IntSliceVar(&occurrences, "occurrences", nil, "Occurrence count of each vocabulary entry, in the same order")
	flags.BoolVar(&overwriteOccurrences, "overwrite-occurrences", false, "Replace the occurrence counts instead of adding to them")
	flags.BoolVar(&ignoreUnknown, "ignore-unknown", false, "Skip vocabulary the service does not know")
	return cmd
}

func runAddVocabulary(ctx context.Context, api jpdb.API, p printer, deck jpdb.DeckReference, options jpdb.AddVocabularyOptions) error {
	if err := api.AddVocabulary(ctx, deck, options); err != nil {
		return fmt.Errorf("api.AddVocabulary > %w", err)
	}
	return p.done("added %d vocabulary entries to deck %s", len(options.Vocabulary), deck)
}

func newDeckRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <deck> <vid:sid>...",
		Short: "Remove vocabulary from a deck",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := jpdb.ParseDeckReference(args[0])
			if err != nil {
				return fmt.Errorf("jpdb.ParseDeckReference > %w", err)
			}
			vocabulary, err := parseVocabularyArgs(args[1:])
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runRemoveVocabulary(ctx, api, p, deck, vocabulary)
			})
		},
	}
}

func runRemoveVocabulary(ctx context.Context, api jpdb.API, p printer, deck jpdb.DeckReference, vocabulary []jpdb.Vocabulary) error {
	if err := api.RemoveVocabulary(ctx, deck, vocabulary); err != nil {
		return fmt.Errorf("api.RemoveVocabulary > %w", err)
	}
	return p.done("removed %d vocabulary entries from deck %s", len(vocabulary), deck)
}

func newDeckVocabularyCommand() *cobra.Command {
	var withOccurrences bool
	cmd := &cobra.Command{
		Use:   "vocabulary <deck>",
		Short: "List the vocabulary in a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := jpdb.ParseDeckReference(args[0])
			if err != nil {
				return fmt.Errorf("jpdb.ParseDeckReference > %w", err)
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				if withOccurrences {
					return runListVocabularyOccurrences(ctx, api, p, deck)
				}
				return runListVocabulary(ctx, api, p, deck)
			})
		},
	}
	cmd.Flags().BoolVar(&withOccurrences, "occurrences", false, "Also show how often each entry occurs in the deck")
	return cmd
}

func runListVocabulary(ctx context.Context, api jpdb.API, p printer, deck jpdb.DeckReference) error {
	vocabulary, err := api.ListVocabulary(ctx, deck)
	if err != nil {
		return fmt.Errorf("api.ListVocabulary > %w", err)
	}
	return p.print(vocabulary, func(w io.Writer) error {
		for _, v := range vocabulary {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	})
}

type vocabularyOccurrence struct {
	VID         jpdb.VocabularyID `json:"vid" yaml:"vid"`
	SID         jpdb.SpellingID   `json:"sid" yaml:"sid"`
	Occurrences int               `json:"occurrences" yaml:"occurrences"`
}

func runListVocabularyOccurrences(ctx context.Context, api jpdb.API, p printer, deck jpdb.DeckReference) error {
	occurrences, err := api.ListVocabularyOccurrences(ctx, deck)
	if err != nil {
		return fmt.Errorf("api.ListVocabularyOccurrences > %w", err)
	}

	result := make([]vocabularyOccurrence, 0, len(occurrences))
	for v, n := range occurrences {
		result = append(result, vocabularyOccurrence{VID: v.VID, SID: v.SID, Occurrences: n})
	}
	slices.SortFunc(result, func(a, b vocabularyOccurrence) int {
		if c := cmp.Compare(a.VID, b.VID); c != 0 {
			return c
		}
		return cmp.Compare(a.SID, b.SID)
	})

	return p.print(result, func(w io.Writer) error {
		for _, o := range result {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", jpdb.NewVocabulary(o.VID, o.SID), o.Occurrences); err != nil {
				return err
			}
		}
		return nil
	})
}

func newDeckSentenceCommand() *cobra.Command {
	var (
		sentence    string
		translation string
		clearAudio  bool
		clearImage  bool
	)
	cmd := &cobra.Command{
		Use:   "sentence <vid:sid>",
		Short: "Set or clear the example sentence of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := jpdb.ParseVocabulary(args[0])
			if err != nil {
				return fmt.Errorf("jpdb.ParseVocabulary > %w", err)
			}

			options := jpdb.SetCardSentenceOptions{VID: v.VID, SID: v.SID}
			flags := cmd.Flags()
			if flags.Changed("sentence") {
				options.Sentence = jpdb.Ptr(sentence)
			}
			if flags.Changed("translation") {
				options.Translation = jpdb.Ptr(translation)
			}
			if flags.Changed("clear-audio") {
				options.ClearAudio = jpdb.Ptr(clearAudio)
			}
			if flags.Changed("clear-image") {
				options.ClearImage = jpdb.Ptr(clearImage)
			}
			return withClient(cmd, func(ctx context.Context, api jpdb.API, p printer) error {
				return runSetCardSentence(ctx, api, p, options)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&sentence, "sentence", "", "Example sentence. An empty value clears it")
	flags.StringVar(&translation, "translation", "", "Translation of the sentence. An empty value clears it")
	flags.BoolVar(&clearAudio, "clear-audio", false, "Remove the sentence audio")
	flags.BoolVar(&clearImage, "clear-image", false, "Remove the card image")
	return cmd
}

func runSetCardSentence(ctx context.Context, api jpdb.API, p printer, options jpdb.SetCardSentenceOptions) error {
	if err := api.SetCardSentence(ctx, options); err != nil {
		return fmt.Errorf("api.SetCardSentence > %w", err)
	}
	return p.done("updated the card %s", jpdb.NewVocabulary(options.VID, options.SID))
}
