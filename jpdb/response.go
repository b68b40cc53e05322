package jpdb

import (
	"encoding/json"
	"fmt"
)

type createEmptyDeckResponse struct {
	ID UserDeckID `json:"id"`
}

// DeckVocabulary is the body of deck/list-vocabulary. Occurrences is nil
// unless they were requested, and then runs parallel to Vocabulary.
type DeckVocabulary struct {
	Vocabulary  []Vocabulary `json:"vocabulary"`
	Occurrences []int        `json:"occurences,omitempty"`
}

// OccurrenceMap pairs every vocabulary entry with its occurrence count.
func (d DeckVocabulary) OccurrenceMap() (map[Vocabulary]int, error) {
	if d.Occurrences == nil {
		return nil, fmt.Errorf("occurrences are missing from the response")
	}
	if len(d.Occurrences) != len(d.Vocabulary) {
		return nil, fmt.Errorf("got %d occurrences for %d vocabulary entries", len(d.Occurrences), len(d.Vocabulary))
	}
	result := make(map[Vocabulary]int, len(d.Vocabulary))
	for i, v := range d.Vocabulary {
		result[v] = d.Occurrences[i]
	}
	return result, nil
}

// Deck is one row of list-user-decks or list-special-decks. Only the
// fields that were requested are set.
type Deck struct {
	ID                 *DeckReference `json:"id,omitempty" yaml:"id,omitempty"`
	Name               *string        `json:"name,omitempty" yaml:"name,omitempty"`
	VocabularyCount    *int           `json:"vocabulary_count,omitempty" yaml:"vocabulary_count,omitempty"`
	WordCount          *int           `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	KnownCoverage      *float64       `json:"vocabulary_known_coverage,omitempty" yaml:"vocabulary_known_coverage,omitempty"`
	InProgressCoverage *float64       `json:"vocabulary_in_progress_coverage,omitempty" yaml:"vocabulary_in_progress_coverage,omitempty"`
	IsBuiltIn          *bool          `json:"is_built_in,omitempty" yaml:"is_built_in,omitempty"`
}

// VocabularyInfo is one row of vocabulary data returned by lookup-vocabulary
// and parse. Only the fields that were requested are set.
type VocabularyInfo struct {
	VID           *VocabularyID `json:"vid,omitempty" yaml:"vid,omitempty"`
	SID           *SpellingID   `json:"sid,omitempty" yaml:"sid,omitempty"`
	RID           *ReadingID    `json:"rid,omitempty" yaml:"rid,omitempty"`
	Spelling      *string       `json:"spelling,omitempty" yaml:"spelling,omitempty"`
	Reading       *string       `json:"reading,omitempty" yaml:"reading,omitempty"`
	FrequencyRank *int          `json:"frequency_rank,omitempty" yaml:"frequency_rank,omitempty"`
	PartOfSpeech  []string      `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
	Meanings      []string      `json:"meanings,omitempty" yaml:"meanings,omitempty"`
	CardLevel     *int          `json:"card_level,omitempty" yaml:"card_level,omitempty"`
	CardState     []string      `json:"card_state,omitempty" yaml:"card_state,omitempty"`
	// DueAt is a unix timestamp.
	DueAt       *int64   `json:"due_at,omitempty" yaml:"due_at,omitempty"`
	PitchAccent []string `json:"pitch_accent,omitempty" yaml:"pitch_accent,omitempty"`
}

// Token is one token of parsed text. VocabularyIndex points into
// ParseResult.Vocabulary.
type Token struct {
	VocabularyIndex *int            `json:"vocabulary_index,omitempty" yaml:"vocabulary_index,omitempty"`
	PositionUTF8    *int            `json:"position_utf8,omitempty" yaml:"position_utf8,omitempty"`
	PositionUTF16   *int            `json:"position_utf16,omitempty" yaml:"position_utf16,omitempty"`
	PositionUTF32   *int            `json:"position_utf32,omitempty" yaml:"position_utf32,omitempty"`
	LengthUTF8      *int            `json:"length_utf8,omitempty" yaml:"length_utf8,omitempty"`
	LengthUTF16     *int            `json:"length_utf16,omitempty" yaml:"length_utf16,omitempty"`
	LengthUTF32     *int            `json:"length_utf32,omitempty" yaml:"length_utf32,omitempty"`
	Furigana        json.RawMessage `json:"furigana,omitempty" yaml:"-"`
}

// ParseResult is the body of parse.
type ParseResult struct {
	Tokens     []Token          `json:"tokens" yaml:"tokens"`
	Vocabulary []VocabularyInfo `json:"vocabulary" yaml:"vocabulary"`
}

type row = []json.RawMessage

type listDecksResponse struct {
	Decks []row `json:"decks"`
}

type lookupVocabularyResponse struct {
	VocabularyInfo []row `json:"vocabulary_info"`
}

type parseResponse struct {
	Tokens     []row `json:"tokens"`
	Vocabulary []row `json:"vocabulary"`
}

// decodeRows turns positional rows into structs. Column i of every row holds
// the value of fields[i].
func decodeRows[F ~string, T any](rows []row, fields []F, assign func(*T, F, json.RawMessage) error) ([]T, error) {
	result := make([]T, 0, len(rows))
	for i, r := range rows {
		if len(r) != len(fields) {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), len(fields))
		}
		var item T
		for j, field := range fields {
			if err := assign(&item, field, r[j]); err != nil {
				return nil, fmt.Errorf("row %d, field %s > %w", i, field, err)
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func unmarshalField(value json.RawMessage, target any) error {
	if err := json.Unmarshal(value, target); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return nil
}

func assignDeck(deck *Deck, field DeckField, value json.RawMessage) error {
	switch field {
	case DeckFieldID:
		return unmarshalField(value, &deck.ID)
	case DeckFieldName:
		return unmarshalField(value, &deck.Name)
	case DeckFieldVocabularyCount:
		return unmarshalField(value, &deck.VocabularyCount)
	case DeckFieldWordCount:
		return unmarshalField(value, &deck.WordCount)
	case DeckFieldKnownCoverage:
		return unmarshalField(value, &deck.KnownCoverage)
	case DeckFieldInProgressCoverage:
		return unmarshalField(value, &deck.InProgressCoverage)
	case DeckFieldIsBuiltIn:
		return unmarshalField(value, &deck.IsBuiltIn)
	default:
		return fmt.Errorf("unknown deck field %q", field)
	}
}

func assignVocabularyInfo(info *VocabularyInfo, field VocabularyField, value json.RawMessage) error {
	switch field {
	case VocabularyFieldVID:
		return unmarshalField(value, &info.VID)
	case VocabularyFieldSID:
		return unmarshalField(value, &info.SID)
	case VocabularyFieldRID:
		return unmarshalField(value, &info.RID)
	case VocabularyFieldSpelling:
		return unmarshalField(value, &info.Spelling)
	case VocabularyFieldReading:
		return unmarshalField(value, &info.Reading)
	case VocabularyFieldFrequencyRank:
		return unmarshalField(value, &info.FrequencyRank)
	case VocabularyFieldPartOfSpeech:
		return unmarshalField(value, &info.PartOfSpeech)
	case VocabularyFieldMeanings:
		return unmarshalField(value, &info.Meanings)
	case VocabularyFieldCardLevel:
		return unmarshalField(value, &info.CardLevel)
	case VocabularyFieldCardState:
		return unmarshalField(value, &info.CardState)
	case VocabularyFieldDueAt:
		return unmarshalField(value, &info.DueAt)
	case VocabularyFieldPitchAccent:
		return unmarshalField(value, &info.PitchAccent)
	default:
		return fmt.Errorf("unknown vocabulary field %q", field)
	}
}

func assignToken(token *Token, field TokenField, value json.RawMessage) error {
	switch field {
	case TokenFieldVocabularyIndex:
		return unmarshalField(value, &token.VocabularyIndex)
	case TokenFieldPositionUTF8:
		return unmarshalField(value, &token.PositionUTF8)
	case TokenFieldPositionUTF16:
		return unmarshalField(value, &token.PositionUTF16)
	case TokenFieldPositionUTF32:
		return unmarshalField(value, &token.PositionUTF32)
	case TokenFieldLengthUTF8:
		return unmarshalField(value, &token.LengthUTF8)
	case TokenFieldLengthUTF16:
		return unmarshalField(value, &token.LengthUTF16)
	case TokenFieldLengthUTF32:
		return unmarshalField(value, &token.LengthUTF32)
	case TokenFieldFurigana:
		token.Furigana = append(json.RawMessage(nil), value...)
		return nil
	default:
		return fmt.Errorf("unknown token field %q", field)
	}
}
