package jpdb

import "slices"

// DeckField selects a column returned by the deck listing endpoints.
type DeckField string

const (
	DeckFieldID                 DeckField = "id"
	DeckFieldName               DeckField = "name"
	DeckFieldVocabularyCount    DeckField = "vocabulary_count"
	DeckFieldWordCount          DeckField = "word_count"
	DeckFieldKnownCoverage      DeckField = "vocabulary_known_coverage"
	DeckFieldInProgressCoverage DeckField = "vocabulary_in_progress_coverage"
	DeckFieldIsBuiltIn          DeckField = "is_built_in"
)

// AllDeckFields lists every DeckField.
var AllDeckFields = []DeckField{
	DeckFieldID,
	DeckFieldName,
	DeckFieldVocabularyCount,
	DeckFieldWordCount,
	DeckFieldKnownCoverage,
	DeckFieldInProgressCoverage,
	DeckFieldIsBuiltIn,
}

// VocabularyField selects a column returned for a vocabulary entry.
type VocabularyField string

const (
	VocabularyFieldVID           VocabularyField = "vid"
	VocabularyFieldSID           VocabularyField = "sid"
	VocabularyFieldRID           VocabularyField = "rid"
	VocabularyFieldSpelling      VocabularyField = "spelling"
	VocabularyFieldReading       VocabularyField = "reading"
	VocabularyFieldFrequencyRank VocabularyField = "frequency_rank"
	VocabularyFieldPartOfSpeech  VocabularyField = "part_of_speech"
	VocabularyFieldMeanings      VocabularyField = "meanings"
	VocabularyFieldCardLevel     VocabularyField = "card_level"
	VocabularyFieldCardState     VocabularyField = "card_state"
	VocabularyFieldDueAt         VocabularyField = "due_at"
	VocabularyFieldPitchAccent   VocabularyField = "pitch_accent"
)

// AllVocabularyFields lists every VocabularyField.
var AllVocabularyFields = []VocabularyField{
	VocabularyFieldVID,
	VocabularyFieldSID,
	VocabularyFieldRID,
	VocabularyFieldSpelling,
	VocabularyFieldReading,
	VocabularyFieldFrequencyRank,
	VocabularyFieldPartOfSpeech,
	VocabularyFieldMeanings,
	VocabularyFieldCardLevel,
	VocabularyFieldCardState,
	VocabularyFieldDueAt,
	VocabularyFieldPitchAccent,
}

// TokenField selects a column returned for a token of parsed text.
type TokenField string

const (
	TokenFieldVocabularyIndex TokenField = "vocabulary_index"
	TokenFieldPositionUTF8    TokenField = "position_utf8"
	TokenFieldPositionUTF16   TokenField = "position_utf16"
	TokenFieldPositionUTF32   TokenField = "position_utf32"
	TokenFieldLengthUTF8      TokenField = "length_utf8"
	TokenFieldLengthUTF16     TokenField = "length_utf16"
	TokenFieldLengthUTF32     TokenField = "length_utf32"
	TokenFieldFurigana        TokenField = "furigana"
)

// AllTokenFields lists every TokenField.
var AllTokenFields = []TokenField{
	TokenFieldVocabularyIndex,
	TokenFieldPositionUTF8,
	TokenFieldPositionUTF16,
	TokenFieldPositionUTF32,
	TokenFieldLengthUTF8,
	TokenFieldLengthUTF16,
	TokenFieldLengthUTF32,
	TokenFieldFurigana,
}

// Valid reports whether f is a known deck field.
func (f DeckField) Valid() bool {
	return slices.Contains(AllDeckFields, f)
}

// Valid reports whether f is a known vocabulary field.
func (f VocabularyField) Valid() bool {
	return slices.Contains(AllVocabularyFields, f)
}

// Valid reports whether f is a known token field.
func (f TokenField) Valid() bool {
	return slices.Contains(AllTokenFields, f)
}

// dedupe returns values without repeated elements, keeping the first
// occurrence of each.
func dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
