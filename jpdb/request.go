package jpdb

import "encoding/json"

const (
	pathPing             = "ping"
	pathClearDeck        = "deck/clear"
	pathDeleteDeck       = "deck/delete"
	pathRenameDeck       = "deck/rename"
	pathAddVocabulary    = "deck/add-vocabulary"
	pathRemoveVocabulary = "deck/remove-vocabulary"
	pathListVocabulary   = "deck/list-vocabulary"
	pathCreateEmptyDeck  = "deck/create-empty"
	pathSetCardSentence  = "deck/set-card-sentence"
	pathListUserDecks    = "list-user-decks"
	pathListSpecialDecks = "list-special-decks"
	pathLookupVocabulary = "lookup-vocabulary"
	pathParse            = "parse"
)

// nullBody is sent by operations that take no arguments.
var nullBody = json.RawMessage("null")

// request is one call to the service, built fresh for every operation.
type request struct {
	path string
	body any
}

// AddVocabularyOptions describes vocabulary to add to a deck. Nil fields are
// left out of the request so the service applies its defaults.
type AddVocabularyOptions struct {
	Vocabulary []Vocabulary
	// Occurrences must have the same length as Vocabulary when non-nil.
	Occurrences          []int
	OverwriteOccurrences *bool
	IgnoreUnknown        *bool
}

// SetCardSentenceOptions updates the example sentence of a card. Nil fields
// are left unchanged by the service.
type SetCardSentenceOptions struct {
	VID         VocabularyID
	SID         SpellingID
	Sentence    *string
	Translation *string
	ClearAudio  *bool
	ClearImage  *bool
}

// Ptr returns a pointer to v, for filling in optional fields.
func Ptr[T any](v T) *T {
	return &v
}

type deckIDBody struct {
	ID DeckReference `json:"id"`
}

type renameDeckBody struct {
	ID   DeckReference `json:"id"`
	Name string        `json:"name"`
}

type addVocabularyBody struct {
	ID                   DeckReference `json:"id"`
	Vocabulary           []Vocabulary  `json:"vocabulary"`
	Occurrences          []int         `json:"occurences,omitzero"`
	OverwriteOccurrences *bool         `json:"overwrite_occurences,omitempty"`
	IgnoreUnknown        *bool         `json:"ignore_unknown,omitempty"`
}

type removeVocabularyBody struct {
	ID         DeckReference `json:"id"`
	Vocabulary []Vocabulary  `json:"vocabulary"`
}

type listVocabularyBody struct {
	ID               DeckReference `json:"id"`
	FetchOccurrences *bool         `json:"fetch_occurences,omitempty"`
}

type createEmptyDeckBody struct {
	Name     string `json:"name"`
	Position *int   `json:"position,omitempty"`
}

type setCardSentenceBody struct {
	VID         VocabularyID `json:"vid"`
	SID         SpellingID   `json:"sid"`
	Sentence    *string      `json:"sentence,omitempty"`
	Translation *string      `json:"translation,omitempty"`
	ClearAudio  *bool        `json:"clear_audio,omitempty"`
	ClearImage  *bool        `json:"clear_image,omitempty"`
}

type listDecksBody struct {
	Fields []DeckField `json:"fields"`
}

type lookupVocabularyBody struct {
	List   []Vocabulary      `json:"list"`
	Fields []VocabularyField `json:"fields"`
}

type parseBody struct {
	Text             string            `json:"text"`
	TokenFields      []TokenField      `json:"token_fields"`
	VocabularyFields []VocabularyField `json:"vocabulary_fields"`
}

func pingRequest() request {
	return request{path: pathPing, body: nullBody}
}

func clearDeckRequest(deck DeckIdentifier) request {
	return request{path: pathClearDeck, body: deckIDBody{ID: deck.DeckReference()}}
}

func deleteDeckRequest(deck UserDeckID) request {
	return request{path: pathDeleteDeck, body: deckIDBody{ID: deck.DeckReference()}}
}

func renameDeckRequest(deck UserDeckID, name string) request {
	return request{path: pathRenameDeck, body: renameDeckBody{ID: deck.DeckReference(), Name: name}}
}

func addVocabularyRequest(deck DeckIdentifier, options AddVocabularyOptions) request {
	return request{path: pathAddVocabulary, body: addVocabularyBody{
		ID:                   deck.DeckReference(),
		Vocabulary:           nonNil(options.Vocabulary),
		Occurrences:          options.Occurrences,
		OverwriteOccurrences: options.OverwriteOccurrences,
		IgnoreUnknown:        options.IgnoreUnknown,
	}}
}

func removeVocabularyRequest(deck DeckIdentifier, vocabulary []Vocabulary) request {
	return request{path: pathRemoveVocabulary, body: removeVocabularyBody{
		ID:         deck.DeckReference(),
		Vocabulary: nonNil(vocabulary),
	}}
}

func listVocabularyRequest(deck DeckIdentifier, fetchOccurrences *bool) request {
	return request{path: pathListVocabulary, body: listVocabularyBody{
		ID:               deck.DeckReference(),
		FetchOccurrences: fetchOccurrences,
	}}
}

func createEmptyDeckRequest(name string, position *int) request {
	return request{path: pathCreateEmptyDeck, body: createEmptyDeckBody{Name: name, Position: position}}
}

func setCardSentenceRequest(options SetCardSentenceOptions) request {
	return request{path: pathSetCardSentence, body: setCardSentenceBody(options)}
}

func listUserDecksRequest(fields []DeckField) request {
	return request{path: pathListUserDecks, body: listDecksBody{Fields: dedupe(fields)}}
}

func listSpecialDecksRequest(fields []DeckField) request {
	return request{path: pathListSpecialDecks, body: listDecksBody{Fields: dedupe(fields)}}
}

func lookupVocabularyRequest(list []Vocabulary, fields []VocabularyField) request {
	return request{path: pathLookupVocabulary, body: lookupVocabularyBody{
		List:   nonNil(list),
		Fields: dedupe(fields),
	}}
}

func parseRequest(text string, tokenFields []TokenField, vocabularyFields []VocabularyField) request {
	return request{path: pathParse, body: parseBody{
		Text:             text,
		TokenFields:      dedupe(tokenFields),
		VocabularyFields: dedupe(vocabularyFields),
	}}
}

// nonNil keeps mandatory lists encoding as [] rather than null.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
