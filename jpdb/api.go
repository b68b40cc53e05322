package jpdb

import "context"

//go:generate mockgen -source=api.go -destination=../internal/mocks/jpdb/mock_api.go -package=mock_jpdb

// API is the set of operations Client provides.
type API interface {
	Ping(ctx context.Context) error
	ClearDeck(ctx context.Context, deck DeckIdentifier) error
	DeleteDeck(ctx context.Context, deck UserDeckID) error
	RenameDeck(ctx context.Context, deck UserDeckID, name string) error
	CreateEmptyDeck(ctx context.Context, name string, position *int) (UserDeckID, error)
	ListUserDecks(ctx context.Context, fields []DeckField) ([]Deck, error)
	ListSpecialDecks(ctx context.Context, fields []DeckField) ([]Deck, error)
	AddVocabulary(ctx context.Context, deck DeckIdentifier, options AddVocabularyOptions) error
	RemoveVocabulary(ctx context.Context, deck DeckIdentifier, vocabulary []Vocabulary) error
	ListVocabularyRaw(ctx context.Context, deck DeckIdentifier, fetchOccurrences *bool) (DeckVocabulary, error)
	ListVocabulary(ctx context.Context, deck DeckIdentifier) ([]Vocabulary, error)
	ListVocabularyOccurrences(ctx context.Context, deck DeckIdentifier) (map[Vocabulary]int, error)
	SetCardSentence(ctx context.Context, options SetCardSentenceOptions) error
	LookupVocabulary(ctx context.Context, list []Vocabulary, fields []VocabularyField) ([]VocabularyInfo, error)
	ParseText(ctx context.Context, text string, tokenFields []TokenField, vocabularyFields []VocabularyField) (ParseResult, error)
}

var _ API = (*Client)(nil)
