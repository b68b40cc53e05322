package jpdb

import (
	"context"
	"fmt"
)

// AddVocabulary adds vocabulary to a deck.
func (client *Client) AddVocabulary(ctx context.Context, deck DeckIdentifier, options AddVocabularyOptions) error {
	if options.Occurrences != nil && len(options.Occurrences) != len(options.Vocabulary) {
		return newInvalidArgumentError("got %d occurrences for %d vocabulary entries", len(options.Occurrences), len(options.Vocabulary))
	}
	return client.do(ctx, addVocabularyRequest(deck, options), nil)
}

// RemoveVocabulary removes vocabulary from a deck.
func (client *Client) RemoveVocabulary(ctx context.Context, deck DeckIdentifier, vocabulary []Vocabulary) error {
	return client.do(ctx, removeVocabularyRequest(deck, vocabulary), nil)
}

// ListVocabularyRaw returns the body of deck/list-vocabulary as is.
// fetchOccurrences is left out of the request when nil.
func (client *Client) ListVocabularyRaw(ctx context.Context, deck DeckIdentifier, fetchOccurrences *bool) (DeckVocabulary, error) {
	var response DeckVocabulary
	if err := client.do(ctx, listVocabularyRequest(deck, fetchOccurrences), &response); err != nil {
		return DeckVocabulary{}, err
	}
	return response, nil
}

// ListVocabulary returns the vocabulary in a deck.
func (client *Client) ListVocabulary(ctx context.Context, deck DeckIdentifier) ([]Vocabulary, error) {
	response, err := client.ListVocabularyRaw(ctx, deck, nil)
	if err != nil {
		return nil, err
	}
	return response.Vocabulary, nil
}

// ListVocabularyOccurrences returns the vocabulary in a deck with how often
// each entry occurs in it. A response without occurrences, or with a
// different number of occurrences than entries, is a KindDecode error.
func (client *Client) ListVocabularyOccurrences(ctx context.Context, deck DeckIdentifier) (map[Vocabulary]int, error) {
	response, err := client.ListVocabularyRaw(ctx, deck, Ptr(true))
	if err != nil {
		return nil, err
	}
	occurrences, err := response.OccurrenceMap()
	if err != nil {
		return nil, newDecodeError(nil, fmt.Errorf("response.OccurrenceMap > %w", err))
	}
	return occurrences, nil
}

// SetCardSentence sets or clears the example sentence of a card.
func (client *Client) SetCardSentence(ctx context.Context, options SetCardSentenceOptions) error {
	return client.do(ctx, setCardSentenceRequest(options), nil)
}

// LookupVocabulary returns the requested fields for each entry of list, in
// the same order.
func (client *Client) LookupVocabulary(ctx context.Context, list []Vocabulary, fields []VocabularyField) ([]VocabularyInfo, error) {
	req := lookupVocabularyRequest(list, fields)
	var response lookupVocabularyResponse
	if err := client.do(ctx, req, &response); err != nil {
		return nil, err
	}
	infos, err := decodeRows(response.VocabularyInfo, req.body.(lookupVocabularyBody).Fields, assignVocabularyInfo)
	if err != nil {
		return nil, newDecodeError(nil, fmt.Errorf("decodeRows(vocabulary_info) > %w", err))
	}
	return infos, nil
}

// ParseText splits text into tokens and returns the vocabulary they refer to.
func (client *Client) ParseText(ctx context.Context, text string, tokenFields []TokenField, vocabularyFields []VocabularyField) (ParseResult, error) {
	req := parseRequest(text, tokenFields, vocabularyFields)
	var response parseResponse
	if err := client.do(ctx, req, &response); err != nil {
		return ParseResult{}, err
	}
	body := req.body.(parseBody)
	tokens, err := decodeRows(response.Tokens, body.TokenFields, assignToken)
	if err != nil {
		return ParseResult{}, newDecodeError(nil, fmt.Errorf("decodeRows(tokens) > %w", err))
	}
	vocabulary, err := decodeRows(response.Vocabulary, body.VocabularyFields, assignVocabularyInfo)
	if err != nil {
		return ParseResult{}, newDecodeError(nil, fmt.Errorf("decodeRows(vocabulary) > %w", err))
	}
	return ParseResult{Tokens: tokens, Vocabulary: vocabulary}, nil
}
