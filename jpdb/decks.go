package jpdb

import (
	"context"
	"fmt"
)

// Ping checks that the service is reachable and the token is accepted.
func (client *Client) Ping(ctx context.Context) error {
	return client.do(ctx, pingRequest(), nil)
}

// ClearDeck removes every vocabulary entry from a deck.
func (client *Client) ClearDeck(ctx context.Context, deck DeckIdentifier) error {
	return client.do(ctx, clearDeckRequest(deck), nil)
}

// DeleteDeck deletes a user deck. Special decks cannot be deleted.
func (client *Client) DeleteDeck(ctx context.Context, deck UserDeckID) error {
	return client.do(ctx, deleteDeckRequest(deck), nil)
}

// RenameDeck renames a user deck.
func (client *Client) RenameDeck(ctx context.Context, deck UserDeckID, name string) error {
	return client.do(ctx, renameDeckRequest(deck, name), nil)
}

// CreateEmptyDeck creates a deck and returns its id. When position is nil
// the service places the deck at the end.
func (client *Client) CreateEmptyDeck(ctx context.Context, name string, position *int) (UserDeckID, error) {
	var response createEmptyDeckResponse
	if err := client.do(ctx, createEmptyDeckRequest(name, position), &response); err != nil {
		return 0, err
	}
	return response.ID, nil
}

// ListUserDecks returns the user's own decks with the requested fields set.
func (client *Client) ListUserDecks(ctx context.Context, fields []DeckField) ([]Deck, error) {
	return client.listDecks(ctx, listUserDecksRequest(fields))
}

// ListSpecialDecks returns the built-in decks with the requested fields set.
func (client *Client) ListSpecialDecks(ctx context.Context, fields []DeckField) ([]Deck, error) {
	return client.listDecks(ctx, listSpecialDecksRequest(fields))
}

func (client *Client) listDecks(ctx context.Context, req request) ([]Deck, error) {
	var response listDecksResponse
	if err := client.do(ctx, req, &response); err != nil {
		return nil, err
	}
	fields := req.body.(listDecksBody).Fields
	decks, err := decodeRows(response.Decks, fields, assignDeck)
	if err != nil {
		return nil, newDecodeError(nil, fmt.Errorf("decodeRows(decks) > %w", err))
	}
	return decks, nil
}
