package jpdb_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/at-ishikawa/jpdb/jpdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_Live runs against the real service and changes the account's
// decks. It requires JPDB_TOKEN to be set.
// Run with: JPDB_TOKEN=your-token go test -v ./jpdb -run TestClient_Live
func TestClient_Live(t *testing.T) {
	token := os.Getenv("JPDB_TOKEN")
	if token == "" {
		t.Skip("JPDB_TOKEN environment variable not set, skipping integration test")
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	t.Run("rejects missing and bad keys", func(t *testing.T) {
		for token, want := range map[string]error{
			"":         jpdb.ErrMissingKey,
			"badtoken": jpdb.ErrBadKey,
		} {
			client, err := jpdb.NewClient(token)
			require.NoError(t, err)
			assert.ErrorIs(t, client.Ping(ctx), want)
			_ = client.Close()
		}
	})

	client, err := jpdb.NewClient(token)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(ctx))

	deck, err := client.CreateEmptyDeck(ctx, "jpdb client test", nil)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, client.DeleteDeck(context.Background(), deck))
	}()

	require.NoError(t, client.RenameDeck(ctx, deck, "jpdb client test renamed"))

	parsed, err := client.ParseText(ctx, "猫が好き",
		[]jpdb.TokenField{jpdb.TokenFieldVocabularyIndex},
		[]jpdb.VocabularyField{jpdb.VocabularyFieldVID, jpdb.VocabularyFieldSID, jpdb.VocabularyFieldSpelling},
	)
	require.NoError(t, err)
	require.NotEmpty(t, parsed.Vocabulary)

	vocabulary := make([]jpdb.Vocabulary, 0, len(parsed.Vocabulary))
	for _, info := range parsed.Vocabulary {
		vocabulary = append(vocabulary, jpdb.NewVocabulary(*info.VID, *info.SID))
	}
	require.NoError(t, client.AddVocabulary(ctx, deck, jpdb.AddVocabularyOptions{Vocabulary: vocabulary}))

	occurrences, err := client.ListVocabularyOccurrences(ctx, deck)
	require.NoError(t, err)
	assert.Len(t, occurrences, len(vocabulary))

	infos, err := client.LookupVocabulary(ctx, vocabulary, []jpdb.VocabularyField{jpdb.VocabularyFieldSpelling})
	require.NoError(t, err)
	assert.Len(t, infos, len(vocabulary))

	decks, err := client.ListUserDecks(ctx, []jpdb.DeckField{jpdb.DeckFieldID, jpdb.DeckFieldName})
	require.NoError(t, err)
	var found bool
	for _, d := range decks {
		if d.ID != nil && d.ID.String() == deck.DeckReference().String() {
			found = true
			assert.Equal(t, "jpdb client test renamed", *d.Name)
		}
	}
	assert.True(t, found)

	require.NoError(t, client.ClearDeck(ctx, deck))
	remaining, err := client.ListVocabulary(ctx, deck)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
