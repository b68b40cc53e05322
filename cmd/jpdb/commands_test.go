package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_jpdb "github.com/at-ishikawa/jpdb/internal/mocks/jpdb"
	"github.com/at-ishikawa/jpdb/jpdb"
)

func TestRunPing(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		wantErr error
	}{
		{name: "ok", want: "pong\n"},
		{name: "bad key", err: &jpdb.Error{Kind: jpdb.KindBadKey}, wantErr: jpdb.ErrBadKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_jpdb.NewMockAPI(ctrl)
			api.EXPECT().Ping(gomock.Any()).Return(tt.err)

			p, out := newTestPrinter(OutputText)
			err := runPing(context.Background(), api, p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunCreateDeck(t *testing.T) {
	tests := []struct {
		name     string
		position *int
		format   OutputFormat
		want     string
	}{
		{name: "appended", format: OutputText, want: "created deck 0\n"},
		{name: "at position", position: jpdb.Ptr(2), format: OutputJSON, want: "{\n  \"id\": 0\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_jpdb.NewMockAPI(ctrl)
			api.EXPECT().CreateEmptyDeck(gomock.Any(), "baba", tt.position).Return(jpdb.UserDeckID(0), nil)

			p, out := newTestPrinter(tt.format)
			require.NoError(t, runCreateDeck(context.Background(), api, p, "baba", tt.position))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunDeckMutations(t *testing.T) {
	vocabulary := []jpdb.Vocabulary{jpdb.NewVocabulary(12, 13), jpdb.NewVocabulary(14, 11)}

	tests := []struct {
		name   string
		expect func(api *mock_jpdb.MockAPI)
		run    func(ctx context.Context, api jpdb.API, p printer) error
		want   string
	}{
		{
			name: "delete",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().DeleteDeck(gomock.Any(), jpdb.UserDeckID(3)).Return(nil)
			},
			run: func(ctx context.Context, api jpdb.API, p printer) error {
				return runDeleteDeck(ctx, api, p, 3)
			},
			want: "deleted deck 3\n",
		},
		{
			name: "rename",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().RenameDeck(gomock.Any(), jpdb.UserDeckID(3), "asa").Return(nil)
			},
			run: func(ctx context.Context, api jpdb.API, p printer) error {
				return runRenameDeck(ctx, api, p, 3, "asa")
			},
			want: "renamed deck 3 to asa\n",
		},
		{
			name: "clear blacklist",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().ClearDeck(gomock.Any(), jpdb.Blacklist.DeckReference()).Return(nil)
			},
			run: func(ctx context.Context, api jpdb.API, p printer) error {
				return runClearDeck(ctx, api, p, jpdb.Blacklist.DeckReference())
			},
			want: "cleared deck blacklist\n",
		},
		{
			name: "add",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().AddVocabulary(gomock.Any(), jpdb.UserDeckID(12).DeckReference(), jpdb.AddVocabularyOptions{
					Vocabulary:  vocabulary,
					Occurrences: []int{1, 2},
				}).Return(nil)
			},
			run: func(ctx context.Context, api jpdb.API, p printer) error {
				return runAddVocabulary(ctx, api, p, jpdb.UserDeckID(12).DeckReference(), jpdb.AddVocabularyOptions{
					Vocabulary:  vocabulary,
					Occurrences: []int{1, 2},
				})
			},
			want: "added 2 vocabulary entries to deck 12\n",
		},
		{
			name: "remove",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().RemoveVocabulary(gomock.Any(), jpdb.NeverForget.DeckReference(), vocabulary).Return(nil)
			},
			run: func(ctx context.Context, api jpdb.API, p printer) error {
				return runRemoveVocabulary(ctx, api, p, jpdb.NeverForget.DeckReference(), vocabulary)
			},
			want: "removed 2 vocabulary entries from deck never-forget\n",
		},
		{
			name: "set card sentence",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().SetCardSentence(gomock.Any(), jpdb.SetCardSentenceOptions{
					VID:      15,
					SID:      16,
					Sentence: jpdb.Ptr("猫が好き"),
				}).Return(nil)
			},
			run: func(ctx context.Context, api jpdb.API, p printer) error {
				return runSetCardSentence(ctx, api, p, jpdb.SetCardSentenceOptions{
					VID:      15,
					SID:      16,
					Sentence: jpdb.Ptr("猫が好き"),
				})
			},
			want: "updated the card 15:16\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_jpdb.NewMockAPI(ctrl)
			tt.expect(api)

			p, out := newTestPrinter(OutputText)
			require.NoError(t, tt.run(context.Background(), api, p))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunDeckMutations_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_jpdb.NewMockAPI(ctrl)
	api.EXPECT().DeleteDeck(gomock.Any(), jpdb.UserDeckID(99)).Return(&jpdb.Error{Kind: jpdb.KindBadDeck, Status: 400})

	p, out := newTestPrinter(OutputText)
	err := runDeleteDeck(context.Background(), api, p, 99)
	assert.ErrorIs(t, err, jpdb.ErrBadDeck)
	assert.Equal(t, jpdb.KindBadDeck, jpdb.KindOf(err))
	assert.Empty(t, out.String())
}

func TestRunListVocabulary(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_jpdb.NewMockAPI(ctrl)
	deck := jpdb.UserDeckID(12).DeckReference()
	api.EXPECT().ListVocabulary(gomock.Any(), deck).
		Return([]jpdb.Vocabulary{jpdb.NewVocabulary(12, 13), jpdb.NewVocabulary(14, 11)}, nil)

	p, out := newTestPrinter(OutputText)
	require.NoError(t, runListVocabulary(context.Background(), api, p, deck))
	assert.Equal(t, "12:13\n14:11\n", out.String())
}

func TestRunListVocabularyOccurrences(t *testing.T) {
	deck := jpdb.UserDeckID(12).DeckReference()
	occurrences := map[jpdb.Vocabulary]int{
		jpdb.NewVocabulary(14, 11): 9,
		jpdb.NewVocabulary(12, 13): 5,
		jpdb.NewVocabulary(12, 10): 1,
	}

	tests := []struct {
		format OutputFormat
		want   string
	}{
		{format: OutputText, want: "12:10\t1\n12:13\t5\n14:11\t9\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_jpdb.NewMockAPI(ctrl)
			api.EXPECT().ListVocabularyOccurrences(gomock.Any(), deck).Return(occurrences, nil)

			p, out := newTestPrinter(tt.format)
			require.NoError(t, runListVocabularyOccurrences(context.Background(), api, p, deck))
			assert.Equal(t, tt.want, out.String())
		})
	}

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_jpdb.NewMockAPI(ctrl)
		api.EXPECT().ListVocabularyOccurrences(gomock.Any(), deck).Return(occurrences, nil)

		p, out := newTestPrinter(OutputJSON)
		require.NoError(t, runListVocabularyOccurrences(context.Background(), api, p, deck))
		assert.JSONEq(t, `[
			{"vid":12,"sid":10,"occurrences":1},
			{"vid":12,"sid":13,"occurrences":5},
			{"vid":14,"sid":11,"occurrences":9}
		]`, out.String())
	})

	t.Run("decode error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_jpdb.NewMockAPI(ctrl)
		api.EXPECT().ListVocabularyOccurrences(gomock.Any(), deck).Return(nil, jpdb.ErrDecode)

		p, _ := newTestPrinter(OutputText)
		err := runListVocabularyOccurrences(context.Background(), api, p, deck)
		assert.ErrorIs(t, err, jpdb.ErrDecode)
	})
}

func TestRunListDecks(t *testing.T) {
	fields := []jpdb.DeckField{jpdb.DeckFieldID, jpdb.DeckFieldName, jpdb.DeckFieldKnownCoverage}

	tests := []struct {
		name    string
		special bool
		expect  func(api *mock_jpdb.MockAPI)
		want    string
	}{
		{
			name: "user decks",
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().ListUserDecks(gomock.Any(), fields).Return([]jpdb.Deck{
					{ID: jpdb.Ptr(jpdb.UserDeckID(3).DeckReference()), Name: jpdb.Ptr("Core"), KnownCoverage: jpdb.Ptr(12.5)},
				}, nil)
			},
			want: "ID  NAME  VOCABULARY_KNOWN_COVERAGE\n" +
				"3   Core  12.5%\n",
		},
		{
			name:    "special decks",
			special: true,
			expect: func(api *mock_jpdb.MockAPI) {
				api.EXPECT().ListSpecialDecks(gomock.Any(), fields).Return([]jpdb.Deck{
					{ID: jpdb.Ptr(jpdb.Blacklist.DeckReference()), Name: jpdb.Ptr("Blacklist")},
				}, nil)
			},
			want: "ID         NAME       VOCABULARY_KNOWN_COVERAGE\n" +
				"blacklist  Blacklist  -\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_jpdb.NewMockAPI(ctrl)
			tt.expect(api)

			p, out := newTestPrinter(OutputText)
			require.NoError(t, runListDecks(context.Background(), api, p, tt.special, fields))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunLookupVocabulary(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_jpdb.NewMockAPI(ctrl)
	list := []jpdb.Vocabulary{jpdb.NewVocabulary(1358280, 1857870)}
	fields := []jpdb.VocabularyField{jpdb.VocabularyFieldVID, jpdb.VocabularyFieldSID, jpdb.VocabularyFieldSpelling, jpdb.VocabularyFieldReading, jpdb.VocabularyFieldMeanings}
	api.EXPECT().LookupVocabulary(gomock.Any(), list, fields).Return([]jpdb.VocabularyInfo{{
		VID:      jpdb.Ptr(jpdb.VocabularyID(1358280)),
		SID:      jpdb.Ptr(jpdb.SpellingID(1857870)),
		Spelling: jpdb.Ptr("食べる"),
		Reading:  jpdb.Ptr("たべる"),
		Meanings: []string{"to eat", "to live on"},
	}}, nil)

	p, out := newTestPrinter(OutputText)
	require.NoError(t, runLookupVocabulary(context.Background(), api, p, list, fields))
	assert.Equal(t, "1358280:1857870 食べる [たべる] to eat; to live on\n", out.String())
}

func TestRunParseText(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_jpdb.NewMockAPI(ctrl)
	tokenFields := []jpdb.TokenField{jpdb.TokenFieldVocabularyIndex, jpdb.TokenFieldPositionUTF32, jpdb.TokenFieldLengthUTF32}
	vocabularyFields := []jpdb.VocabularyField{jpdb.VocabularyFieldSpelling}
	api.EXPECT().ParseText(gomock.Any(), "猫が好き", tokenFields, vocabularyFields).Return(jpdb.ParseResult{
		Tokens: []jpdb.Token{
			{VocabularyIndex: jpdb.Ptr(0), PositionUTF32: jpdb.Ptr(0), LengthUTF32: jpdb.Ptr(1)},
			{VocabularyIndex: jpdb.Ptr(1), PositionUTF32: jpdb.Ptr(1), LengthUTF32: jpdb.Ptr(1)},
			{VocabularyIndex: jpdb.Ptr(2), PositionUTF32: jpdb.Ptr(2), LengthUTF32: jpdb.Ptr(2)},
		},
		Vocabulary: []jpdb.VocabularyInfo{
			{Spelling: jpdb.Ptr("猫")},
			{Spelling: jpdb.Ptr("が")},
			{Spelling: jpdb.Ptr("好き")},
		},
	}, nil)

	p, out := newTestPrinter(OutputText)
	require.NoError(t, runParseText(context.Background(), api, p, "猫が好き", tokenFields, vocabularyFields))
	assert.Equal(t, "猫\t猫\nが\tが\n好き\t好き\n", out.String())
}
