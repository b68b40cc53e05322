package jpdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// VocabularyID identifies a word (vid).
type VocabularyID uint32

// SpellingID identifies a written form of a word (sid).
type SpellingID uint32

// ReadingID identifies a reading of a word (rid).
type ReadingID uint32

// UserDeckID identifies a deck created by the user.
type UserDeckID uint32

// Vocabulary is a word together with one of its spellings.
// It is comparable and can be used as a map key.
type Vocabulary struct {
	VID VocabularyID
	SID SpellingID
}

// NewVocabulary is a shorthand for Vocabulary{VID: vid, SID: sid}.
func NewVocabulary(vid VocabularyID, sid SpellingID) Vocabulary {
	return Vocabulary{VID: vid, SID: sid}
}

func (v Vocabulary) String() string {
	return fmt.Sprintf("%d:%d", v.VID, v.SID)
}

// MarshalJSON encodes the pair as [vid, sid].
func (v Vocabulary) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint32{uint32(v.VID), uint32(v.SID)})
}

// MarshalYAML mirrors MarshalJSON.
func (v Vocabulary) MarshalYAML() (any, error) {
	return []uint32{uint32(v.VID), uint32(v.SID)}, nil
}

// UnmarshalJSON decodes a [vid, sid] pair.
func (v *Vocabulary) UnmarshalJSON(data []byte) error {
	var pair []uint32
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("json.Unmarshal(vocabulary) > %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("vocabulary must have 2 elements, got %d", len(pair))
	}
	v.VID = VocabularyID(pair[0])
	v.SID = SpellingID(pair[1])
	return nil
}

// SpecialDeck is one of the decks every user has.
type SpecialDeck int

const (
	Blacklist SpecialDeck = iota + 1
	NeverForget
)

func (d SpecialDeck) String() string {
	switch d {
	case Blacklist:
		return "blacklist"
	case NeverForget:
		return "never-forget"
	default:
		return fmt.Sprintf("SpecialDeck(%d)", int(d))
	}
}

// DeckIdentifier is implemented by every type that names a deck.
type DeckIdentifier interface {
	DeckReference() DeckReference
}

var (
	_ DeckIdentifier = UserDeckID(0)
	_ DeckIdentifier = Blacklist
	_ DeckIdentifier = DeckReference{}
)

// DeckReference implements DeckIdentifier.
func (id UserDeckID) DeckReference() DeckReference {
	return DeckReference{kind: deckRefUser, id: id}
}

// DeckReference implements DeckIdentifier.
func (d SpecialDeck) DeckReference() DeckReference {
	switch d {
	case Blacklist:
		return DeckReference{kind: deckRefBlacklist}
	case NeverForget:
		return DeckReference{kind: deckRefNeverForget}
	default:
		panic(fmt.Sprintf("jpdb: unknown special deck %d", int(d)))
	}
}

type deckRefKind uint8

const (
	deckRefUser deckRefKind = iota
	deckRefBlacklist
	deckRefNeverForget
	deckRefBuiltIn
)

// DeckReference is either a user deck id or one of the special decks.
// Built-in decks returned by the service that have no SpecialDeck value
// keep the name the service used, see BuiltIn.
// The zero value refers to the user deck with id 0.
type DeckReference struct {
	kind deckRefKind
	id   UserDeckID
	name string
}

// DeckReference implements DeckIdentifier.
func (r DeckReference) DeckReference() DeckReference {
	return r
}

// UserDeck returns the user deck id and true when r refers to a user deck.
func (r DeckReference) UserDeck() (UserDeckID, bool) {
	return r.id, r.kind == deckRefUser
}

// Special returns the special deck and true when r refers to one.
func (r DeckReference) Special() (SpecialDeck, bool) {
	switch r.kind {
	case deckRefBlacklist:
		return Blacklist, true
	case deckRefNeverForget:
		return NeverForget, true
	default:
		return 0, false
	}
}

// BuiltIn returns the service's name for a built-in deck that is neither
// Blacklist nor NeverForget.
func (r DeckReference) BuiltIn() (string, bool) {
	return r.name, r.kind == deckRefBuiltIn
}

func (r DeckReference) String() string {
	if special, ok := r.Special(); ok {
		return special.String()
	}
	if name, ok := r.BuiltIn(); ok {
		return name
	}
	return strconv.FormatUint(uint64(r.id), 10)
}

// MarshalJSON encodes a user deck as a bare number and every other deck by
// its name.
func (r DeckReference) MarshalJSON() ([]byte, error) {
	if r.kind == deckRefUser {
		return json.Marshal(uint32(r.id))
	}
	return json.Marshal(r.String())
}

// MarshalYAML mirrors MarshalJSON.
func (r DeckReference) MarshalYAML() (any, error) {
	if r.kind == deckRefUser {
		return uint32(r.id), nil
	}
	return r.String(), nil
}

// UnmarshalJSON accepts the same shapes MarshalJSON produces.
func (r *DeckReference) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case Blacklist.String():
			*r = Blacklist.DeckReference()
		case NeverForget.String():
			*r = NeverForget.DeckReference()
		case "":
			return errors.New("deck name is empty")
		default:
			*r = DeckReference{kind: deckRefBuiltIn, name: name}
		}
		return nil
	}
	var id uint32
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("json.Unmarshal(deck id) > %w", err)
	}
	*r = UserDeckID(id).DeckReference()
	return nil
}

// ParseDeckReference parses "blacklist", "never-forget" or a numeric deck id.
func ParseDeckReference(s string) (DeckReference, error) {
	switch s {
	case Blacklist.String():
		return Blacklist.DeckReference(), nil
	case NeverForget.String():
		return NeverForget.DeckReference(), nil
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return DeckReference{}, fmt.Errorf("invalid deck %q: must be a deck id, %q or %q", s, Blacklist, NeverForget)
	}
	return UserDeckID(id).DeckReference(), nil
}

// ParseVocabulary parses a "vid:sid" pair.
func ParseVocabulary(s string) (Vocabulary, error) {
	vidText, sidText, ok := strings.Cut(s, ":")
	if !ok {
		return Vocabulary{}, fmt.Errorf("invalid vocabulary %q: must be vid:sid", s)
	}
	vid, err := strconv.ParseUint(vidText, 10, 32)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("invalid vid in %q > %w", s, err)
	}
	sid, err := strconv.ParseUint(sidText, 10, 32)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("invalid sid in %q > %w", s, err)
	}
	return NewVocabulary(VocabularyID(vid), SpellingID(sid)), nil
}
