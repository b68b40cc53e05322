package jpdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an Error so callers can branch without matching
// on message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindAPIUnavailable
	KindMissingKey
	KindBadKey
	KindBadRequest
	KindBadDeck
	KindBadVid
	KindBadSid
	KindBadRid
	KindBadImage
	KindBadAudio
	KindBadSentence
	KindBadTranslation
	KindTooManyRequests
	KindTooManyDecks
	KindTooManyCardsInDeck
	KindTooManyCardsTotal
	KindTransport
	KindDecode
	KindUnhandled
	KindInvalidArgument
)

var kindNames = map[ErrorKind]string{
	KindUnknown:            "unknown",
	KindAPIUnavailable:     "api_unavailable",
	KindMissingKey:         "missing_key",
	KindBadKey:             "bad_key",
	KindBadRequest:         "bad_request",
	KindBadDeck:            "bad_deck",
	KindBadVid:             "bad_vid",
	KindBadSid:             "bad_sid",
	KindBadRid:             "bad_rid",
	KindBadImage:           "bad_image",
	KindBadAudio:           "bad_audio",
	KindBadSentence:        "bad_sentence",
	KindBadTranslation:     "bad_translation",
	KindTooManyRequests:    "too_many_requests",
	KindTooManyDecks:       "too_many_decks",
	KindTooManyCardsInDeck: "too_many_cards_in_deck",
	KindTooManyCardsTotal:  "too_many_cards_total",
	KindTransport:          "transport",
	KindDecode:             "decode",
	KindUnhandled:          "unhandled",
	KindInvalidArgument:    "invalid_argument",
}

var kindDescriptions = map[ErrorKind]string{
	KindAPIUnavailable:     "API unavailable",
	KindMissingKey:         "no API key was specified",
	KindBadKey:             "a bad API key was specified",
	KindBadRequest:         "the request body did not match the schema",
	KindBadDeck:            "a deck with the given id doesn't exist",
	KindBadVid:             "there is no vocabulary with the given id",
	KindBadSid:             "there is no spelling with the given id",
	KindBadRid:             "there is no reading with the given id",
	KindBadImage:           "bad image",
	KindBadAudio:           "bad audio",
	KindBadSentence:        "the sentence is too long, or the given vocabulary was not found in it",
	KindBadTranslation:     "the translation is too long",
	KindTooManyRequests:    "too many requests",
	KindTooManyDecks:       "the user has too many decks",
	KindTooManyCardsInDeck: "the user has too many cards in the given deck",
	KindTooManyCardsTotal:  "the user has reached the total card limit",
	KindTransport:          "transport failure",
	KindDecode:             "unexpected response body",
	KindUnhandled:          "unhandled error",
	KindInvalidArgument:    "invalid argument",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// RawError is the body the service returns with a non-2xx status.
type RawError struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// Error is returned by every Client operation that fails.
type Error struct {
	Kind ErrorKind
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	// Envelope is the decoded error body, if there was one.
	Envelope *RawError
	// Message is the service's error_message, or the raw body when it could
	// not be decoded.
	Message string
	Err     error
}

func (e *Error) Error() string {
	description := kindDescriptions[e.Kind]
	if description == "" {
		description = e.Kind.String()
	}
	switch {
	case e.Kind == KindUnhandled && e.Envelope != nil:
		return fmt.Sprintf("jpdb: %s: status %d: %s: %s", description, e.Status, e.Envelope.Error, e.Envelope.ErrorMessage)
	case e.Kind == KindUnhandled:
		return fmt.Sprintf("jpdb: %s: status %d: %s", description, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("jpdb: %s: %v", description, e.Err)
	case e.Message != "":
		return fmt.Sprintf("jpdb: %s: %s", description, e.Message)
	default:
		return "jpdb: " + description
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, jpdb.ErrBadKey) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is. They only carry a kind.
var (
	ErrAPIUnavailable     = &Error{Kind: KindAPIUnavailable}
	ErrMissingKey         = &Error{Kind: KindMissingKey}
	ErrBadKey             = &Error{Kind: KindBadKey}
	ErrBadRequest         = &Error{Kind: KindBadRequest}
	ErrBadDeck            = &Error{Kind: KindBadDeck}
	ErrBadVid             = &Error{Kind: KindBadVid}
	ErrBadSid             = &Error{Kind: KindBadSid}
	ErrBadRid             = &Error{Kind: KindBadRid}
	ErrBadImage           = &Error{Kind: KindBadImage}
	ErrBadAudio           = &Error{Kind: KindBadAudio}
	ErrBadSentence        = &Error{Kind: KindBadSentence}
	ErrBadTranslation     = &Error{Kind: KindBadTranslation}
	ErrTooManyRequests    = &Error{Kind: KindTooManyRequests}
	ErrTooManyDecks       = &Error{Kind: KindTooManyDecks}
	ErrTooManyCardsInDeck = &Error{Kind: KindTooManyCardsInDeck}
	ErrTooManyCardsTotal  = &Error{Kind: KindTooManyCardsTotal}
	ErrTransport          = &Error{Kind: KindTransport}
	ErrDecode             = &Error{Kind: KindDecode}
	ErrUnhandled          = &Error{Kind: KindUnhandled}
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
)

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// wildcard matches every value of a classification column.
const wildcard = ""

type classification struct {
	status  int
	code    string
	message string
	kind    ErrorKind
}

// classifications is consulted top to bottom; the first matching row wins.
// Some rows match on error_message because that is the only thing that
// tells the two bad_key cases apart.
var classifications = []classification{
	{status: http.StatusForbidden, code: "bad_key", message: "missing API key", kind: KindMissingKey},
	{status: http.StatusForbidden, code: "bad_key", message: "invalid API key", kind: KindBadKey},
	{status: http.StatusTooManyRequests, code: "too_many_requests", message: wildcard, kind: KindTooManyRequests},
	{status: http.StatusBadRequest, code: wildcard, message: "bad_request", kind: KindBadRequest},
	{status: http.StatusBadRequest, code: "bad_deck", message: wildcard, kind: KindBadDeck},
	{status: http.StatusBadRequest, code: "bad_vid", message: wildcard, kind: KindBadVid},
	{status: http.StatusBadRequest, code: "bad_sid", message: wildcard, kind: KindBadSid},
	{status: http.StatusBadRequest, code: "bad_rid", message: wildcard, kind: KindBadRid},
	{status: http.StatusBadRequest, code: "bad_image", message: wildcard, kind: KindBadImage},
	{status: http.StatusBadRequest, code: "bad_audio", message: wildcard, kind: KindBadAudio},
	{status: http.StatusBadRequest, code: "bad_sentence", message: wildcard, kind: KindBadSentence},
	{status: http.StatusBadRequest, code: "bad_translation", message: wildcard, kind: KindBadTranslation},
	{status: http.StatusBadRequest, code: "too_many_decks", message: wildcard, kind: KindTooManyDecks},
	{status: http.StatusBadRequest, code: "too_many_cards_in_deck", message: wildcard, kind: KindTooManyCardsInDeck},
	{status: http.StatusBadRequest, code: "too_many_cards_total", message: wildcard, kind: KindTooManyCardsTotal},
	{status: http.StatusServiceUnavailable, code: "api_unavailable", message: wildcard, kind: KindAPIUnavailable},
}

func (c classification) matches(status int, raw RawError) bool {
	return c.status == status &&
		(c.code == wildcard || c.code == raw.Error) &&
		(c.message == wildcard || c.message == raw.ErrorMessage)
}

// classify maps a status code and its envelope to a kind. Anything not in
// the table is KindUnhandled.
func classify(status int, raw RawError) ErrorKind {
	for _, c := range classifications {
		if c.matches(status, raw) {
			return c.kind
		}
	}
	return KindUnhandled
}

// newStatusError builds the error for a non-2xx response body.
func newStatusError(status int, body []byte) *Error {
	var raw *RawError
	if err := json.Unmarshal(body, &raw); err != nil {
		return &Error{
			Kind:    KindUnhandled,
			Status:  status,
			Message: string(body),
			Err:     fmt.Errorf("json.Unmarshal(error envelope) > %w", err),
		}
	}
	if raw == nil {
		return &Error{
			Kind:    KindUnhandled,
			Status:  status,
			Message: string(body),
			Err:     errors.New("error envelope is null"),
		}
	}

	return &Error{
		Kind:     classify(status, *raw),
		Status:   status,
		Envelope: raw,
		Message:  raw.ErrorMessage,
	}
}

func newTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// newInvalidArgumentError reports arguments rejected before anything is sent.
func newInvalidArgumentError(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

func newDecodeError(body []byte, err error) *Error {
	return &Error{Kind: KindDecode, Message: string(body), Err: err}
}
