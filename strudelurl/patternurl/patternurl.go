package patternurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// BaseURL is the REPL address shared links point at.
const BaseURL = "https://strudel.cc/"

const fragmentDelim = "#"

var (
	// ErrMalformedURL reports a payload that is not valid percent-encoding.
	ErrMalformedURL = errors.New("malformed URL")
	// ErrMalformedEncoding reports a payload that is not valid padded standard base64.
	ErrMalformedEncoding = errors.New("malformed encoding")
	// ErrInvalidText reports decoded bytes that are not UTF-8.
	ErrInvalidText = errors.New("invalid text encoding")
)

// Encode returns a strudel.cc link carrying code in its fragment.
func Encode(code string) string {
	return EncodeWithBase(BaseURL, code)
}

// EncodeWithBase is Encode against an alternate REPL address.
func EncodeWithBase(base, code string) string {
	b64 := base64.StdEncoding.EncodeToString([]byte(code))
	// QueryEscape only differs from full escaping on spaces, which base64 never produces.
	return strings.TrimSuffix(base, fragmentDelim) + fragmentDelim + url.QueryEscape(b64)
}

// Fragment returns the still percent-encoded payload of a link, or the input
// itself when it carries no fragment delimiter.
func Fragment(input string) string {
	if _, after, found := strings.Cut(input, fragmentDelim); found {
		return after
	}
	return input
}

// Decode accepts a full link or a bare fragment and returns the code it carries.
func Decode(input string) (string, error) {
	payload := Fragment(strings.TrimSpace(input))

	// PathUnescape keeps '+' literal so hand-pasted unescaped base64 still decodes.
	b64, err := url.PathUnescape(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}

	decoded, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%w: base64: %w", ErrMalformedEncoding, err)
	} else if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: decoded bytes are not UTF-8", ErrInvalidText)
	}
	return string(decoded), nil
}
