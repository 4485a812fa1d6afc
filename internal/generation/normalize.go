package generation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/tidwall/gjson"
)

const codeFence = "```"

// Normalize converts raw model text into exactly count spectrum pairs.
//
// The text may be wrapped in a markdown code fence, with or without a
// language tag. After the fence is removed the remainder must be a JSON
// array whose elements are objects with string "left" and "right" members.
// The first count elements are kept in order and their sides trimmed; any
// extras are dropped. There is no padding: fewer than count elements is an
// error.
//
// Every error returned wraps ErrInvalidResponse together with one of
// ErrEmptyResponse, ErrMalformedJSON, ErrInvalidShape or ErrInsufficientPairs.
// A count below one returns ErrInvalidCount.
func Normalize(raw string, count int) ([]domain.SpectrumPair, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	text := StripCodeFence(raw)
	if text == "" {
		return nil, invalidResponse(ErrEmptyResponse, "nothing left after fence stripping")
	}

	if !gjson.Valid(text) {
		return nil, invalidResponse(ErrMalformedJSON, "%d bytes could not be parsed", len(text))
	}

	parsed := gjson.Parse(text)
	if !parsed.IsArray() {
		return nil, invalidResponse(ErrInvalidShape, "top-level value is not an array")
	}

	elements := parsed.Array()
	for i, element := range elements {
		if !element.IsObject() {
			return nil, invalidResponse(ErrInvalidShape, "element %d is not an object", i)
		}
		if lastMember(element, "left").Type != gjson.String {
			return nil, invalidResponse(ErrInvalidShape, "element %d has no string \"left\"", i)
		}
		if lastMember(element, "right").Type != gjson.String {
			return nil, invalidResponse(ErrInvalidShape, "element %d has no string \"right\"", i)
		}
	}

	if len(elements) < count {
		return nil, invalidResponse(ErrInsufficientPairs, "got %d, want %d", len(elements), count)
	}

	pairs := make([]domain.SpectrumPair, 0, count)
	for i, element := range elements[:count] {
		pair, err := domain.NewSpectrumPair(lastMember(element, "left").Str, lastMember(element, "right").Str)
		if err != nil {
			return nil, invalidResponse(ErrInvalidShape, "element %d: %v", i, err)
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// StripCodeFence removes a surrounding markdown code fence, if present, and
// trims whitespace. The opening fence line is dropped whole, so a language
// tag such as "```json" goes with it. Text without a fence is only trimmed.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, codeFence) {
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[idx+1:]
		} else {
			// Whole reply on one line: ```json[...]```
			text = stripInlineTag(strings.TrimPrefix(text, codeFence))
		}
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, codeFence)

	return strings.TrimSpace(text)
}

// stripInlineTag drops a leading language tag when it is directly followed
// by whitespace, the start of a JSON container or the closing fence. A
// remainder that is nothing but a tag ("```json" cut off by the token limit)
// has no content.
func stripInlineTag(text string) string {
	end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	switch {
	case end < 0:
		return ""
	case end == 0:
		return text
	}

	switch text[end] {
	case ' ', '\t', '\r', '[', '{', '`':
		return text[end:]
	default:
		return text
	}
}

// lastMember returns the value of key in obj. When the key is repeated the
// last occurrence wins, matching encoding/json and most other decoders.
func lastMember(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
		}
		return true
	})
	return found
}

func invalidResponse(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidResponse, kind, fmt.Sprintf(format, args...))
}
