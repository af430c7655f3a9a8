package serverset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrInvalidUTF8 is returned when a znode payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("payload is not valid utf-8")

	// ErrMalformedPayload is returned when a znode payload is valid UTF-8
	// but does not decode into a Member.
	ErrMalformedPayload = errors.New("malformed member payload")
)

// DecodeMember parses a raw znode payload into a Member. The two failure
// kinds are distinguishable with errors.Is, so callers can report bad
// encodings and bad structure separately. Neither is ever fatal.
func DecodeMember(raw []byte) (Member, error) {
	if !utf8.Valid(raw) {
		return Member{}, ErrInvalidUTF8
	}

	var m Member
	if err := json.Unmarshal(raw, &m); err != nil {
		return Member{}, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}

	return m, nil
}

// EncodeMember serializes a Member into the znode payload format.
func EncodeMember(m Member) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode member: %w", err)
	}

	return data, nil
}
