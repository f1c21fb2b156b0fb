package facodec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/facodec/annotation"
)

// codeWidth is the fixed size of one dictionary code on the wire.
const codeWidth = 3

// MaxDictionarySize is the largest number of distinct tokens a Dictionary
// can hold: codes are 24-bit and dense, starting at 0.
const MaxDictionarySize = 1<<24 - 1

// Dictionary is the table backing the dictionary codec: a bidirectional
// mapping between whole annotation tokens (their full textual form, e.g.
// "EC:1.1.1.-") and dense 24-bit codes.
//
// A Dictionary is immutable once built and safe for any number of
// concurrent Encode/Decode calls. The only constructors are
// Builder.Build, BuildDictionary, BuildFromReaders and LoadDictionary; no
// API mutates a published Dictionary.
type Dictionary struct {
	tokens []string          // code -> token
	codes  map[string]uint32 // token -> code
}

// Len returns the number of tokens in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.tokens)
}

// Code returns the code assigned to token.
func (d *Dictionary) Code(token string) (uint32, bool) {
	c, ok := d.codes[token]
	return c, ok
}

// Token returns the token assigned to code.
func (d *Dictionary) Token(code uint32) (string, bool) {
	if code >= uint32(len(d.tokens)) {
		return "", false
	}
	return d.tokens[code], true
}

// Encode compresses an annotation string by substituting each annotation
// with its 3-byte little-endian code, in original input order. Unlike the
// table-free codec there is no regrouping: once values are opaque codes,
// groups buy nothing.
//
// Every token of the input must be present in the dictionary; Encode fails
// with ErrUnknownAnnotation otherwise. The dictionary is never extended
// during encode.
func (d *Dictionary) Encode(raw string) ([]byte, error) {
	anns, err := annotation.Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(anns) == 0 {
		return nil, nil
	}

	buf := make([]byte, 0, len(anns)*codeWidth)
	for _, a := range anns {
		token := a.String()
		code, ok := d.codes[token]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAnnotation, token)
		}
		buf = append(buf, byte(code), byte(code>>8), byte(code>>16))
	}
	return buf, nil
}

// Decode reverses Encode, reproducing the stored annotation order exactly.
// It fails with ErrTruncatedBuffer if the buffer is not a whole number of
// 3-byte codes and ErrUnknownAnnotation if a code has no dictionary entry,
// which indicates corruption or an encode/decode dictionary mismatch.
func (d *Dictionary) Decode(buf []byte) (string, error) {
	if len(buf) == 0 {
		return "", nil
	}
	if len(buf)%codeWidth != 0 {
		return "", fmt.Errorf("%w: %d bytes is not a whole number of codes", ErrTruncatedBuffer, len(buf))
	}

	var sb strings.Builder
	for i := 0; i < len(buf); i += codeWidth {
		code := uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2])<<16
		token, ok := d.Token(code)
		if !ok {
			return "", fmt.Errorf("%w: code %d", ErrUnknownAnnotation, code)
		}
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(token)
	}
	return sb.String(), nil
}
