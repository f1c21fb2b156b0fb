package facodec

import "errors"

// Grammar violations in source text are reported as
// *annotation.MalformedAnnotationError; the sentinels below cover binary
// inputs and dictionary construction, so a caller can always tell bad text
// from bad bytes from an oversized corpus.
var (
	// ErrTruncatedBuffer is returned when a compressed buffer ends before a
	// declared group or entry is complete, or when a dictionary-coded
	// buffer is not a whole number of 3-byte codes.
	ErrTruncatedBuffer = errors.New("truncated buffer")

	// ErrUnknownTypeCode is returned when a table-free buffer declares a
	// type code outside the closed annotation type enumeration. It
	// indicates corruption.
	ErrUnknownTypeCode = errors.New("unknown annotation type code")

	// ErrInvalidValue is returned when a decoded value field falls outside
	// its grammar range (an EC field value past its declared digit count,
	// or an id wider than its fixed width). Like ErrUnknownTypeCode it
	// indicates corruption rather than truncation.
	ErrInvalidValue = errors.New("value outside grammar range")

	// ErrUnknownAnnotation is returned when an annotation token is absent
	// from the dictionary at encode time, or a stored code has no entry at
	// decode time. The dictionary is a closed artifact; it is never
	// auto-extended.
	ErrUnknownAnnotation = errors.New("annotation not in dictionary")

	// ErrDictionaryOverflow is returned by Builder.Build when the corpus
	// holds more distinct tokens than the 24-bit code space.
	ErrDictionaryOverflow = errors.New("dictionary exceeds 24-bit code space")

	// ErrBuilderSealed is returned when a Builder is used after Build.
	ErrBuilderSealed = errors.New("builder already built")

	// ErrInvalidSnapshot is returned when a dictionary snapshot fails
	// structural validation: bad magic, unsupported version, short reads,
	// or a checksum mismatch.
	ErrInvalidSnapshot = errors.New("invalid dictionary snapshot")
)
