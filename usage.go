package facodec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Usage records which dictionary codes appear in a set of encoded buffers.
// The 24-bit code space is dense, which is exactly the shape roaring
// bitmaps compress well.
//
// The typical workflow is corpus maintenance: observe every stored buffer,
// then rebuild a smaller dictionary without the tokens UnusedTokens
// reports. Like Builder, a Usage is a single-writer value; Merge combines
// per-worker results.
type Usage struct {
	bm *roaring.Bitmap
}

// NewUsage creates an empty usage recorder.
func NewUsage() *Usage {
	return &Usage{bm: roaring.New()}
}

// Observe records every code of one dictionary-encoded buffer. It fails
// with ErrTruncatedBuffer if the buffer is not a whole number of codes.
func (u *Usage) Observe(buf []byte) error {
	if len(buf)%codeWidth != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of codes", ErrTruncatedBuffer, len(buf))
	}
	for i := 0; i < len(buf); i += codeWidth {
		u.bm.Add(uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2])<<16)
	}
	return nil
}

// ObserveCode records a single code.
func (u *Usage) ObserveCode(code uint32) {
	u.bm.Add(code)
}

// Contains reports whether code has been observed.
func (u *Usage) Contains(code uint32) bool {
	return u.bm.Contains(code)
}

// Cardinality returns the number of distinct observed codes.
func (u *Usage) Cardinality() uint64 {
	return u.bm.GetCardinality()
}

// Merge adds all codes observed by other.
func (u *Usage) Merge(other *Usage) {
	u.bm.Or(other.bm)
}

// UnusedTokens returns the dictionary tokens whose codes were never
// observed, in code order. Feeding the complement into a fresh Builder
// yields a pruned dictionary for the next corpus generation.
func (u *Usage) UnusedTokens(d *Dictionary) []string {
	var unused []string
	for code, token := range d.tokens {
		if !u.bm.Contains(uint32(code)) {
			unused = append(unused, token)
		}
	}
	return unused
}
