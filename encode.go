package facodec

import (
	"github.com/hupe1980/facodec/annotation"
	"github.com/hupe1980/facodec/internal/bitio"
)

// Bit widths of the table-free stream. Every field is strictly narrower
// than its ASCII rendering, which is what carries the 50% worst-case
// compression guarantee.
const (
	typeCodeBits = 2 // EC=0, GO=1, IPR=2; 3 is reserved
	ecNFieldBits = 2 // field count - 1
	ecNDigitBits = 2 // digit count - 1
	goIDBits     = 24
	iprIDBits    = 20
)

// ecFieldBits[d-1] is the bit width of a d-digit EC field value, the
// narrowest width that holds 10^d - 1. The digit count restores leading
// zeros, so the value alone is enough to reproduce the text.
var ecFieldBits = [4]uint8{4, 7, 10, 14}

// ecFieldMax[d-1] is the exclusive upper bound of a d-digit field value.
var ecFieldMax = [4]uint64{10, 100, 1000, 10000}

// Encode compresses an annotation string with the table-free codec.
//
// Annotations are grouped by type in canonical order (EC, GO, IPR),
// keeping the original relative order within each type; each group is
// written as a type code, an entry count and bit-packed values. The empty
// string encodes to an empty buffer.
//
// Decode reverses the buffer, so the output is the canonical regrouping of
// the input rather than the byte-identical source string.
func Encode(raw string) ([]byte, error) {
	anns, err := annotation.Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(anns) == 0 {
		return nil, nil
	}

	// Stable partition by type; index order is the canonical order.
	var groups [annotation.NumTypes][]annotation.Annotation
	for _, a := range anns {
		groups[a.Type()] = append(groups[a.Type()], a)
	}

	w := bitio.NewWriter()
	remaining := len(anns)
	for t, group := range groups {
		if len(group) == 0 {
			continue
		}
		w.WriteBits(uint64(t), typeCodeBits)
		w.WriteGamma(uint64(len(group)))
		for _, a := range group {
			encodeEntry(w, a)
		}
		remaining -= len(group)
		if remaining > 0 {
			w.WriteBit(1)
		} else {
			w.WriteBit(0)
		}
	}
	return w.Bytes(), nil
}

func encodeEntry(w *bitio.Writer, a annotation.Annotation) {
	switch a.Type() {
	case annotation.TypeEC:
		fields := a.ECFields()
		w.WriteBits(uint64(len(fields)-1), ecNFieldBits)
		for _, f := range fields {
			if f.Wildcard {
				w.WriteBit(1)
				continue
			}
			w.WriteBit(0)
			nd := len(f.Digits)
			w.WriteBits(uint64(nd-1), ecNDigitBits)
			var v uint64
			for i := 0; i < nd; i++ {
				v = v*10 + uint64(f.Digits[i]-'0')
			}
			w.WriteBits(v, ecFieldBits[nd-1])
		}
	case annotation.TypeGO:
		w.WriteBits(uint64(a.ID()), goIDBits)
	case annotation.TypeIPR:
		w.WriteBits(uint64(a.ID()), iprIDBits)
	}
}
