package facodec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/facodec/annotation"
	"github.com/hupe1980/facodec/internal/bitio"
)

// Decode reverses Encode. The result is `;`-joined text with all
// annotations of one type contiguous, types in canonical order and
// original relative order within each type. An empty buffer decodes to "".
//
// Decode fails with ErrTruncatedBuffer when the stream ends inside a
// declared group, ErrUnknownTypeCode when a group header carries a type
// code outside the closed enumeration, and ErrInvalidValue when a decoded
// field falls outside its grammar range.
func Decode(buf []byte) (string, error) {
	if len(buf) == 0 {
		return "", nil
	}

	r := bitio.NewReader(buf)
	var anns []annotation.Annotation
	for {
		tc, err := r.ReadBits(typeCodeBits)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		if tc >= annotation.NumTypes {
			return "", fmt.Errorf("%w: %d", ErrUnknownTypeCode, tc)
		}
		typ := annotation.Type(tc)

		count, err := readCount(r)
		if err != nil {
			return "", err
		}
		for i := uint64(0); i < count; i++ {
			a, err := decodeEntry(r, typ)
			if err != nil {
				return "", err
			}
			anns = append(anns, a)
		}

		more, err := r.ReadBit()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		if more == 0 {
			break
		}
	}
	return annotation.Join(anns), nil
}

func readCount(r *bitio.Reader) (uint64, error) {
	count, err := r.ReadGamma()
	if errors.Is(err, bitio.ErrGammaOverflow) {
		return 0, fmt.Errorf("%w: group count %w", ErrInvalidValue, err)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
	}
	return count, nil
}

func decodeEntry(r *bitio.Reader, typ annotation.Type) (annotation.Annotation, error) {
	switch typ {
	case annotation.TypeEC:
		return decodeEC(r)
	case annotation.TypeGO:
		id, err := r.ReadBits(goIDBits)
		if err != nil {
			return annotation.Annotation{}, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		if id > annotation.MaxGOID {
			return annotation.Annotation{}, fmt.Errorf("%w: GO id %d", ErrInvalidValue, id)
		}
		return annotation.NewGO(uint32(id))
	default:
		id, err := r.ReadBits(iprIDBits)
		if err != nil {
			return annotation.Annotation{}, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		if id > annotation.MaxIPRID {
			return annotation.Annotation{}, fmt.Errorf("%w: InterPro id %d", ErrInvalidValue, id)
		}
		return annotation.NewIPR(uint32(id))
	}
}

func decodeEC(r *bitio.Reader) (annotation.Annotation, error) {
	nf, err := r.ReadBits(ecNFieldBits)
	if err != nil {
		return annotation.Annotation{}, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
	}
	fields := make([]annotation.ECField, nf+1)
	for i := range fields {
		wild, err := r.ReadBit()
		if err != nil {
			return annotation.Annotation{}, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		if wild == 1 {
			fields[i] = annotation.ECField{Wildcard: true}
			continue
		}
		nd, err := r.ReadBits(ecNDigitBits)
		if err != nil {
			return annotation.Annotation{}, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		v, err := r.ReadBits(ecFieldBits[nd])
		if err != nil {
			return annotation.Annotation{}, fmt.Errorf("%w: %w", ErrTruncatedBuffer, err)
		}
		if v >= ecFieldMax[nd] {
			return annotation.Annotation{}, fmt.Errorf("%w: EC field value %d", ErrInvalidValue, v)
		}
		fields[i] = annotation.ECField{Digits: fmt.Sprintf("%0*d", int(nd)+1, v)}
	}
	return annotation.NewEC(fields)
}
