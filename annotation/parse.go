package annotation

import (
	"fmt"
	"strings"
)

// MalformedAnnotationError is returned when source text violates the
// annotation grammar. Segment is the offending `TYPE:VALUE` segment as it
// appeared in the input.
type MalformedAnnotationError struct {
	Segment string
	Reason  string
}

func (e *MalformedAnnotationError) Error() string {
	return fmt.Sprintf("malformed annotation %q: %s", e.Segment, e.Reason)
}

// Parse splits a `;`-separated annotation string into its annotations,
// preserving source order. An empty string parses to an empty sequence.
// It fails with *MalformedAnnotationError on the first segment that has no
// type separator, carries an unknown type tag, or whose value violates the
// type's grammar.
func Parse(raw string) ([]Annotation, error) {
	if raw == "" {
		return nil, nil
	}
	segments := strings.Split(raw, ";")
	anns := make([]Annotation, 0, len(segments))
	for _, seg := range segments {
		a, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		anns = append(anns, a)
	}
	return anns, nil
}

func parseSegment(seg string) (Annotation, error) {
	i := strings.IndexByte(seg, ':')
	if i < 0 {
		return Annotation{}, &MalformedAnnotationError{Segment: seg, Reason: "missing type separator"}
	}
	tag, value := seg[:i], seg[i+1:]
	switch tag {
	case "EC":
		return parseEC(seg, value)
	case "GO":
		return parseGO(seg, value)
	case "IPR":
		return parseIPR(seg, value)
	default:
		return Annotation{}, &MalformedAnnotationError{Segment: seg, Reason: fmt.Sprintf("unknown type tag %q", tag)}
	}
}

func parseEC(seg, value string) (Annotation, error) {
	parts := strings.Split(value, ".")
	if len(parts) > MaxECFields {
		return Annotation{}, &MalformedAnnotationError{
			Segment: seg,
			Reason:  fmt.Sprintf("EC numbers have at most %d fields", MaxECFields),
		}
	}
	fields := make([]ECField, len(parts))
	for i, p := range parts {
		switch {
		case p == "-":
			fields[i] = ECField{Wildcard: true}
		case allDigits(p) && len(p) <= MaxECFieldDigits:
			fields[i] = ECField{Digits: p}
		default:
			return Annotation{}, &MalformedAnnotationError{
				Segment: seg,
				Reason:  fmt.Sprintf("EC fields are %q or 1-%d decimal digits", "-", MaxECFieldDigits),
			}
		}
	}
	return Annotation{typ: TypeEC, fields: fields}, nil
}

func parseGO(seg, value string) (Annotation, error) {
	id, ok := parseFixedDecimal(value, GODigits)
	if !ok {
		return Annotation{}, &MalformedAnnotationError{
			Segment: seg,
			Reason:  fmt.Sprintf("GO ids are exactly %d decimal digits", GODigits),
		}
	}
	return Annotation{typ: TypeGO, id: id}, nil
}

func parseIPR(seg, value string) (Annotation, error) {
	const prefix = "IPR"
	if !strings.HasPrefix(value, prefix) {
		return Annotation{}, &MalformedAnnotationError{
			Segment: seg,
			Reason:  fmt.Sprintf("InterPro values carry a literal %q prefix", prefix),
		}
	}
	id, ok := parseFixedDecimal(value[len(prefix):], IPRDigits)
	if !ok {
		return Annotation{}, &MalformedAnnotationError{
			Segment: seg,
			Reason:  fmt.Sprintf("InterPro ids are exactly %d decimal digits", IPRDigits),
		}
	}
	return Annotation{typ: TypeIPR, id: id}, nil
}

// parseFixedDecimal parses a zero-padded decimal of exactly width digits.
func parseFixedDecimal(s string, width int) (uint32, bool) {
	if len(s) != width {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint32(c-'0')
	}
	return v, true
}
