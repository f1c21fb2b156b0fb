// Package annotation defines the grammar of functional-annotation strings:
// the closed set of annotation types, parsing of `;`-separated source
// strings, and exact textual rendering.
//
// Every value that parses renders back to the identical text, including
// zero padding and Enzyme Commission wildcard markers. Both codecs in the
// parent package rely on this round-trip to treat the parsed form as the
// single source of truth.
package annotation

import (
	"fmt"
	"strings"
)

// Type identifies one kind of functional annotation. The enumeration is
// closed; the declaration order is the canonical type order used to make
// decoded output deterministic.
type Type uint8

const (
	// TypeEC is an Enzyme Commission number, e.g. "EC:1.1.1.-".
	TypeEC Type = iota
	// TypeGO is a Gene Ontology term, e.g. "GO:0009279".
	TypeGO
	// TypeIPR is an InterPro domain, e.g. "IPR:IPR016364".
	TypeIPR

	// NumTypes is the number of annotation types.
	NumTypes = 3
)

// Grammar bounds. The fixed widths of GO and InterPro identifiers follow
// the databases themselves (7 and 6 zero-padded digits); the EC bounds
// cover the full published enzyme classification.
const (
	MaxGOID          = 9999999 // GO ids are exactly 7 decimal digits
	MaxIPRID         = 999999  // InterPro ids are exactly 6 decimal digits
	GODigits         = 7
	IPRDigits        = 6
	MaxECFields      = 4
	MaxECFieldDigits = 4
)

// String returns the textual tag of the type.
func (t Type) String() string {
	switch t {
	case TypeEC:
		return "EC"
	case TypeGO:
		return "GO"
	case TypeIPR:
		return "IPR"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ECField is one dot-separated field of an Enzyme Commission number:
// either the wildcard marker "-" or 1-4 decimal digits kept as text so
// that leading zeros survive a round-trip.
type ECField struct {
	Wildcard bool
	Digits   string
}

func (f ECField) String() string {
	if f.Wildcard {
		return "-"
	}
	return f.Digits
}

// Annotation is one parsed (type, value) pair. The zero value is not
// meaningful; construct via Parse or the New* constructors.
type Annotation struct {
	typ    Type
	id     uint32    // GO and IPR
	fields []ECField // EC
}

// NewEC constructs an Enzyme Commission annotation from its fields.
func NewEC(fields []ECField) (Annotation, error) {
	if len(fields) == 0 || len(fields) > MaxECFields {
		return Annotation{}, &MalformedAnnotationError{
			Segment: "EC:" + joinECFields(fields),
			Reason:  fmt.Sprintf("EC numbers have 1 to %d fields", MaxECFields),
		}
	}
	for _, f := range fields {
		if f.Wildcard {
			continue
		}
		if len(f.Digits) == 0 || len(f.Digits) > MaxECFieldDigits || !allDigits(f.Digits) {
			return Annotation{}, &MalformedAnnotationError{
				Segment: "EC:" + joinECFields(fields),
				Reason:  fmt.Sprintf("EC fields are %q or 1-%d decimal digits", "-", MaxECFieldDigits),
			}
		}
	}
	return Annotation{typ: TypeEC, fields: fields}, nil
}

// NewGO constructs a Gene Ontology annotation from its numeric id.
func NewGO(id uint32) (Annotation, error) {
	if id > MaxGOID {
		return Annotation{}, &MalformedAnnotationError{
			Segment: fmt.Sprintf("GO:%d", id),
			Reason:  fmt.Sprintf("GO ids are at most %d", MaxGOID),
		}
	}
	return Annotation{typ: TypeGO, id: id}, nil
}

// NewIPR constructs an InterPro annotation from its numeric id.
func NewIPR(id uint32) (Annotation, error) {
	if id > MaxIPRID {
		return Annotation{}, &MalformedAnnotationError{
			Segment: fmt.Sprintf("IPR:IPR%d", id),
			Reason:  fmt.Sprintf("InterPro ids are at most %d", MaxIPRID),
		}
	}
	return Annotation{typ: TypeIPR, id: id}, nil
}

// Type returns the annotation type.
func (a Annotation) Type() Type { return a.typ }

// ID returns the numeric id of a GO or IPR annotation. It is zero for EC.
func (a Annotation) ID() uint32 { return a.id }

// ECFields returns the fields of an EC annotation. The returned slice must
// not be mutated. It is nil for GO and IPR.
func (a Annotation) ECFields() []ECField { return a.fields }

// String renders the annotation exactly as it appeared in source text.
func (a Annotation) String() string {
	switch a.typ {
	case TypeEC:
		return "EC:" + joinECFields(a.fields)
	case TypeGO:
		return fmt.Sprintf("GO:%0*d", GODigits, a.id)
	default:
		return fmt.Sprintf("IPR:IPR%0*d", IPRDigits, a.id)
	}
}

// Join renders annotations as a `;`-separated string, the inverse of Parse.
func Join(anns []Annotation) string {
	var sb strings.Builder
	for i, a := range anns {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}

func joinECFields(fields []ECField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ".")
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
