// Package facodec compresses functional-annotation strings (the EC, GO
// and InterPro tags attached to protein records) losslessly and without
// any general-purpose compressor.
//
// Two independent codecs are provided. A buffer carries no tag saying
// which codec produced it; the codec used is a property of the call site,
// and mixing them is a caller bug.
//
// # Table-free codec
//
// Encode and Decode need no shared state. Annotations are regrouped by
// type (EC before GO before IPR, original order kept within a type) and
// each value is bit-packed per its grammar, so even a single minimal
// annotation compresses to at most half its text length:
//
//	buf, _ := facodec.Encode("IPR:IPR016364;EC:1.1.1.-;GO:0009279")
//	s, _ := facodec.Decode(buf)
//	// s == "EC:1.1.1.-;GO:0009279;IPR:IPR016364"
//
// Decode output is canonically regrouped relative to the encoder input, as
// above. The transformation is deterministic and lossless.
//
// # Dictionary codec
//
// A Dictionary maps whole annotation tokens to dense 24-bit codes. It is
// built once from a corpus, immutable afterwards, and must be identical at
// encode and decode time:
//
//	dict, _ := facodec.BuildDictionary(corpus)
//	buf, _ := dict.Encode("GO:0009279;EC:1.1.1.-") // 3 bytes per annotation
//	s, _ := dict.Decode(buf)                       // original order kept
//
// Dictionaries serialize to a compressed, checksummed snapshot (Save,
// LoadDictionary) and can be pushed to or pulled from a blobstore.Store so
// separate encode- and decode-side processes share one table.
//
// Both codecs are synchronous and perform no I/O. Encode/Decode are safe
// for unlimited concurrent use; a Dictionary is safe for concurrent
// readers once built.
package facodec
