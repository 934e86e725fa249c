// Package codec encodes and decodes rop.Result values as JSON under a
// configurable tagging.
//
// External tagging writes the variant name as the only key:
//
//	{"Ok":1}
//	{"Err":"Some error message"}
//
// Adjacent tagging writes the variant and the payload as sibling members,
// optionally nested under a record field:
//
//	{"result":{"type":"Ok","value":1}}
//
// Absent optional payloads (rop.None) are written as null in both modes.
// A Codec is immutable and safe for concurrent use.
package codec
