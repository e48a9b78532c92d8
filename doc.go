// Package strictjson is a strict, allocator-pluggable JSON parser and
// serializer.
//
// It parses a byte buffer containing one JSON document into a Value tree,
// returning a precise Status diagnostic on failure, and serializes a Value
// tree back to conforming JSON text, compact or pretty.
//
// Design:
//   - Hand-written, single-pass, recursive-descent parser (parser.go):
//     validates UTF-8, decodes JSON string escapes (including UTF-16
//     surrogate pairs and CESU-8 reassembly), detects integer overflow and
//     promotes to floating point, enforces strict grammar (no trailing
//     commas, no leading zeros, bounded nesting depth).
//   - Value is a tagged sum (value.go) of null/bool/long/float/double/
//     string/array/object with value semantics and a pluggable Context
//     (alloc.go) governing where string payloads are carved from.
//   - Serializer (serialize.go) shares the UTF-8 classifier and decoder
//     with the parser so that parse/serialize form a round-trip pair.
package strictjson

// MaxDepth is the structural parser's nesting budget. The top-level value
// slot consumes one unit of it, so containers nested MaxDepth deep are
// rejected with StatusDepthExceeded and at most MaxDepth-1 nested
// containers parse. It is a compile-time constant, not a runtime option.
const MaxDepth = 20
