// Package sfv parses and serializes HTTP Structured Field Values, as
// defined in RFC 8941.
//
// Structured Field Values are a typed syntax for HTTP field values.  A
// field value is one of three top-level types: an Item, a List, or a
// Dictionary.  The caller chooses which top-level type to parse a field
// value as; this package has no registry of field names.
//
// Value Model
//
// Parsed values are represented by a small tree of interfaces.  Bare item
// values map to Go types as follows:
//
// | Wire type     | Go type   |
// | ------------- | --------- |
// | Integer       | int64     |
// | Decimal       | float64   |
// | String        | string    |
// | Token         | sfv.Token |
// | Byte Sequence | []byte    |
// | Boolean       | bool      |
//
// A BareItem wraps one of the above and reports which via Type().  An Item
// is a BareItem plus Parameters.  A Member holds either an Item or an
// InnerList and appears in Lists and Dictionaries.  Parameters and
// Dictionary are ordered maps which preserve insertion order.
//
// Parsing
//
// ParseItem, ParseList and ParseDictionary each consume an entire field
// value and return the corresponding tree, or an error.  Parse dispatches
// on a field type name ("item", "list" or "dictionary").  Input must be
// ASCII; any byte above 0x7F is rejected.
//
// Serializing
//
// Serialize writes a value tree back to its textual representation.  It
// accepts a Dictionary, a List, a Member, an Item, a BareItem, or a raw Go
// value from the table above, which is wrapped with empty parameters.
// Serialization reads the tree without modifying it, so the same tree may
// be serialized any number of times.
//
// SerializeInnerList emits a standalone inner list.  RFC 8941 gives an
// inner list no framing outside of a list or dictionary, so the output is
// not a valid field value on its own; use it only when a deliberate
// fragment is wanted.
package sfv
