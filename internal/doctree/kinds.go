package doctree

// Kind is the canonical node classification the rest of the engine works
// with. Grammar-specific node type names never leak past this package.
type Kind int

const (
	KindOther Kind = iota
	KindObject
	KindArray
	KindPair
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindPair:
		return "pair"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	default:
		return "other"
	}
}

// IsValue reports whether the kind is a value-bearing kind: the kinds that
// count as items of an array and as resolvable pin values.
func (k Kind) IsValue() bool {
	switch k {
	case KindObject, KindArray, KindString, KindNumber, KindTrue, KindFalse, KindNull:
		return true
	default:
		return false
	}
}

// kindForType maps a yaml-grammar node type name to its canonical Kind.
// boolean_scalar needs the node text to split into true/false, so it is
// handled in Node.Kind rather than here.
//
// Node type names follow ikatyang/tree-sitter-yaml. JSON documents parse
// through the same grammar as flow-syntax YAML, so both mapping styles
// (block and flow) are listed.
var kindForType = map[string]Kind{
	"block_mapping": KindObject,
	"flow_mapping":  KindObject,

	"block_sequence": KindArray,
	"flow_sequence":  KindArray,

	"block_mapping_pair": KindPair,
	"flow_pair":          KindPair,

	"string_scalar":       KindString,
	"double_quote_scalar": KindString,
	"single_quote_scalar": KindString,
	"block_scalar":        KindString,

	"integer_scalar": KindNumber,
	"float_scalar":   KindNumber,

	"null_scalar": KindNull,
}

// wrapperTypes are structural grammar nodes that carry no addressing
// meaning of their own. Navigation (Parent, Field, Items) is transparent
// across them.
var wrapperTypes = map[string]bool{
	"stream":              true,
	"document":            true,
	"block_node":          true,
	"flow_node":           true,
	"block_sequence_item": true,
}
