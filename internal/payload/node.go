package payload

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

// maxNestingDepth bounds both parsing and searching. Observed payloads stay
// under ~20 levels; the input is vendor-controlled, so anything deeper is
// rejected with ErrStructureTooDeep instead of risking stack exhaustion.
const maxNestingDepth = 128

// Kind tags the variant held by a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Node is a parsed-but-unschematized JSON value: a closed tagged union over
// the six JSON kinds. Nodes are immutable once built and are only ever read
// through the accessors below, all of which are safe on a nil receiver.
type Node struct {
	kind   Kind
	boolV  bool
	numV   float64
	strV   string
	items  []*Node
	fields map[string]*Node
}

// Parse parses an extracted JSON slice into a Node tree.
func Parse(data string) (*Node, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, eris.Wrapf(ErrParseFailed, "%v", err)
	}
	return fromValue(raw, 0)
}

func fromValue(v any, depth int) (*Node, error) {
	if depth > maxNestingDepth {
		return nil, ErrStructureTooDeep
	}
	switch val := v.(type) {
	case nil:
		return &Node{kind: KindNull}, nil
	case bool:
		return &Node{kind: KindBool, boolV: val}, nil
	case string:
		return &Node{kind: KindString, strV: val}, nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, eris.Wrapf(ErrParseFailed, "number %q: %v", val.String(), err)
		}
		return &Node{kind: KindNumber, numV: f}, nil
	case []any:
		items := make([]*Node, 0, len(val))
		for _, el := range val {
			child, err := fromValue(el, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return &Node{kind: KindArray, items: items}, nil
	case map[string]any:
		fields := make(map[string]*Node, len(val))
		for k, el := range val {
			child, err := fromValue(el, depth+1)
			if err != nil {
				return nil, err
			}
			fields[k] = child
		}
		return &Node{kind: KindObject, fields: fields}, nil
	default:
		return nil, eris.Wrapf(ErrParseFailed, "unsupported value of type %T", v)
	}
}

// Kind returns the variant tag. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsArray reports whether the node is an array.
func (n *Node) IsArray() bool { return n.Kind() == KindArray }

// Len returns the element count for arrays, zero otherwise.
func (n *Node) Len() int {
	if n == nil || n.kind != KindArray {
		return 0
	}
	return len(n.items)
}

// Index returns the i-th array element. It is the bounds-checked "try-get"
// every positional access goes through: out of range, wrong kind, or nil
// receiver all yield ok=false.
func (n *Node) Index(i int) (*Node, bool) {
	if n == nil || n.kind != KindArray || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Field returns the named object field.
func (n *Node) Field(key string) (*Node, bool) {
	if n == nil || n.kind != KindObject {
		return nil, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// Str returns the string value if the node is a string.
func (n *Node) Str() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.strV, true
}

// Num returns the numeric value if the node is a number.
func (n *Node) Num() (float64, bool) {
	if n == nil || n.kind != KindNumber {
		return 0, false
	}
	return n.numV, true
}

// Bool returns the boolean value if the node is a bool.
func (n *Node) Bool() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.boolV, true
}
