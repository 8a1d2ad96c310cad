package monkey

import (
	"strconv"
	"strings"
)

// ValueType names the kind of a runtime value. The names show up in runtime
// error messages.
type ValueType string

const (
	INTEGER_VALUE  ValueType = "INTEGER"
	BOOLEAN_VALUE  ValueType = "BOOLEAN"
	STRING_VALUE   ValueType = "STRING"
	NULL_VALUE     ValueType = "NULL"
	RETURN_VALUE   ValueType = "RETURN_VALUE"
	FUNCTION_VALUE ValueType = "FUNCTION"
	ERROR_VALUE    ValueType = "ERROR"
	ARRAY_VALUE    ValueType = "ARRAY"
	HASH_VALUE     ValueType = "HASH"
)

// Value is the result of evaluating a node.
type Value interface {
	Type() ValueType
	// Inspect returns the display form of the value.
	Inspect() string
}

var (
	NULL_OBJ  = &Null{}
	TRUE_OBJ  = &Boolean{true}
	FALSE_OBJ = &Boolean{false}
)

type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return INTEGER_VALUE }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VALUE }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VALUE }
func (s *String) Inspect() string { return s.Value }

type Null struct{}

func (n *Null) Type() ValueType { return NULL_VALUE }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the operand of a return statement while it unwinds
// through blocks. It is unwrapped at the function call boundary and never
// leaves Evaluate.
type ReturnValue struct {
	Value Value
}

func (rv *ReturnValue) Type() ValueType { return RETURN_VALUE }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Function is a function literal closed over the environment it was
// evaluated in.
type Function struct {
	Params []string
	Body   []Stmt
	Env    *Environment
}

func (fn *Function) Type() ValueType { return FUNCTION_VALUE }
func (fn *Function) Inspect() string { return printFunction(fn.Params, fn.Body) }

type Array struct {
	Elements []Value
}

func (arr *Array) Type() ValueType { return ARRAY_VALUE }

func (arr *Array) Inspect() string {
	elements := make([]string, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		elements = append(elements, inspectElement(el))
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// HashKey identifies a hashable value. Values of different types never share
// a key.
type HashKey struct {
	Type  ValueType
	Value string
}

// Hashable is implemented by the values that can be used as hash keys.
type Hashable interface {
	Value
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey { return HashKey{i.Type(), i.Inspect()} }
func (b *Boolean) HashKey() HashKey { return HashKey{b.Type(), b.Inspect()} }
func (s *String) HashKey() HashKey  { return HashKey{s.Type(), s.Value} }

// HashEntry keeps the original key next to its value.
type HashEntry struct {
	Key   Value
	Value Value
}

// Hash maps hashable keys to values and remembers the order in which keys
// were first inserted.
type Hash struct {
	Entries map[HashKey]HashEntry
	Keys    []HashKey
}

func newHash() *Hash {
	return &Hash{Entries: make(map[HashKey]HashEntry)}
}

// Set inserts or overwrites the entry for key. An overwritten key keeps its
// original position.
func (h *Hash) Set(key Hashable, value Value) {
	hk := key.HashKey()
	if _, ok := h.Entries[hk]; !ok {
		h.Keys = append(h.Keys, hk)
	}
	h.Entries[hk] = HashEntry{key, value}
}

// Get returns the value stored under key.
func (h *Hash) Get(key Hashable) (Value, bool) {
	entry, ok := h.Entries[key.HashKey()]
	return entry.Value, ok
}

func (h *Hash) Type() ValueType { return HASH_VALUE }

func (h *Hash) Inspect() string {
	pairs := make([]string, 0, len(h.Keys))
	for _, hk := range h.Keys {
		entry := h.Entries[hk]
		pairs = append(pairs, inspectElement(entry.Key)+": "+inspectElement(entry.Value))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// inspectElement quotes strings nested in arrays and hashes so that `["a"]`
// and `[a]` display differently.
func inspectElement(v Value) string {
	if s, ok := v.(*String); ok {
		return quote(s.Value)
	}
	return v.Inspect()
}

func nativeBoolToBoolean(b bool) *Boolean {
	if b {
		return TRUE_OBJ
	}
	return FALSE_OBJ
}

// isTruthy reports how a value behaves as a condition: null is false,
// booleans are themselves and everything else is true.
func isTruthy(value Value) bool {
	switch v := value.(type) {
	case *Null:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}
