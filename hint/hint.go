package hint

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnhashable reports a raw value for which no stable representation can
// be derived (mutable collections, maps, funcs, or tuples containing such).
// Such values cannot participate in hash-based memoization and are rejected
// before any classification verdict.
var ErrUnhashable = errors.New("hint: no stable representation")

// ErrMember reports an invalid member inside a compound hint constructor.
var ErrMember = errors.New("hint: invalid compound hint member")

// Class is a plain host-language class reference. Class values are
// comparable and self-caching by construction: equal values are always
// interchangeable, so they never pass through the identity cache.
type Class struct {
	Module string
	Name   string
}

// Object is the root class of the host's type lattice. A hint of Object
// constrains nothing observable.
var Object = Class{Module: "builtins", Name: "object"}

// Repr returns the fully-qualified class name.
func (c Class) Repr() string {
	if c.Module == "" {
		return c.Name
	}
	return c.Module + "." + c.Name
}

// Tuple is an immutable fixed-size ordered collection of raw hint members:
// the noncompliant "tuple union" form. Members are fixed at construction.
type Tuple struct {
	members []any
}

// NewTuple copies members into an immutable Tuple.
func NewTuple(members ...any) Tuple {
	ms := make([]any, len(members))
	copy(ms, members)
	return Tuple{members: ms}
}

func (t Tuple) Len() int { return len(t.members) }

func (t Tuple) At(i int) any { return t.members[i] }

// Members returns a copy of the member slice.
func (t Tuple) Members() []any {
	ms := make([]any, len(t.members))
	copy(ms, t.members)
	return ms
}

// Hint is a structured, canonical-form hint. Hints are immutable after
// construction; their representation is computed once and reused as the
// deduplication signature.
//
// Compound hints built by the exported constructors are not self-caching:
// two structurally equal constructions are distinct instances until the
// identity cache deduplicates them. The Any and None singletons are
// self-caching.
type Hint struct {
	sign     Sign
	origin   Class  // SignContainer
	name     string // SignTypeVar
	children []any  // SignUnion, SignContainer, SignLiteral
	wrapped  any    // SignAnnotated
	metadata []any  // SignAnnotated

	repr string
}

var (
	anyHint  = &Hint{sign: SignAny, repr: "Any"}
	noneHint = &Hint{sign: SignNone, repr: "None"}
)

// Any returns the singleton top hint.
func Any() *Hint { return anyHint }

// None returns the singleton none hint.
func None() *Hint { return noneHint }

func (h *Hint) Sign() Sign { return h.sign }

// Repr returns the hint's stable machine-readable representation. Equal
// representations imply the hints are safely substitutable.
func (h *Hint) Repr() string { return h.repr }

// SelfCaching reports whether structurally equal instances of this hint are
// guaranteed identical without identity-cache intervention. Only the Any and
// None singletons qualify; every compound constructor mints fresh instances.
func (h *Hint) SelfCaching() bool {
	return h == anyHint || h == noneHint
}

// Children returns a copy of the member hints of a union, container, or
// literal hint, in subscription order.
func (h *Hint) Children() []any {
	cs := make([]any, len(h.children))
	copy(cs, h.children)
	return cs
}

// Origin returns the container class of a SignContainer hint.
func (h *Hint) Origin() Class { return h.origin }

// Name returns the variable name of a SignTypeVar hint.
func (h *Hint) Name() string { return h.name }

// Wrapped returns the underlying hint of a SignAnnotated hint.
func (h *Hint) Wrapped() any { return h.wrapped }

// Metadata returns a copy of the auxiliary metadata of a SignAnnotated hint.
func (h *Hint) Metadata() []any {
	ms := make([]any, len(h.metadata))
	copy(ms, h.metadata)
	return ms
}

// Union constructs a canonical disjunction over members, preserving order
// and positional duplicates. A nil member denotes the none hint. Members
// must be classes, class-name strings, or structured hints; anything else
// fails with ErrMember (or ErrUnhashable when no representation exists).
func Union(members ...any) (*Hint, error) {
	ms := make([]any, len(members))
	for i, m := range members {
		if m == nil {
			m = noneHint
		}
		if err := checkMember(m); err != nil {
			return nil, err
		}
		ms[i] = m
	}
	rep, err := reprJoin("Union[", ms, "]")
	if err != nil {
		return nil, err
	}
	return &Hint{sign: SignUnion, children: ms, repr: rep}, nil
}

// Annotated wraps an underlying hint with auxiliary non-type metadata. The
// metadata never affects checking semantics but participates in the
// representation, so differently annotated hints stay distinct in the cache.
func Annotated(wrapped any, metadata ...any) (*Hint, error) {
	if wrapped == nil {
		wrapped = noneHint
	}
	if err := checkMember(wrapped); err != nil {
		return nil, err
	}
	parts := make([]any, 0, len(metadata)+1)
	parts = append(parts, wrapped)
	parts = append(parts, metadata...)
	rep, err := reprJoin("Annotated[", parts, "]")
	if err != nil {
		return nil, err
	}
	ms := make([]any, len(metadata))
	copy(ms, metadata)
	return &Hint{sign: SignAnnotated, wrapped: wrapped, metadata: ms, repr: rep}, nil
}

// Container constructs a subscripted container hint over origin.
func Container(origin Class, members ...any) (*Hint, error) {
	ms := make([]any, len(members))
	for i, m := range members {
		if m == nil {
			m = noneHint
		}
		if err := checkMember(m); err != nil {
			return nil, err
		}
		ms[i] = m
	}
	rep, err := reprJoin(origin.Repr()+"[", ms, "]")
	if err != nil {
		return nil, err
	}
	return &Hint{sign: SignContainer, origin: origin, children: ms, repr: rep}, nil
}

// Literal constructs a literal-values hint. Literal is a recognized family
// member without check generation; classification reports it unsupported.
func Literal(values ...any) (*Hint, error) {
	vs := make([]any, len(values))
	copy(vs, values)
	rep, err := reprJoin("Literal[", vs, "]")
	if err != nil {
		return nil, err
	}
	return &Hint{sign: SignLiteral, children: vs, repr: rep}, nil
}

// TypeVar constructs a type-variable hint. Recognized, not yet supported.
func TypeVar(name string) *Hint {
	return &Hint{sign: SignTypeVar, name: name, repr: "TypeVar(" + name + ")"}
}

// checkMember enforces the compound-member rule: classes, class-name
// strings, and structured hints only.
func checkMember(m any) error {
	switch m.(type) {
	case *Hint, Class, string:
		return nil
	case Tuple:
		return fmt.Errorf("%w: nested tuple union", ErrMember)
	}
	if _, err := ReprOf(m); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrMember, mustRepr(m))
}

// ReprOf derives the stable machine-readable representation of an arbitrary
// raw hint value. It is total over hashable values: unsupported-but-hashable
// values still receive a representation (used in diagnostics and memo keys),
// while unhashable values fail with ErrUnhashable.
func ReprOf(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "None", nil
	case *Hint:
		if x == nil {
			return "None", nil
		}
		return x.repr, nil
	case Class:
		return x.Repr(), nil
	case string:
		return "'" + x + "'", nil
	case Tuple:
		return reprJoin("(", x.members, ")")
	}
	rt := reflect.TypeOf(v)
	if !rt.Comparable() {
		return "", fmt.Errorf("%w: %T value", ErrUnhashable, v)
	}
	return fmt.Sprintf("%T(%v)", v, v), nil
}

func reprJoin(open string, members []any, closing string) (string, error) {
	var b strings.Builder
	b.WriteString(open)
	for i, m := range members {
		if i > 0 {
			b.WriteString(", ")
		}
		rep, err := ReprOf(m)
		if err != nil {
			return "", err
		}
		b.WriteString(rep)
	}
	b.WriteString(closing)
	return b.String(), nil
}

func mustRepr(v any) string {
	rep, err := ReprOf(v)
	if err != nil {
		return fmt.Sprintf("%T", v)
	}
	return rep
}
