package hint

// Sign discriminates the category of a raw hint value.
//
// The enumeration is closed: SignOf is total over every raw form the
// resolution core accepts, and callers dispatch on Sign rather than on
// dynamic type inspection scattered across the codebase.
type Sign uint8

const (
	// SignClass identifies a plain class reference (a Class value).
	SignClass Sign = iota
	// SignForwardRef identifies a fully-qualified class-name string.
	SignForwardRef
	// SignTupleUnion identifies the noncompliant tuple-union raw form (a
	// Tuple value). Coercion rewrites this into SignUnion.
	SignTupleUnion
	// SignUnion identifies a canonical disjunction of member hints.
	SignUnion
	// SignAnnotated identifies a hint wrapping an underlying hint together
	// with auxiliary non-type metadata.
	SignAnnotated
	// SignContainer identifies a subscripted container hint (e.g. a list of
	// ints), whose origin is a Class and whose children are member hints.
	SignContainer
	// SignLiteral identifies a literal-values hint. Recognized but not yet
	// supported by check generation.
	SignLiteral
	// SignTypeVar identifies a type variable. Recognized but not yet
	// supported by check generation.
	SignTypeVar
	// SignAny identifies the "anything goes" top hint.
	SignAny
	// SignNone identifies the none/unit hint.
	SignNone
)

func (s Sign) String() string {
	switch s {
	case SignClass:
		return "Class"
	case SignForwardRef:
		return "ForwardRef"
	case SignTupleUnion:
		return "TupleUnion"
	case SignUnion:
		return "Union"
	case SignAnnotated:
		return "Annotated"
	case SignContainer:
		return "Container"
	case SignLiteral:
		return "Literal"
	case SignTypeVar:
		return "TypeVar"
	case SignAny:
		return "Any"
	case SignNone:
		return "None"
	}
	return "Unknown"
}

// SignOf reports the Sign of an arbitrary raw hint value. The second return
// is false when the value is not any recognized raw form at all (which is a
// classification failure, not a hashability failure).
func SignOf(raw any) (Sign, bool) {
	switch v := raw.(type) {
	case *Hint:
		if v == nil {
			return SignNone, true
		}
		return v.sign, true
	case Class:
		return SignClass, true
	case string:
		return SignForwardRef, true
	case Tuple:
		return SignTupleUnion, true
	case nil:
		return SignNone, true
	}
	return 0, false
}
