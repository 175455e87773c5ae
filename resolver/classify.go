package resolver

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-set/v3"

	"github.com/harens/beartype/hint"
)

// Classification is the four-valued outcome of classifying a raw hint.
type Classification uint8

const (
	// PepSupported: a compliant family member with check generation.
	PepSupported Classification = iota
	// PepUnsupported: a recognized compliant family member whose shape has
	// no check generation yet.
	PepUnsupported
	// NonPepSupported: a fallback form (class, class name, tuple union).
	NonPepSupported
	// NonPepUnsupported: neither a compliant family member nor a valid
	// fallback form.
	NonPepUnsupported
)

// Supported reports whether the classification admits check generation.
func (c Classification) Supported() bool {
	return c == PepSupported || c == NonPepSupported
}

func (c Classification) String() string {
	switch c {
	case PepSupported:
		return "PepCompliant-Supported"
	case PepUnsupported:
		return "PepCompliant-Unsupported"
	case NonPepSupported:
		return "NonCompliant-Supported"
	case NonPepUnsupported:
		return "NonCompliant-Unsupported"
	}
	return "Unknown"
}

// supportedSigns are the structured-hint categories check generation
// implements. SignLiteral and SignTypeVar are recognized but absent here.
var supportedSigns = set.From([]hint.Sign{
	hint.SignUnion,
	hint.SignAnnotated,
	hint.SignContainer,
	hint.SignAny,
	hint.SignNone,
})

// IsHint reports whether raw is a supported type hint: either a structured
// hint whose sign has check generation, or a fallback form (a class, a
// class-name string when allowString, or a tuple union of those).
//
// The verdict is memoized for the process lifetime, keyed on the hint's
// representation plus the allowString flag. Unhashable values fail with
// KindHashability before any verdict.
func (r *Resolver) IsHint(raw any, allowString bool) (bool, error) {
	rep, err := hint.ReprOf(raw)
	if err != nil {
		return false, wrapError(KindHashability, "HINT-HSH-001",
			fmt.Sprintf("type hint %T unhashable", raw), err)
	}
	key := rep + "\x00" + strconv.FormatBool(allowString)
	return r.isHint.GetOrCompute(key, func() bool {
		return isHintUncached(raw, allowString)
	}), nil
}

func isHintUncached(raw any, allowString bool) bool {
	switch v := raw.(type) {
	case nil:
		// The host spells the none hint as a bare nil annotation.
		return true
	case *hint.Hint:
		if v == nil {
			// A typed nil spells the none hint, same as a bare nil.
			return true
		}
		return supportedSigns.Contains(v.Sign())
	case hint.Class:
		return true
	case string:
		return allowString
	case hint.Tuple:
		for i := 0; i < v.Len(); i++ {
			if !isTupleMember(v.At(i), allowString) {
				return false
			}
		}
		return true
	}
	return false
}

// isTupleMember reports whether m is admissible inside a tuple union:
// classes always, class-name strings only when allowString.
func isTupleMember(m any, allowString bool) bool {
	switch m.(type) {
	case hint.Class:
		return true
	case string:
		return allowString
	}
	return false
}

// Classify produces the tagged classification outcome for raw, with a
// human-readable detail for unsupported results.
func (r *Resolver) Classify(raw any, allowString bool) (Classification, string, error) {
	rep, err := hint.ReprOf(raw)
	if err != nil {
		return NonPepUnsupported, "", wrapError(KindHashability, "HINT-HSH-001",
			fmt.Sprintf("type hint %T unhashable", raw), err)
	}
	switch v := raw.(type) {
	case nil:
		return PepSupported, "", nil
	case *hint.Hint:
		if v == nil {
			return PepSupported, "", nil
		}
		if supportedSigns.Contains(v.Sign()) {
			return PepSupported, "", nil
		}
		return PepUnsupported, fmt.Sprintf("%s hint %s not yet supported", v.Sign(), rep), nil
	case hint.Class:
		return NonPepSupported, "", nil
	case string:
		if allowString {
			return NonPepSupported, "", nil
		}
		return NonPepUnsupported, fmt.Sprintf("forward reference %s not permitted here", rep), nil
	case hint.Tuple:
		for i := 0; i < v.Len(); i++ {
			if !isTupleMember(v.At(i), allowString) {
				mrep, _ := hint.ReprOf(v.At(i))
				return NonPepUnsupported,
					fmt.Sprintf("tuple union member %s not a class or class name", mrep), nil
			}
		}
		return NonPepSupported, "", nil
	}
	return NonPepUnsupported, fmt.Sprintf("%s not a type hint", rep), nil
}

// DieUnlessHint returns nil when raw is a supported type hint and a
// structured error naming the failed sub-rule otherwise. Unlike IsHint it is
// not memoized: the caller-supplied label varies per call site, so the fast
// (valid) path delegates to the memoized IsHint and only the failing path
// re-derives the precise diagnostic.
func (r *Resolver) DieUnlessHint(raw any, label string, allowString bool) error {
	ok, err := r.IsHint(raw, allowString)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	rep, _ := hint.ReprOf(raw)
	switch v := raw.(type) {
	case *hint.Hint:
		if v == nil {
			break
		}
		return newError(KindUnsupportedPep, "HINT-CLS-002",
			fmt.Sprintf("%s %s hint %s currently unsupported", label, v.Sign(), rep))
	case string:
		return newError(KindUnsupported, "HINT-CLS-004",
			fmt.Sprintf("%s forward reference %s not permitted here", label, rep))
	case hint.Tuple:
		for i := 0; i < v.Len(); i++ {
			if !isTupleMember(v.At(i), allowString) {
				mrep, _ := hint.ReprOf(v.At(i))
				return newError(KindUnsupported, "HINT-CLS-003",
					fmt.Sprintf("%s tuple union member %s not a class or class name", label, mrep))
			}
		}
	}
	return newError(KindUnsupported, "HINT-CLS-001",
		fmt.Sprintf("%s %s neither a class, class name, tuple union, nor supported type hint", label, rep))
}
