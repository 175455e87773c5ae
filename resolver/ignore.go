package resolver

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"github.com/harens/beartype/hint"
)

// shallowIgnorable holds the representations of the finite set of hints
// that are ignorable by definition: the top hint and its equivalents, which
// are so wide as to constrain nothing observable.
var shallowIgnorable = set.From([]string{
	hint.Any().Repr(),
	hint.Object.Repr(),
})

// IsIgnorable reports whether raw constrains nothing observable, so the
// code generator may skip emitting a check for it entirely. Memoized for
// the process lifetime; total over supported hints.
//
// Deep rules:
//   - A union is ignorable iff ANY child is recursively ignorable: a union
//     is only as narrow as its widest branch, and one maximally-wide branch
//     makes the whole union convey no constraint.
//   - An annotated hint is ignorable iff its underlying hint is; auxiliary
//     metadata never affects ignorability.
//
// Every other form is not ignorable.
func (r *Resolver) IsIgnorable(raw any) (bool, error) {
	rep, err := hint.ReprOf(raw)
	if err != nil {
		return false, wrapError(KindHashability, "HINT-HSH-001",
			fmt.Sprintf("type hint %T unhashable", raw), err)
	}
	return r.ignorable.GetOrCompute(rep, func() bool {
		return r.isIgnorableUncached(raw, rep)
	}), nil
}

func (r *Resolver) isIgnorableUncached(raw any, rep string) bool {
	if shallowIgnorable.Contains(rep) {
		return true
	}
	h, ok := raw.(*hint.Hint)
	if !ok || h == nil {
		return false
	}
	switch h.Sign() {
	case hint.SignUnion:
		for _, child := range h.Children() {
			// Child representations were derived when the parent's was, so
			// the recursive call cannot fail on hashability here.
			if ignorable, _ := r.IsIgnorable(child); ignorable {
				return true
			}
		}
	case hint.SignAnnotated:
		ignorable, _ := r.IsIgnorable(h.Wrapped())
		return ignorable
	}
	return false
}
