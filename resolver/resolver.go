// Package resolver implements the hint resolution core: classification of
// raw hints, coercion of noncanonical forms into canonical compound hints,
// and signature-keyed deduplication against the process-lifetime identity
// cache.
//
// Coercion normalizes shape; the cache enforces identity. The two steps are
// composed here but remain independently callable, and neither mutates
// caller-owned state: Resolve reports the canonical hint together with an
// explicit Updated record, and the annotation source writes it back.
package resolver

import (
	"errors"
	"fmt"

	"github.com/harens/beartype/hint"
	"github.com/harens/beartype/hintcache"
)

// Resolver owns the identity cache and the predicate memo tables. A single
// Resolver is intended to live for the process lifetime; all methods are
// safe for concurrent use.
type Resolver struct {
	cache     *hintcache.Cache
	isHint    *hintcache.Memo[bool]
	ignorable *hintcache.Memo[bool]
}

// New constructs a Resolver with an empty identity cache.
func New() *Resolver {
	return &Resolver{
		cache:     hintcache.New(),
		isHint:    hintcache.NewMemo[bool](),
		ignorable: hintcache.NewMemo[bool](),
	}
}

// Cache exposes the identity cache for callers composing dedup manually.
func (r *Resolver) Cache() *hintcache.Cache { return r.cache }

// Resolution is the outcome of resolving one raw hint.
//
// Updated reports that Hint differs from the raw input (the noncanonical
// form was coerced, the instance was replaced by a cached canonical one, or
// both) and the owning annotation slot must be overwritten with Hint so
// downstream consumers never see the noncanonical form again.
type Resolution struct {
	Hint    any
	Updated bool
}

// Resolve classifies, coerces, and deduplicates one raw hint.
//
// Steps, in order:
//  1. Tuple-union coercion: a hint.Tuple is rewritten into the canonical
//     union subscripted by the same members in order, positional duplicates
//     preserved.
//  2. Validation: DieUnlessHint on the (possibly rewritten) hint; failures
//     propagate unchanged.
//  3. Dedup: non-self-caching structured hints are deduplicated through the
//     identity cache by signature. First sight populates the cache; a prior
//     equal signature yields the shared canonical instance.
//
// Resolve is idempotent: resolving an already-canonical, already-cached
// hint returns the identical instance with Updated false.
func (r *Resolver) Resolve(raw any, label string) (Resolution, error) {
	res := Resolution{Hint: raw}

	// A nil annotation, bare or typed, is the host's spelling of the none
	// hint.
	if h, ok := raw.(*hint.Hint); raw == nil || (ok && h == nil) {
		res.Hint = hint.None()
		res.Updated = true
	}

	if t, ok := raw.(hint.Tuple); ok {
		u, err := hint.Union(t.Members()...)
		if err != nil {
			return Resolution{}, coerceError(label, t, err)
		}
		res.Hint = u
		res.Updated = true
	}

	if err := r.DieUnlessHint(res.Hint, label, true); err != nil {
		return Resolution{}, err
	}

	if h, ok := res.Hint.(*hint.Hint); ok && !h.SelfCaching() {
		canonical := r.cache.GetOrInsert(h.Repr(), func() any { return h }).(*hint.Hint)
		if canonical != h {
			res.Hint = canonical
			res.Updated = true
		}
	}
	return res, nil
}

// coerceError maps a union-construction failure onto the error taxonomy:
// unhashable members are hashability failures, anything else is an invalid
// tuple union.
func coerceError(label string, t hint.Tuple, err error) error {
	if errors.Is(err, hint.ErrUnhashable) {
		return wrapError(KindHashability, "HINT-HSH-001",
			fmt.Sprintf("%s tuple union member unhashable", label), err)
	}
	rep, _ := hint.ReprOf(t)
	return wrapError(KindUnsupported, "HINT-CLS-003",
		fmt.Sprintf("%s tuple union %s invalid", label, rep), err)
}
