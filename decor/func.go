// Package decor models the host callable as seen by the instrumentation
// layer: its annotation slots, its opt-out marker, and the instrumented
// marker stamped exactly once by a successful pass.
package decor

import (
	"fmt"

	"github.com/harens/beartype/resolver"
)

// SlotReturn is the pseudo-slot name for the return-value annotation.
const SlotReturn = "return"

// Func is a host callable's instrumentation-relevant surface: a name,
// parameter names in declaration order, and mutable annotation slots.
//
// A Func is owned by the thread importing its module; unlike the identity
// cache and the registration trie it is not shared mutable state and takes
// no lock.
type Func struct {
	name        string
	params      []string
	annotations map[string]any
	noTypeCheck bool
	beartyped   bool
}

// NewFunc constructs an unannotated callable model with the given
// parameters in declaration order.
func NewFunc(name string, params ...string) *Func {
	ps := make([]string, len(params))
	copy(ps, params)
	return &Func{
		name:        name,
		params:      ps,
		annotations: make(map[string]any),
	}
}

func (f *Func) Name() string { return f.name }

// Params returns the parameter names in declaration order.
func (f *Func) Params() []string {
	ps := make([]string, len(f.params))
	copy(ps, f.params)
	return ps
}

// Annotate attaches a raw hint to the named parameter slot or to
// SlotReturn. Unknown slots fail: the annotation source supplies only
// declared slots.
func (f *Func) Annotate(slot string, raw any) error {
	if !f.hasSlot(slot) {
		return fmt.Errorf("decor: %s() has no slot %q", f.name, slot)
	}
	f.annotations[slot] = raw
	return nil
}

// Slot returns the raw hint occupying the named slot, if annotated.
func (f *Func) Slot(name string) (any, bool) {
	v, ok := f.annotations[name]
	return v, ok
}

// SetSlot overwrites the named slot's hint. Used by the annotation-source
// write-back after resolution reports Updated.
func (f *Func) SetSlot(name string, v any) error {
	if !f.hasSlot(name) {
		return fmt.Errorf("decor: %s() has no slot %q", f.name, name)
	}
	f.annotations[name] = v
	return nil
}

// Annotated reports whether any slot carries an annotation.
func (f *Func) Annotated() bool { return len(f.annotations) > 0 }

func (f *Func) hasSlot(name string) bool {
	if name == SlotReturn {
		return true
	}
	for _, p := range f.params {
		if p == name {
			return true
		}
	}
	return false
}

// SetNoTypeCheck marks the callable as explicitly opted out of type
// checking, the host's standard skip convention.
func (f *Func) SetNoTypeCheck() { f.noTypeCheck = true }

// NoTypeCheck reports the opt-out marker.
func (f *Func) NoTypeCheck() bool { return f.noTypeCheck }

// ResolveAnnotations resolves every annotated slot of fn in declaration
// order (parameters first, then the return pseudo-slot), writing canonical
// hints back into the slots.
//
// There is no partial-success state for a callable: the first failing slot
// aborts with that slot's error, and instrumentation of fn must not
// proceed. Errors are never downgraded here; any skip-on-failure policy
// belongs to the caller.
func ResolveAnnotations(fn *Func, r *resolver.Resolver) error {
	for _, slot := range append(fn.Params(), SlotReturn) {
		if _, ok := fn.Slot(slot); !ok {
			continue
		}
		if _, err := ResolveSlot(fn, r, slot); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSlot resolves one annotated slot and applies the write-back when
// resolution reports an update. Returns the canonical hint now occupying
// the slot.
func ResolveSlot(fn *Func, r *resolver.Resolver, slot string) (any, error) {
	raw, ok := fn.Slot(slot)
	if !ok {
		return nil, fmt.Errorf("decor: %s() slot %q not annotated", fn.name, slot)
	}
	res, err := r.Resolve(raw, slotLabel(fn, slot))
	if err != nil {
		return nil, err
	}
	if res.Updated {
		if err := fn.SetSlot(slot, res.Hint); err != nil {
			return nil, err
		}
	}
	return res.Hint, nil
}

// slotLabel builds the human-readable diagnostic prefix for one slot.
func slotLabel(fn *Func, slot string) string {
	if slot == SlotReturn {
		return fmt.Sprintf("@beartyped %s() return", fn.name)
	}
	return fmt.Sprintf("@beartyped %s() parameter %q", fn.name, slot)
}
