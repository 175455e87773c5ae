// Package claw maintains the package-name registration trie consulted by
// the import-hook layer when deciding which modules get instrumented.
//
// The trie is shared mutable state reached from arbitrary caller threads
// (concurrent first-imports of different modules), and check-then-insert
// against it is not atomic, so every read-modify-write runs under a single
// registry mutex. No host-runtime re-entrant work (such as triggering
// further imports) ever happens while the lock is held.
package claw

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/harens/beartype/conf"
)

// selfPackage is the framework's own top-level package name. Registering it
// for instrumentation is silently ignored: the framework type-checks itself
// by hand, and instrumenting the instrumenter only slows it down.
const selfPackage = "beartype"

// Registry is the trie over "."-delimited package basenames. The zero value
// is not usable; construct with NewRegistry.
type Registry struct {
	mu   sync.Mutex
	root *node
	all  *conf.Config
}

type node struct {
	conf     *conf.Config
	children map[string]*node
}

// NewRegistry constructs an empty registration trie.
func NewRegistry() *Registry {
	return &Registry{root: &node{children: make(map[string]*node)}}
}

// Register associates each named package (and, implicitly, all its
// subpackages) with cfg. Registration is idempotent for the same
// (package, cfg) pair; re-registering a package under a different
// configuration fails with a KindRegistration error, and no package in the
// call is registered when any name fails validation.
func (r *Registry) Register(cfg conf.Config, packageNames ...string) error {
	if len(packageNames) == 0 {
		return newError(KindRegistration, "CLAW-REG-001", "no package names given")
	}
	basenames := make([][]string, 0, len(packageNames))
	for _, name := range packageNames {
		parts, err := splitPackageName(name)
		if err != nil {
			return err
		}
		basenames = append(basenames, parts)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Validate every name against the trie before mutating it, so a
	// conflicting name mid-list cannot leave a partial registration behind.
	for _, parts := range basenames {
		if parts == nil {
			continue
		}
		if n := r.lookupNode(parts); n != nil && n.conf != nil && *n.conf != cfg {
			return newError(KindRegistration, "CLAW-REG-004", fmt.Sprintf(
				"package %q already registered under a conflicting configuration",
				strings.Join(parts, ".")))
		}
	}
	for _, parts := range basenames {
		if parts == nil {
			continue
		}
		n := r.root
		for _, basename := range parts {
			child, ok := n.children[basename]
			if !ok {
				child = &node{children: make(map[string]*node)}
				n.children[basename] = child
			}
			n = child
		}
		c := cfg
		n.conf = &c
	}
	return nil
}

// RegisterAll registers every package not otherwise registered with cfg.
// Re-registering all packages under a different configuration fails;
// repeating the same configuration is a no-op.
func (r *Registry) RegisterAll(cfg conf.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.all != nil && *r.all != cfg {
		return newError(KindRegistration, "CLAW-REG-004",
			"all packages already registered under a conflicting configuration")
	}
	c := cfg
	r.all = &c
	return nil
}

// ConfIfRegistered returns the configuration of the deepest registered
// ancestor of moduleName (the module itself included), the blanket
// configuration when RegisterAll was used, or nil when nothing applies.
func (r *Registry) ConfIfRegistered(moduleName string) *conf.Config {
	parts := strings.Split(moduleName, ".")

	r.mu.Lock()
	defer r.mu.Unlock()
	var deepest *conf.Config
	n := r.root
	for _, basename := range parts {
		child, ok := n.children[basename]
		if !ok {
			break
		}
		if child.conf != nil {
			deepest = child.conf
		}
		n = child
	}
	if deepest == nil {
		deepest = r.all
	}
	if deepest == nil {
		return nil
	}
	c := *deepest
	return &c
}

// Any reports whether at least one registration has been recorded.
func (r *Registry) Any() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all != nil || len(r.root.children) > 0
}

// Clear removes every registration. Intended for tests composing multiple
// registration scenarios against one registry.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = &node{children: make(map[string]*node)}
	r.all = nil
}

// lookupNode walks parts without creating nodes. Caller holds r.mu.
func (r *Registry) lookupNode(parts []string) *node {
	n := r.root
	for _, basename := range parts {
		child, ok := n.children[basename]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// splitPackageName validates a fully-qualified package name and splits it
// into basenames. The framework's own package yields (nil, nil): silently
// ignored rather than rejected.
func splitPackageName(name string) ([]string, error) {
	if name == "" {
		return nil, newError(KindRegistration, "CLAW-REG-002", "empty package name")
	}
	parts := strings.Split(name, ".")
	for _, basename := range parts {
		if !isIdentifier(basename) {
			return nil, newError(KindRegistration, "CLAW-REG-003", fmt.Sprintf(
				"package name %q invalid: %q is not an identifier", name, basename))
		}
	}
	if parts[0] == selfPackage {
		return nil, nil
	}
	return parts, nil
}

// isIdentifier reports whether s is a valid host-language identifier: a
// letter or underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
