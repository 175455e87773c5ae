package decor

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Environment carries the process-wide state the unbeartypeable tester
// depends on. It is threaded in explicitly by the caller rather than read
// from hidden globals, keeping IsUnbeartypeable a pure predicate.
type Environment struct {
	// DocgenActive reports that an auto-documentation tool is driving the
	// process. Documentation tools commonly substitute placeholder objects
	// for real annotation targets, so instrumentation is suppressed
	// process-wide while one runs.
	DocgenActive bool `env:"BEARTYPE_DOCGEN_ACTIVE,default=false"`
}

// EnvironmentFromProcess decodes the Environment from BEARTYPE_* variables.
func EnvironmentFromProcess() (Environment, error) {
	var env Environment
	if err := envdecode.Decode(&env); err != nil {
		return Environment{}, fmt.Errorf("decor: decode environment: %w", err)
	}
	return env, nil
}

// IsUnbeartypeable reports whether fn should be exempted from
// instrumentation entirely: unannotated callables have nothing to check,
// opted-out callables asked not to be, already-instrumented callables make
// re-instrumentation a no-op, and documentation runs suppress everything.
//
// Callers must consult this before invoking resolution at all, so exempt
// callables short-circuit without touching the cache.
func IsUnbeartypeable(fn *Func, env Environment) bool {
	return !fn.Annotated() ||
		fn.NoTypeCheck() ||
		IsBeartyped(fn) ||
		env.DocgenActive
}

// IsBeartyped reports whether fn was already instrumented by a previous
// pass.
func IsBeartyped(fn *Func) bool {
	return fn.beartyped
}

// SetBeartyped stamps the instrumented marker on fn. Idempotent: the
// marker transitions unmarked to marked exactly once and is irreversible
// for the life of the object.
func SetBeartyped(fn *Func) {
	fn.beartyped = true
}
