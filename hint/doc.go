// Package hint defines the type-hint model shared by the resolution core.
//
// A raw hint is any value the host's annotation machinery may attach to a
// callable slot: a structured *Hint, a Class reference, a forward-reference
// string, or a Tuple of classes (the noncompliant "tuple union" form).
// Structured hints carry a stable machine-readable representation; two hints
// with equal representations are semantically interchangeable and safely
// substitutable for checking purposes.
package hint
