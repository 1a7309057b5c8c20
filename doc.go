// Package ob derives equality, hashing and a readable representation for
// immutable value types from their declared state.
//
// A type opts in by embedding Ob, either directly or through another value
// type it embeds, and by forwarding the three identity methods:
//
//	type Money struct {
//	    ob.Ob
//	    amount   decimal.Decimal
//	    currency string
//	}
//
//	func (m Money) Equals(o any) bool { return ob.Equal(m, o) }
//	func (m Money) Hash() int         { return ob.Hash(m) }
//	func (m Money) String() string    { return ob.Format(m) }
//
// Each embedding step is one level of the ancestor chain. A level
// contributes its own fields in declaration order, unexported ones
// included; the embedded ancestor, blank fields and fields tagged `ob:"-"`
// are skipped. A derived type must declare the three methods again,
// otherwise Go promotes the ancestor's versions.
//
// Values whose Go representation carries more than their value, such as
// decimals with trailing zeros or times with a location, are compared and
// hashed through a Normalizer so that Equal and Hash stay consistent.
//
// The field lists and ancestor chains are discovered once per type and
// kept in a Registry for the lifetime of the Engine that owns it. The
// package-level functions share the engine returned by Default.
package ob
