// Package purefn memoizes pure functions by their input values.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Arguments are matched by value, not by identity: lookups hash each
// argument with ob.HashValue and confirm candidates with ob.EqualValues.
// Slices, maps, nil pointers and ob value types are all valid arguments,
// and decimals that differ only in trailing zeros hit the same entry.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: typed, generic memoizers for common arities.
//   - Trie-based bounded cache with dual-generation rotation.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc),
// and do not mutate arguments after passing them in.
package purefn
