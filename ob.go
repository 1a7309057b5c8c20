package ob

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/on-the-ground/ob/internal/reflectx"
)

// Ob is the root marker of every ancestor chain. Embed it, by value, in
// the first value type of a hierarchy.
type Ob struct{}

// Value is the method set an opted-in type exposes to the outside world.
type Value interface {
	Equals(other any) bool
	Hash() int
	fmt.Stringer
}

// identity is the part of Value the engine defers to for nested values
// that are not value types themselves.
type identity interface {
	Equals(other any) bool
	Hash() int
}

// Char is a rune that formats as a quoted character.
type Char rune

// Engine derives equality, hashing and formatting from a Registry and a
// set of normalizers. It is safe for concurrent use.
type Engine struct {
	reg         *Registry
	normalizers map[reflect.Type]Normalizer
}

// New builds an engine with its own registry.
func New(opts ...Option) *Engine {
	cfg := newConfig(opts...)
	return &Engine{
		reg:         NewRegistry(opts...),
		normalizers: buildNormalizers(cfg),
	}
}

// Registry returns the type field cache owned by e.
func (e *Engine) Registry() *Registry {
	return e.reg
}

var defaultEngine = New()

// Default returns the engine behind the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Equal reports whether a and b are the same value type with equal state.
func Equal(a, b any) bool { return defaultEngine.Equal(a, b) }

// Hash returns a hash of a's state consistent with Equal.
func Hash(a any) int { return defaultEngine.Hash(a) }

// Format renders a as TypeName[field=value, ...].
func Format(a any) string { return defaultEngine.Format(a) }

// EqualValues compares two arbitrary values with the field comparison rules.
func EqualValues(x, y any) bool { return defaultEngine.EqualValues(x, y) }

// HashValue hashes an arbitrary value consistently with EqualValues.
func HashValue(v any) int { return defaultEngine.HashValue(v) }

// FormatValue renders an arbitrary value with the field formatting rules.
func FormatValue(v any) string { return defaultEngine.FormatValue(v) }

// Normalize returns the canonical form of v used for comparison and hashing.
func Normalize(v any) any { return defaultEngine.Normalize(v) }

// NumericEquals compares two normalized values by their canonical form.
func NumericEquals(a, b any) bool { return defaultEngine.NumericEquals(a, b) }

// root resolves the receiver of a top-level operation to a struct value
// and its chain. ok is false for nil.
func (e *Engine) root(a any) (v reflect.Value, chain []Level, ok bool) {
	v = reflect.ValueOf(a)
	if reflectx.IsNil(v) {
		return v, nil, false
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v, e.reg.ChainOf(v.Type()), true
}

// fieldValue reads field f of owner, which must be addressable.
func fieldValue(owner reflect.Value, f Field) reflect.Value {
	v, ok := reflectx.Expose(owner.Field(f.Index))
	if !ok {
		panic(errors.Wrapf(ErrInaccessibleField, "%s.%s", owner.Type(), owner.Type().Field(f.Index).Name))
	}
	return v
}

func asIdentity(v reflect.Value) (identity, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	id, ok := v.Interface().(identity)
	return id, ok
}
