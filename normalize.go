package ob

import (
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/govalues/decimal"

	"github.com/on-the-ground/ob/internal/reflectx"
)

// Normalizer maps values of one type to a canonical text so that values
// which differ only in representation compare and hash alike.
type Normalizer struct {
	Type      reflect.Type
	Canonical func(v any) string
}

// NormalizerFor builds a Normalizer for T.
func NormalizerFor[T any](canonical func(T) string) Normalizer {
	return Normalizer{
		Type: reflect.TypeFor[T](),
		Canonical: func(v any) string {
			return canonical(v.(T))
		},
	}
}

// DefaultNormalizers covers decimals, math/big numbers and time.Time.
func DefaultNormalizers() []Normalizer {
	return []Normalizer{
		NormalizerFor(canonicalDecimal),
		NormalizerFor(func(i *big.Int) string { return i.String() }),
		NormalizerFor(func(r *big.Rat) string { return r.RatString() }),
		NormalizerFor(canonicalBigFloat),
		NormalizerFor(func(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }),
	}
}

// canonicalDecimal drops trailing zeros: 5, 5.0 and 5.00 share "5".
func canonicalDecimal(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	return d.Trim(0).String()
}

// canonicalBigFloat uses the exact rational value, so precision and
// rounding mode never matter.
func canonicalBigFloat(f *big.Float) string {
	if f.IsInf() {
		if f.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	}
	r, _ := f.Rat(nil)
	return r.RatString()
}

func buildNormalizers(cfg config) map[reflect.Type]Normalizer {
	normalizers := make(map[reflect.Type]Normalizer)
	var all []Normalizer
	if !cfg.skipDefaults {
		all = append(all, DefaultNormalizers()...)
	}
	all = append(all, cfg.normalizers...)
	for _, n := range all {
		if n.Type == nil || n.Canonical == nil {
			panic(errors.Wrapf(ErrInvalidNormalizer, "%+v", n))
		}
		normalizers[n.Type] = n
	}
	return normalizers
}

// canonical returns the canonical text of v when its type has a normalizer.
// v must be non-nil and readable.
func (e *Engine) canonical(v reflect.Value) (string, bool) {
	n, ok := e.normalizers[v.Type()]
	if !ok {
		return "", false
	}
	return n.Canonical(v.Interface()), true
}

// Normalize returns the canonical text of v when its type has a normalizer,
// and v itself otherwise.
func (e *Engine) Normalize(v any) any {
	rv := reflect.ValueOf(v)
	if reflectx.IsNil(rv) {
		return v
	}
	if c, ok := e.canonical(rv); ok {
		return c
	}
	return v
}

// NumericEquals reports whether a and b are of the same normalized type and
// share a canonical form. Unnormalized or mismatched types are never equal.
func (e *Engine) NumericEquals(a, b any) bool {
	x, y := reflect.ValueOf(a), reflect.ValueOf(b)
	if reflectx.IsNil(x) || reflectx.IsNil(y) || x.Type() != y.Type() {
		return false
	}
	cx, ok := e.canonical(x)
	if !ok {
		return false
	}
	cy, _ := e.canonical(y)
	return cx == cy
}
