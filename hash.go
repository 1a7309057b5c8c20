package ob

import (
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/on-the-ground/ob/internal/reflectx"
)

// Hash combines per-level hashes of a's state, walking the chain in the
// same order as Equal. Equal values always share a hash. A nil a hashes to 0.
func (e *Engine) Hash(a any) int {
	x, chain, ok := e.root(a)
	if !ok {
		return 0
	}
	return e.hashLevels(chain, x)
}

// HashValue hashes an arbitrary value consistently with EqualValues.
func (e *Engine) HashValue(v any) int {
	return e.hashValue(reflect.ValueOf(v))
}

func (e *Engine) hashLevels(chain []Level, x reflect.Value) int {
	x = reflectx.Addressable(x)
	hash := 1
	for _, lvl := range chain {
		owner := x.FieldByIndex(lvl.Path)
		h := 1
		for _, f := range lvl.Fields {
			h = 31*h + e.hashValue(fieldValue(owner, f))
		}
		hash = 31*hash + h
	}
	return hash
}

func (e *Engine) hashFields(x reflect.Value) int {
	x = reflectx.Addressable(x)
	h := 1
	for _, f := range e.reg.FieldsOf(x.Type()) {
		h = 31*h + e.hashValue(fieldValue(x, f))
	}
	return h
}

func (e *Engine) hashValue(v reflect.Value) int {
	if reflectx.IsNil(v) {
		return 0
	}
	if c, ok := e.canonical(v); ok {
		return hashString(c)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return e.hashValue(v.Elem())
	case reflect.Struct:
		if e.reg.IsValueType(v.Type()) {
			return e.hashLevels(e.reg.ChainOf(v.Type()), v)
		}
	}

	if id, ok := asIdentity(v); ok {
		return id.Hash()
	}

	switch v.Kind() {
	case reflect.Struct:
		return e.hashFields(v)
	case reflect.Slice, reflect.Array:
		h := 1
		for i := 0; i < v.Len(); i++ {
			h = 31*h + e.hashValue(v.Index(i))
		}
		return h
	case reflect.Map:
		// Entry hashes are summed so iteration order does not matter.
		h := 0
		iter := v.MapRange()
		for iter.Next() {
			h += e.hashValue(iter.Key()) ^ e.hashValue(iter.Value())
		}
		return h
	case reflect.String:
		return hashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return 31*hashFloat(real(c)) + hashFloat(imag(c))
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return int(v.Pointer())
	}
	return 0
}

func hashString(s string) int {
	return int(xxhash.Sum64String(s))
}

// hashFloat folds -0 onto 0 and every NaN onto one value, matching floatEqual.
func hashFloat(f float64) int {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		f = math.NaN()
	}
	bits := math.Float64bits(f)
	return int(bits ^ bits>>32)
}
