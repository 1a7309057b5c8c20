package ob

import (
	"math"
	"reflect"

	"github.com/on-the-ground/ob/internal/reflectx"
)

// Equal reports whether a and b are equal value types.
//
// b may be anything: nil and values of another type are simply unequal.
// Type compatibility is exact, so a derived type never equals its ancestor
// and the relation stays symmetric. Equal panics with ErrNotValueType when
// a is not a value type.
func (e *Engine) Equal(a, b any) bool {
	if reflectx.IsNil(reflect.ValueOf(b)) {
		return false
	}
	x, chain, ok := e.root(a)
	if !ok {
		return false
	}
	y := reflect.ValueOf(b)
	if y.Kind() == reflect.Pointer {
		y = y.Elem()
	}
	if x.Type() != y.Type() {
		return false
	}
	return e.equalLevels(chain, x, y)
}

// EqualValues compares two arbitrary values with the rules applied to fields.
func (e *Engine) EqualValues(x, y any) bool {
	return e.equalValue(reflect.ValueOf(x), reflect.ValueOf(y))
}

func (e *Engine) equalLevels(chain []Level, x, y reflect.Value) bool {
	x, y = reflectx.Addressable(x), reflectx.Addressable(y)
	for _, lvl := range chain {
		xl, yl := x.FieldByIndex(lvl.Path), y.FieldByIndex(lvl.Path)
		for _, f := range lvl.Fields {
			if !e.equalValue(fieldValue(xl, f), fieldValue(yl, f)) {
				return false
			}
		}
	}
	return true
}

func (e *Engine) equalFields(x, y reflect.Value) bool {
	x, y = reflectx.Addressable(x), reflectx.Addressable(y)
	for _, f := range e.reg.FieldsOf(x.Type()) {
		if !e.equalValue(fieldValue(x, f), fieldValue(y, f)) {
			return false
		}
	}
	return true
}

// equalValue must check cases in the same order as hashValue.
func (e *Engine) equalValue(x, y reflect.Value) bool {
	xNil, yNil := reflectx.IsNil(x), reflectx.IsNil(y)
	if xNil || yNil {
		return xNil && yNil
	}
	if x.Type() != y.Type() {
		return false
	}
	if cx, ok := e.canonical(x); ok {
		cy, _ := e.canonical(y)
		return cx == cy
	}

	switch x.Kind() {
	case reflect.Pointer:
		if x.Pointer() == y.Pointer() {
			return true
		}
		return e.equalValue(x.Elem(), y.Elem())
	case reflect.Interface:
		return e.equalValue(x.Elem(), y.Elem())
	case reflect.Struct:
		if e.reg.IsValueType(x.Type()) {
			return e.equalLevels(e.reg.ChainOf(x.Type()), x, y)
		}
	}

	if id, ok := asIdentity(x); ok {
		return id.Equals(y.Interface())
	}

	switch x.Kind() {
	case reflect.Struct:
		return e.equalFields(x, y)
	case reflect.Slice, reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !e.equalValue(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		return e.equalMaps(x, y)
	case reflect.Func:
		return x.Pointer() == y.Pointer()
	case reflect.Float32, reflect.Float64:
		return floatEqual(x.Float(), y.Float())
	case reflect.Complex64, reflect.Complex128:
		cx, cy := x.Complex(), y.Complex()
		return floatEqual(real(cx), real(cy)) && floatEqual(imag(cx), imag(cy))
	}
	return x.Equal(y)
}

type mapEntry struct {
	key, value reflect.Value
}

// equalMaps looks keys up with Go map semantics. Keys that cannot find
// themselves, such as NaN, are paired by value among the leftovers.
func (e *Engine) equalMaps(x, y reflect.Value) bool {
	if x.Len() != y.Len() {
		return false
	}
	xLost := lostEntries(x)
	iter := x.MapRange()
	for iter.Next() {
		if !x.MapIndex(iter.Key()).IsValid() {
			continue
		}
		yv := y.MapIndex(iter.Key())
		if !yv.IsValid() || !e.equalValue(iter.Value(), yv) {
			return false
		}
	}
	if len(xLost) == 0 {
		return true
	}

	yLost := lostEntries(y)
	if len(xLost) != len(yLost) {
		return false
	}
	used := make([]bool, len(yLost))
	for _, xe := range xLost {
		found := false
		for i, ye := range yLost {
			if !used[i] && e.equalValue(xe.key, ye.key) && e.equalValue(xe.value, ye.value) {
				used[i], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// lostEntries returns the entries of m whose keys MapIndex cannot reach.
func lostEntries(m reflect.Value) []mapEntry {
	var lost []mapEntry
	iter := m.MapRange()
	for iter.Next() {
		if !m.MapIndex(iter.Key()).IsValid() {
			lost = append(lost, mapEntry{key: iter.Key(), value: iter.Value()})
		}
	}
	return lost
}

// floatEqual treats NaN as equal to itself so that equality stays reflexive.
func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
