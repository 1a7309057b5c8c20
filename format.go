package ob

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/on-the-ground/ob/internal/reflectx"
)

const nilText = "nil"

var charType = reflect.TypeFor[Char]()

// Format renders a as TypeName[field=value, ...]. Ancestor fields come
// first and the most-derived level's fields last. A nil a renders as nil.
func (e *Engine) Format(a any) string {
	x, chain, ok := e.root(a)
	if !ok {
		return nilText
	}
	var sb strings.Builder
	e.formatLevels(&sb, chain, x)
	return sb.String()
}

// FormatValue renders an arbitrary value the way field values are rendered:
// strings quoted with escaped double quotes, Char values in single quotes,
// slices and arrays as [e1, e2], maps as {k=v} sorted by key, value types
// structurally and everything else in its own textual form.
func (e *Engine) FormatValue(v any) string {
	var sb strings.Builder
	e.formatValue(&sb, reflect.ValueOf(v), false)
	return sb.String()
}

func (e *Engine) formatLevels(sb *strings.Builder, chain []Level, x reflect.Value) {
	x = reflectx.Addressable(x)
	sb.WriteString(x.Type().Name())
	sb.WriteByte('[')
	first := true
	for i := len(chain) - 1; i >= 0; i-- {
		lvl := chain[i]
		owner := x.FieldByIndex(lvl.Path)
		for _, f := range lvl.Fields {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(f.Name)
			sb.WriteByte('=')
			e.formatValue(sb, fieldValue(owner, f), f.Char)
		}
	}
	sb.WriteByte(']')
}

func (e *Engine) formatValue(sb *strings.Builder, v reflect.Value, char bool) {
	if reflectx.IsNil(v) {
		sb.WriteString(nilText)
		return
	}
	if v.Kind() == reflect.Interface {
		e.formatValue(sb, v.Elem(), char)
		return
	}

	switch {
	case v.Kind() == reflect.Struct && e.reg.IsValueType(v.Type()):
		e.formatLevels(sb, e.reg.ChainOf(v.Type()), v)
		return
	case v.Kind() == reflect.Pointer && e.reg.IsValueType(v.Type().Elem()):
		e.formatLevels(sb, e.reg.ChainOf(v.Type().Elem()), v.Elem())
		return
	case v.Type() == charType, char && v.Kind() == reflect.Int32:
		sb.WriteByte('\'')
		sb.WriteRune(rune(v.Int()))
		sb.WriteByte('\'')
		return
	}

	if v.CanInterface() {
		switch t := v.Interface().(type) {
		case fmt.Stringer:
			sb.WriteString(t.String())
			return
		case error:
			sb.WriteString(t.Error())
			return
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		e.formatValue(sb, v.Elem(), char)
	case reflect.String:
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(v.String(), `"`, `\"`))
		sb.WriteByte('"')
	case reflect.Slice, reflect.Array:
		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.formatValue(sb, v.Index(i), char)
		}
		sb.WriteByte(']')
	case reflect.Map:
		e.formatMap(sb, v)
	default:
		if v.CanInterface() {
			fmt.Fprint(sb, v.Interface())
		} else {
			sb.WriteString(v.String())
		}
	}
}

func (e *Engine) formatMap(sb *strings.Builder, v reflect.Value) {
	type entry struct{ key, value string }
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var k, val strings.Builder
		e.formatValue(&k, iter.Key(), false)
		e.formatValue(&val, iter.Value(), false)
		entries = append(entries, entry{key: k.String(), value: val.String()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	sb.WriteByte('{')
	for i, en := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(en.key)
		sb.WriteByte('=')
		sb.WriteString(en.value)
	}
	sb.WriteByte('}')
}
