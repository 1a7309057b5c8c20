package ob

import (
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var rootType = reflect.TypeFor[Ob]()

// Field describes one identity field of a single level.
type Field struct {
	// Name is the name used by Format; the struct tag may override it.
	Name string
	// Index is the position of the field within its declaring struct.
	Index int
	Type  reflect.Type
	// Char renders int32 values, and slices of them, as characters.
	Char bool
}

// Level is one step of an ancestor chain.
type Level struct {
	Type reflect.Type
	// Path leads from the most-derived value to this level's struct.
	Path   []int
	Fields []Field
}

// Registry caches, per type, the identity fields and the ancestor chain.
// Entries are computed lazily and never evicted. It is safe for concurrent use.
type Registry struct {
	tagName string
	logger  *zap.Logger

	fields sync.Map // map[reflect.Type][]Field
	chains sync.Map // map[reflect.Type][]Level
	values sync.Map // map[reflect.Type]bool
	count  atomic.Int64
}

// NewRegistry returns an empty registry. Only WithLogger and WithTagName apply.
func NewRegistry(opts ...Option) *Registry {
	cfg := newConfig(opts...)
	return &Registry{
		tagName: cfg.tagName,
		logger:  cfg.logger,
	}
}

// IsValueType reports whether t is Ob or a struct whose embedding chain reaches Ob.
func (r *Registry) IsValueType(t reflect.Type) bool {
	if t == rootType {
		return true
	}
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	if cached, ok := r.values.Load(t); ok {
		return cached.(bool)
	}
	_, ok := r.ancestor(t)
	r.values.LoadOrStore(t, ok)
	return ok
}

// ancestor returns the index of the embedded field that continues the chain.
func (r *Registry) ancestor(t reflect.Type) (int, bool) {
	idx := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous || f.Type.Kind() != reflect.Struct {
			continue
		}
		if !r.IsValueType(f.Type) {
			continue
		}
		if idx >= 0 {
			panic(errors.Wrapf(ErrAmbiguousAncestor, "%s embeds %s and %s", t, t.Field(idx).Type, f.Type))
		}
		idx = i
	}
	return idx, idx >= 0
}

// FieldsOf returns the identity fields declared by t itself, in declaration order.
// Fields of embedded ancestors are not included. Non-struct types have none.
func (r *Registry) FieldsOf(t reflect.Type) []Field {
	if cached, ok := r.fields.Load(t); ok {
		return cached.([]Field)
	}
	actual, _ := r.fields.LoadOrStore(t, r.collect(t))
	return actual.([]Field)
}

func (r *Registry) collect(t reflect.Type) []Field {
	fields := []Field{}
	if t.Kind() != reflect.Struct {
		return fields
	}
	skip := -1
	if r.IsValueType(t) {
		skip, _ = r.ancestor(t)
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if i == skip || sf.Name == "_" {
			continue
		}
		tag, hasTag := sf.Tag.Lookup(r.tagName)
		if hasTag && tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, Field{
			Name:  name,
			Index: i,
			Type:  sf.Type,
			Char:  slices.Contains(strings.Split(opts, ","), "char"),
		})
	}
	return fields
}

// ChainOf returns the ancestor chain of the value type t, most-derived level
// first, stopping before Ob. It panics with ErrNotValueType for other types.
func (r *Registry) ChainOf(t reflect.Type) []Level {
	if cached, ok := r.chains.Load(t); ok {
		return cached.([]Level)
	}
	if !r.IsValueType(t) {
		panic(errors.Wrapf(ErrNotValueType, "%v", t))
	}

	chain := []Level{}
	var path []int
	numFields := 0
	for cur := t; cur != rootType; {
		fields := r.FieldsOf(cur)
		numFields += len(fields)
		chain = append(chain, Level{Type: cur, Path: slices.Clone(path), Fields: fields})
		i, _ := r.ancestor(cur)
		path = append(path, i)
		cur = cur.Field(i).Type
	}

	actual, loaded := r.chains.LoadOrStore(t, chain)
	if !loaded {
		r.count.Add(1)
		r.logger.Debug("indexed value type",
			zap.Stringer("type", t),
			zap.Int("levels", len(chain)),
			zap.Int("fields", numFields),
		)
	}
	return actual.([]Level)
}

// Len returns the number of value types whose chain has been indexed.
func (r *Registry) Len() int {
	return int(r.count.Load())
}
