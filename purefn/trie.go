package purefn

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/ob"
	"github.com/on-the-ground/ob/shared/helper"
)

// Trie is a bounded memo table keyed by argument lists.
//
// Each argument is hashed with ob.HashValue to pick a path of sync.Map
// nodes; the leaf holds a bucket whose entries are matched with
// ob.EqualValues, so arguments need not be comparable.
//
// Entries live in two generations. Once the head generation holds maxSize
// entries the other one is cleared and becomes the head; lookups consult
// both, so recently stored entries survive one rotation. Under concurrent
// stores the size of a generation is approximate: a store racing a
// rotation may land in the retiring generation.
type Trie[O any] struct {
	memos    [2]atomic.Pointer[sync.Map]
	headIdx  atomic.Uint32
	size     atomic.Uint32
	maxSize  uint32
	rotateMu sync.Mutex
}

type entry[O any] struct {
	args  []any
	value O
}

type bucket[O any] struct {
	mu      sync.RWMutex
	entries []entry[O]
}

func argsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ob.EqualValues(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (b *bucket[O]) load(args []any) (O, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, e := range b.entries {
		if argsEqual(e.args, args) {
			return e.value, true
		}
	}
	var zero O
	return zero, false
}

// store reports whether a new entry was added rather than replaced.
func (b *bucket[O]) store(args []any, value O) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if argsEqual(e.args, args) {
			b.entries[i].value = value
			return false
		}
	}
	b.entries = append(b.entries, entry[O]{args: args, value: value})
	return true
}

func hashKeys(args []any) []int {
	if len(args) == 0 {
		panic("traverse: empty keys")
	}
	keys := make([]int, len(args))
	for i, arg := range args {
		keys[i] = ob.HashValue(arg)
	}
	return keys
}

// Load returns the value stored for args, looking at the head generation first.
func (t *Trie[O]) Load(args []any) (O, bool) {
	keys := hashKeys(args)
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		if b, ok := t.lookup(t.memos[idx].Load(), keys); ok {
			if v, ok := b.load(args); ok {
				return v, true
			}
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) lookup(node *sync.Map, keys []int) (*bucket[O], bool) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		next, ok := helper.GetTypedValueOf2[*sync.Map](func() (any, bool) {
			return node.Load(k)
		})
		if !ok {
			return nil, false
		}
		node = next
	}
	return helper.GetTypedValueOf2[*bucket[O]](func() (any, bool) {
		return node.Load(keys[last])
	})
}

func (t *Trie[O]) traverse(node *sync.Map, keys []int) *bucket[O] {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		v, _ := node.LoadOrStore(k, &sync.Map{})
		node = v.(*sync.Map)
	}
	v, _ := node.LoadOrStore(keys[last], &bucket[O]{})
	return v.(*bucket[O])
}

// Store records value for args in the head generation, rotating first when it is full.
func (t *Trie[O]) Store(args []any, value O) {
	keys := hashKeys(args)
	t.rotateIfFull()
	head := t.memos[t.headIdx.Load()].Load()
	if t.traverse(head, keys).store(args, value) {
		t.size.Add(1)
	}
}

// rotateIfFull publishes the new head before resetting the size, so
// stores that observe the reset already write into the new head.
func (t *Trie[O]) rotateIfFull() {
	if t.size.Load() < t.maxSize {
		return
	}
	t.rotateMu.Lock()
	defer t.rotateMu.Unlock()
	if t.size.Load() < t.maxSize {
		return
	}
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	t.size.Store(0)
}

// NewTrie returns an empty trie; maxSize bounds each generation and must be positive.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}
