package purefn_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/ob/purefn"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := purefn.NewTrie[string](1)

	// store a value
	trie.Store([]any{"a", "b", "c"}, "final")

	// load it back
	val, ok := trie.Load([]any{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]any{"a", "b", "x"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]any{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]any{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_ValueKeys(t *testing.T) {
	trie := purefn.NewTrie[int](8)

	trie.Store([]any{[]int{1, 2}, map[string]bool{"x": true}, nil}, 1)

	val, ok := trie.Load([]any{[]int{1, 2}, map[string]bool{"x": true}, nil})
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = trie.Load([]any{[]int{1, 2}, map[string]bool{"x": false}, nil})
	assert.False(t, ok)

	_, ok = trie.Load([]any{[]int{1, 2}, map[string]bool{"x": true}, 0})
	assert.False(t, ok)
}

func TestTrie_ConcurrentStoreAndLoad(t *testing.T) {
	trie := purefn.NewTrie[int](1024)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			trie.Store([]any{i % 8, "k"}, i%8)
			v, ok := trie.Load([]any{i % 8, "k"})
			assert.True(t, ok)
			assert.Equal(t, i%8, v)
		}(i)
	}
	wg.Wait()
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	trie := purefn.NewTrie[int](2)
	trie.Load([]any{})
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		purefn.NewTrie[int](0)
	})
}
