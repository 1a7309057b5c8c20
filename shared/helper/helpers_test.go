package helper_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/ob/shared/helper"

	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf2(t *testing.T) {
	m := &sync.Map{}
	m.Store("n", 1)

	n, ok := helper.GetTypedValueOf2[int](func() (any, bool) { return m.Load("n") })
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return m.Load("n") })
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[int](func() (any, bool) { return m.Load("missing") })
	assert.False(t, ok)
}
