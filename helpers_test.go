package ob_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/ob"
)

func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}

func newObservedEngine(opts ...ob.Option) (*ob.Engine, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return ob.New(append([]ob.Option{ob.WithLogger(zap.New(core))}, opts...)...), logs
}

func nanValue() float64 { return math.NaN() }

func negativeZero() float64 { return math.Copysign(0, -1) }
