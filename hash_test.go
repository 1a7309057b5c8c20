package ob_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/ob"
)

func TestHash_ConsistentWithEqual(t *testing.T) {
	values := []any{
		money("5", "EUR"),
		money("5.000", "EUR"),
		money("-5", "EUR"),
		Price{Money: money("5", "EUR"), quantity: 2},
		Price{Money: money("5.0", "EUR"), quantity: 2},
		Price{Money: money("5", "EUR"), quantity: 2, note: strPtr("x")},
		Fee{Money: money("5", "EUR")},
		Label{Tagged: Tagged{tags: []string{"a"}}, name: "b"},
		Label{Tagged: Tagged{tags: []string{"a"}}, name: "b"},
	}
	for _, a := range values {
		for _, b := range values {
			if ob.Equal(a, b) {
				assert.Equal(t, ob.Hash(a), ob.Hash(b), "%v vs %v", a, b)
			}
		}
	}
}

func TestHash_LevelCombination(t *testing.T) {
	// One level per embedding step, folded with the 31 polynomial.
	m := Money{currency: "EUR"}
	amount := ob.HashValue(m.amount)
	currency := ob.HashValue("EUR")

	level := 31*(31*1+amount) + currency
	assert.Equal(t, 31*1+level, ob.Hash(m))

	p := Price{Money: m, quantity: 7}
	derived := 31*(31*1+7) + 0
	assert.Equal(t, 31*(31*1+derived)+level, ob.Hash(p))
}

func TestHash_Nil(t *testing.T) {
	assert.Equal(t, 0, ob.Hash(nil))
	assert.Equal(t, 0, ob.Hash((*Price)(nil)))
	assert.Equal(t, 0, ob.HashValue(nil))
	assert.Equal(t, 0, ob.HashValue([]int(nil)))
	assert.Equal(t, 1, ob.HashValue([]int{}))
}

func TestHashValue_OrderFreeMaps(t *testing.T) {
	a := map[string]int{}
	b := map[string]int{}
	for i, k := range []string{"a", "b", "c", "d"} {
		a[k] = i
	}
	for i, k := range []string{"d", "c", "b", "a"} {
		b[k] = 3 - i
	}
	assert.Equal(t, ob.HashValue(a), ob.HashValue(b))
}

func TestHashValue_BigNumbers(t *testing.T) {
	lo := new(big.Float).SetPrec(24).SetFloat64(0.5)
	hi := new(big.Float).SetPrec(200).SetFloat64(0.5)

	assert.True(t, ob.EqualValues(lo, hi))
	assert.Equal(t, ob.HashValue(lo), ob.HashValue(hi))

	assert.True(t, ob.EqualValues(big.NewInt(12), big.NewInt(12)))
	assert.Equal(t, ob.HashValue(big.NewInt(12)), ob.HashValue(big.NewInt(12)))

	assert.True(t, ob.EqualValues(big.NewRat(2, 4), big.NewRat(1, 2)))
	assert.Equal(t, ob.HashValue(big.NewRat(2, 4)), ob.HashValue(big.NewRat(1, 2)))
}

func TestHashValue_Primitives(t *testing.T) {
	assert.Equal(t, 1231, ob.HashValue(true))
	assert.Equal(t, 1237, ob.HashValue(false))
	assert.Equal(t, 42, ob.HashValue(42))
	assert.Equal(t, 0, ob.HashValue(negativeZero()))
	assert.Equal(t, ob.HashValue(nanValue()), ob.HashValue(nanValue()))
	assert.Equal(t, ob.HashValue("abc"), ob.HashValue("abc"))
	assert.NotEqual(t, ob.HashValue("abc"), ob.HashValue("abd"))
}
