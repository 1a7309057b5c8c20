package ob_test

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/ob"
)

type Money struct {
	ob.Ob
	amount   decimal.Decimal
	currency string
}

func (m Money) Equals(o any) bool { return ob.Equal(m, o) }
func (m Money) Hash() int         { return ob.Hash(m) }
func (m Money) String() string    { return ob.Format(m) }

type Price struct {
	Money
	quantity int
	note     *string
}

func (p Price) Equals(o any) bool { return ob.Equal(p, o) }
func (p Price) Hash() int         { return ob.Hash(p) }
func (p Price) String() string    { return ob.Format(p) }

// Fee adds no state of its own.
type Fee struct {
	Money
}

func (f Fee) Equals(o any) bool { return ob.Equal(f, o) }
func (f Fee) Hash() int         { return ob.Hash(f) }
func (f Fee) String() string    { return ob.Format(f) }

type Tagged struct {
	ob.Ob
	tags []string
}

type Label struct {
	Tagged
	name string
}

func (l Label) Equals(o any) bool { return ob.Equal(l, o) }
func (l Label) Hash() int         { return ob.Hash(l) }
func (l Label) String() string    { return ob.Format(l) }

type Booking struct {
	ob.Ob
	ID       uuid.UUID
	Day      date.Date
	Window   timespan.TimeSpan
	Lines    []Price
	Extras   map[string]Money
	Initial  rune `ob:"initial,char"`
	cache    string `ob:"-"`
	revision int    `ob:"-"`
}

type Annotated struct {
	ob.Ob
	_        struct{}
	Code     string `ob:"code"`
	Letters  []rune `ob:",char"`
	Grade    ob.Char
	Override int `ob:"-"`
}

// plain is not a value type.
type plain struct {
	a int
}

// Ambiguous embeds two value types on the same level.
type Ambiguous struct {
	Money
	Tagged
}

func money(amount string, currency string) Money {
	return Money{amount: decimal.MustParse(amount), currency: currency}
}

func strPtr(s string) *string { return &s }

// Surcharge declares none of its own methods and inherits Money's.
type Surcharge struct {
	Money
	reason string
}

type Envelope struct {
	ob.Ob
	content any
	direct  Surcharge
}

type Callback struct {
	ob.Ob
	name string
	fn   func() int
}
