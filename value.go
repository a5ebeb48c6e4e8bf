package xlsx

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Kind tags the payload stored in a Value.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
	KindDate
	KindTime
	KindFormula
)

var kindNames = [...]string{"empty", "bool", "int", "uint", "float32", "float64", "decimal", "string", "date", "time", "formula"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsNumeric reports whether the kind holds a plain number.
func (k Kind) IsNumeric() bool {
	return k >= KindInt && k <= KindDecimal
}

// Value is the content of a cell. The kind is fixed when the value is built.
type Value struct {
	kind Kind
	num  uint64
	f    float64
	dec  decimal.Decimal
	str  string
	tm   time.Time
	dur  time.Duration
}

func Empty() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Formula(f string) Value {
	return Value{kind: KindFormula, str: f}
}

func Date(t time.Time) Value {
	return Value{kind: KindDate, tm: t}
}

func Time(d time.Duration) Value {
	return Value{kind: KindTime, dur: d}
}

func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, dec: d}
}

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

func Int[T constraints.Signed](n T) Value {
	return Value{kind: KindInt, num: uint64(int64(n))}
}

func Uint[T constraints.Unsigned](n T) Value {
	return Value{kind: KindUint, num: uint64(n)}
}

func Float[T constraints.Float](f T) Value {
	if _, ok := any(f).(float32); ok {
		return Value{kind: KindFloat32, f: float64(f)}
	}
	return Value{kind: KindFloat64, f: float64(f)}
}

// ValueOf maps a Go value to a Value by its dynamic type. Anything not
// recognized is stored as its fmt representation.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Uint(x)
	case uint8:
		return Uint(x)
	case uint16:
		return Uint(x)
	case uint32:
		return Uint(x)
	case uint64:
		return Uint(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	case decimal.Decimal:
		return Decimal(x)
	case time.Time:
		return Date(x)
	case time.Duration:
		return Time(x)
	case string:
		return String(x)
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

func (v Value) Bool() bool {
	return v.num != 0
}

func (v Value) Int() int64 {
	return int64(v.num)
}

func (v Value) Uint() uint64 {
	return v.num
}

func (v Value) Date() time.Time {
	return v.tm
}

func (v Value) Time() time.Duration {
	return v.dur
}

// Str returns the text of a string or formula value.
func (v Value) Str() string {
	return v.str
}

// Float returns any numeric kind as float64.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt:
		return float64(int64(v.num))
	case KindUint:
		return float64(v.num)
	case KindDecimal:
		return v.dec.InexactFloat64()
	case KindBool:
		return float64(v.num)
	default:
		return v.f
	}
}

// Decimal returns any numeric kind as a decimal.
func (v Value) Decimal() decimal.Decimal {
	switch v.kind {
	case KindDecimal:
		return v.dec
	case KindInt:
		return decimal.NewFromInt(int64(v.num))
	case KindUint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v.num), 0)
	case KindFloat32:
		return decimal.NewFromFloat32(float32(v.f))
	default:
		return decimal.NewFromFloat(v.Float())
	}
}

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindBool, KindInt, KindUint:
		return v.num == o.num
	case KindFloat32, KindFloat64:
		return v.f == o.f
	case KindDecimal:
		return v.dec.Equal(o.dec)
	case KindString, KindFormula:
		return v.str == o.str
	case KindDate:
		return v.tm.Equal(o.tm)
	case KindTime:
		return v.dur == o.dur
	}
	return false
}

// Text renders numbers in the invariant form used inside the XML parts:
// no grouping, '.' as decimal separator.
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindUint:
		return strconv.FormatUint(v.num, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'G', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'G', -1, 64)
	case KindDecimal:
		return v.dec.String()
	case KindString, KindFormula:
		return v.str
	case KindDate:
		return v.tm.Format(time.RFC3339)
	case KindTime:
		return v.dur.String()
	}
	return ""
}

func (v Value) String() string {
	return v.kind.String() + "(" + v.Text() + ")"
}
