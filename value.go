package sharedobject

import (
	"math"
	"strconv"

	"github.com/torresjeff/sharedobject/amf/amf3"
)

type Kind uint8

const (
	Undefined Kind = iota
	Null
	Boolean
	Integer
	Double
	String
	// Skipped is a recognised type whose payload was stepped over without being decoded.
	Skipped
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Double:
		return "double"
	case String:
		return "string"
	case Skipped:
		return "skipped"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a decoded shared object value. The zero Value is Undefined.
type Value struct {
	kind Kind
	tag  byte
	b    bool
	i    int32
	f    float64
	s    string
}

func UndefinedValue() Value { return Value{kind: Undefined, tag: amf3.TypeUndefined} }
func NullValue() Value { return Value{kind: Null, tag: amf3.TypeNull} }
func IntegerValue(i int32) Value { return Value{kind: Integer, tag: amf3.TypeInteger, i: i} }
func DoubleValue(f float64) Value { return Value{kind: Double, tag: amf3.TypeDouble, f: f} }
func StringValue(s string) Value { return Value{kind: String, tag: amf3.TypeString, s: s} }
func SkippedValue(tag byte) Value { return Value{kind: Skipped, tag: tag} }

func BooleanValue(b bool) Value {
	if b {
		return Value{kind: Boolean, tag: amf3.TypeTrue, b: true}
	}
	return Value{kind: Boolean, tag: amf3.TypeFalse}
}

func (v Value) Kind() Kind { return v.kind }

// Tag returns the type marker the value was read with.
func (v Value) Tag() byte { return v.tag }

// Bool returns the boolean payload, false for any other kind.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload, 0 for any other kind.
func (v Value) Int() int32 { return v.i }

// Float returns the double payload, 0 for any other kind.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload, "" for any other kind.
func (v Value) Str() string { return v.s }

// Interface returns the payload as a plain Go value: nil, bool, int32, float64 or string.
// Undefined and Null both return nil; use Kind to tell them apart.
// Skipped values return their type name.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Boolean:
		return v.b
	case Integer:
		return v.i
	case Double:
		return v.f
	case String:
		return v.s
	case Skipped:
		return "<" + amf3.TypeName(v.tag) + ">"
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case Undefined, Null:
		return v.kind.String()
	case Boolean:
		return strconv.FormatBool(v.b)
	case Integer:
		return strconv.FormatInt(int64(v.i), 10)
	case Double:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	default:
		return "<" + amf3.TypeName(v.tag) + ">"
	}
}

// Equal reports whether v and other have the same kind, tag and payload. Doubles are compared bit for bit.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.tag != other.tag {
		return false
	}
	switch v.kind {
	case Boolean:
		return v.b == other.b
	case Integer:
		return v.i == other.i
	case Double:
		return math.Float64bits(v.f) == math.Float64bits(other.f)
	case String:
		return v.s == other.s
	default:
		return true
	}
}
