package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ObjectType identifies what kind of value we have.
// The values double as the language's type names.
type ObjectType string

const (
	INTEGER_OBJ ObjectType = "NUMBR"
	FLOAT_OBJ   ObjectType = "NUMBAR"
	STRING_OBJ  ObjectType = "YARN"
	BOOLEAN_OBJ ObjectType = "TROOF"
	NULL_OBJ    ObjectType = "NOOB"
)

// Object is the interface for all runtime values
// Every value in our language implements this
type Object interface {
	Type() ObjectType
	Inspect() string // Display form, identical to Text
}

// Integer represents NUMBR values like 5, -42
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

// Float represents NUMBAR values like 3.14
type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return FormatFloat(f.Value) }

// String represents YARN values.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// Boolean represents TROOF values. It is only ever observed as WIN or FAIL.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "WIN"
	}
	return "FAIL"
}

// Null represents NOOB, the absence of value
type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "NOOB" }

// Shared immutable values
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

// NativeBool converts a Go bool to the shared TROOF values
func NativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// FormatFloat renders a NUMBAR the way it is displayed everywhere:
// shortest round-tripping digits, fixed notation for decimal exponents in
// [-4, 16) with at least one fractional digit, scientific otherwise.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}

// Text is the display form of any value: WIN/FAIL for TROOF, NOOB for Null.
func Text(obj Object) string {
	if obj == nil {
		return NULL.Inspect()
	}
	return obj.Inspect()
}

// Numeric coerces any value to NUMBR or NUMBAR. WIN is 1; FAIL and NOOB are 0.
// YARN is parsed as an integer, then as a float, and falls back to 0.
func Numeric(obj Object) Object {
	switch v := obj.(type) {
	case *Integer, *Float:
		return v
	case *Boolean:
		if v.Value {
			return &Integer{Value: 1}
		}
		return &Integer{Value: 0}
	case *String:
		return parseNumber(v.Value)
	default:
		return &Integer{Value: 0}
	}
}

func parseNumber(s string) Object {
	switch s {
	case "WIN":
		return &Integer{Value: 1}
	case "FAIL":
		return &Integer{Value: 0}
	}
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return &Integer{Value: n}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return &Float{Value: f}
	}
	return &Integer{Value: 0}
}

// Truthy is false exactly for NOOB, the empty YARN, numeric zero, FAIL and
// the YARN "FAIL".
func Truthy(obj Object) bool {
	switch v := obj.(type) {
	case nil, *Null:
		return false
	case *Boolean:
		return v.Value
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0
	case *String:
		return v.Value != "" && v.Value != "FAIL"
	default:
		return true
	}
}

// Cast converts a value to the named type (NUMBR, NUMBAR, YARN, TROOF, NOOB).
// An unknown type name leaves the value untouched.
func Cast(obj Object, typeName string) Object {
	switch ObjectType(typeName) {
	case INTEGER_OBJ:
		switch n := Numeric(obj).(type) {
		case *Float:
			if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
				return &Integer{Value: 0}
			}
			return &Integer{Value: int64(n.Value)}
		default:
			return n
		}
	case FLOAT_OBJ:
		return &Float{Value: ToFloat(Numeric(obj))}
	case STRING_OBJ:
		return &String{Value: Text(obj)}
	case BOOLEAN_OBJ:
		return NativeBool(Truthy(obj))
	case NULL_OBJ:
		return NULL
	default:
		return obj
	}
}

// ToFloat widens a numeric value to float64; non-numeric values go through Numeric first
func ToFloat(obj Object) float64 {
	switch v := Numeric(obj).(type) {
	case *Integer:
		return float64(v.Value)
	case *Float:
		return v.Value
	default:
		return 0
	}
}

// Describe renders a value with its type for inspection dumps, e.g. NUMBR 5
func Describe(obj Object) string {
	if obj == nil {
		obj = NULL
	}
	if obj.Type() == STRING_OBJ {
		return fmt.Sprintf("%s %q", obj.Type(), obj.Inspect())
	}
	return fmt.Sprintf("%s %s", obj.Type(), obj.Inspect())
}
