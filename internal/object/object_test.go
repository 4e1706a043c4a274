package object

import (
	"math"
	"testing"
)

func TestObjectInspectAndType(t *testing.T) {
	tests := []struct {
		obj      Object
		typ      ObjectType
		expected string
	}{
		{&Integer{Value: 7}, INTEGER_OBJ, "7"},
		{&Integer{Value: -3}, INTEGER_OBJ, "-3"},
		{&Float{Value: 3.5}, FLOAT_OBJ, "3.5"},
		{&String{Value: "hi"}, STRING_OBJ, "hi"},
		{TRUE, BOOLEAN_OBJ, "WIN"},
		{FALSE, BOOLEAN_OBJ, "FAIL"},
		{NULL, NULL_OBJ, "NOOB"},
	}

	for i, tt := range tests {
		if got := tt.obj.Type(); got != tt.typ {
			t.Fatalf("tests[%d] Type wrong. expected=%s, got=%s", i, tt.typ, got)
		}
		if got := Text(tt.obj); got != tt.expected {
			t.Fatalf("tests[%d] Text wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.0"},
		{3, "3.0"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e20, "1.5e+20"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.input); got != tt.expected {
			t.Fatalf("FormatFloat(%v) wrong. expected=%q, got=%q", tt.input, tt.expected, got)
		}
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		input    Object
		expected string
		typ      ObjectType
	}{
		{TRUE, "1", INTEGER_OBJ},
		{FALSE, "0", INTEGER_OBJ},
		{NULL, "0", INTEGER_OBJ},
		{&Integer{Value: 9}, "9", INTEGER_OBJ},
		{&Float{Value: 2.5}, "2.5", FLOAT_OBJ},
		{&String{Value: "12"}, "12", INTEGER_OBJ},
		{&String{Value: " 12 "}, "12", INTEGER_OBJ},
		{&String{Value: "1.25"}, "1.25", FLOAT_OBJ},
		{&String{Value: "WIN"}, "1", INTEGER_OBJ},
		{&String{Value: "FAIL"}, "0", INTEGER_OBJ},
		{&String{Value: "cheezburger"}, "0", INTEGER_OBJ},
		{&String{Value: ""}, "0", INTEGER_OBJ},
	}

	for i, tt := range tests {
		got := Numeric(tt.input)
		if got.Type() != tt.typ || got.Inspect() != tt.expected {
			t.Fatalf("tests[%d] Numeric(%s) wrong. expected=%s %s, got=%s", i, Describe(tt.input), tt.typ, tt.expected, Describe(got))
		}
	}
}

func TestNumericTextRoundTrip(t *testing.T) {
	ints := []int64{0, 1, -1, 42, -9000, math.MaxInt64, math.MinInt64}
	for _, n := range ints {
		got, ok := Numeric(&String{Value: Text(&Integer{Value: n})}).(*Integer)
		if !ok || got.Value != n {
			t.Fatalf("integer %d did not round-trip, got=%v", n, got)
		}
	}

	floats := []float64{0, 1, -1.5, 0.1, 1.0 / 3.0, 1e-7, 6.02e23, -1e300, math.Inf(1), math.Inf(-1)}
	for _, f := range floats {
		got, ok := Numeric(&String{Value: Text(&Float{Value: f})}).(*Float)
		if !ok || got.Value != f {
			t.Fatalf("float %v did not round-trip, got=%v", f, got)
		}
	}
}

func TestTruthy(t *testing.T) {
	falsy := []Object{
		NULL,
		FALSE,
		&String{Value: ""},
		&String{Value: "FAIL"},
		&Integer{Value: 0},
		&Float{Value: 0},
	}
	for _, obj := range falsy {
		if Truthy(obj) {
			t.Fatalf("expected %s to be falsy", Describe(obj))
		}
	}

	truthy := []Object{
		TRUE,
		&String{Value: "WIN"},
		&String{Value: "0"},
		&String{Value: "fail"},
		&String{Value: " "},
		&Integer{Value: -1},
		&Float{Value: 0.001},
	}
	for _, obj := range truthy {
		if !Truthy(obj) {
			t.Fatalf("expected %s to be truthy", Describe(obj))
		}
	}
}

func TestCast(t *testing.T) {
	tests := []struct {
		input    Object
		target   string
		expected string
	}{
		{&Float{Value: 3.9}, "NUMBR", "NUMBR 3"},
		{&Float{Value: -3.9}, "NUMBR", "NUMBR -3"},
		{&String{Value: "7.5"}, "NUMBR", "NUMBR 7"},
		{&Float{Value: math.Inf(1)}, "NUMBR", "NUMBR 0"},
		{&Integer{Value: 4}, "NUMBAR", "NUMBAR 4.0"},
		{TRUE, "NUMBAR", "NUMBAR 1.0"},
		{&Integer{Value: 4}, "YARN", `YARN "4"`},
		{FALSE, "YARN", `YARN "FAIL"`},
		{NULL, "YARN", `YARN "NOOB"`},
		{&String{Value: "x"}, "TROOF", "TROOF WIN"},
		{&Integer{Value: 0}, "TROOF", "TROOF FAIL"},
		{&Integer{Value: 5}, "NOOB", "NOOB NOOB"},
		{&Integer{Value: 5}, "BUKKIT", "NUMBR 5"},
	}

	for i, tt := range tests {
		if got := Describe(Cast(tt.input, tt.target)); got != tt.expected {
			t.Fatalf("tests[%d] Cast to %s wrong. expected=%q, got=%q", i, tt.target, tt.expected, got)
		}
	}
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	if !env.Has(IT) || env.It() != NULL {
		t.Fatalf("new environment should hold IT = NOOB")
	}

	env.Set("x", &Integer{Value: 1})
	env.Set(IT, &String{Value: "carried"})
	env.Set("b", nil)

	if got, ok := env.Get("b"); !ok || got != NULL {
		t.Fatalf("nil value should be stored as NOOB, got=%v", got)
	}

	names := env.Names()
	if len(names) != 3 || names[0] != IT || names[1] != "b" || names[2] != "x" {
		t.Fatalf("Names wrong. got=%v", names)
	}

	local := NewLocalEnvironment(env)
	if local.Has("x") {
		t.Fatalf("local table must not see caller variables")
	}
	if got := Text(local.It()); got != "carried" {
		t.Fatalf("local IT wrong. expected=%q, got=%q", "carried", got)
	}
	local.Set(IT, &Integer{Value: 2})
	if got := Text(env.It()); got != "carried" {
		t.Fatalf("caller IT changed by callee, got=%q", got)
	}
}
