package evaluator

import (
	"math"
	"strings"

	"lolcode/internal/ast"
	"lolcode/internal/object"
	"lolcode/internal/token"
)

// eval computes the value of an expression. It never fails: undefined
// names read as NOOB and unusable operands coerce to 0.
func (i *Interpreter) eval(expr ast.Expression, env *object.Environment) object.Object {
	switch node := expr.(type) {
	case *ast.Literal:
		return evalLiteral(node)

	case *ast.VariableRef:
		if val, ok := env.Get(node.Name); ok {
			return val
		}
		return object.NULL

	case *ast.BinaryOp:
		left := i.eval(node.Left, env)
		right := i.eval(node.Right, env)
		return evalBinary(node.Operator, left, right)

	case *ast.UnaryOp:
		return object.NativeBool(!object.Truthy(i.eval(node.Operand, env)))

	case *ast.VariadicOp:
		return i.evalVariadic(node, env)

	case *ast.Comparison:
		same := object.Text(i.eval(node.Left, env)) == object.Text(i.eval(node.Right, env))
		if node.Operator == token.DIFFRINT {
			same = !same
		}
		return object.NativeBool(same)

	case *ast.Typecast:
		return object.Cast(i.eval(node.Value, env), node.Target)

	case *ast.FunctionCall:
		return i.call(node, env)
	}
	return object.NULL
}

func evalLiteral(lit *ast.Literal) object.Object {
	if lit == nil {
		return object.NULL
	}
	switch lit.Kind {
	case token.NUMBR, token.NUMBAR:
		return object.Numeric(&object.String{Value: lit.Value})
	case token.TROOF:
		return object.NativeBool(lit.Value == "WIN")
	case token.NOOB:
		return object.NULL
	default:
		return &object.String{Value: lit.Value}
	}
}

func evalBinary(op token.TokenType, left, right object.Object) object.Object {
	switch op {
	case token.BOTH_OF:
		return object.NativeBool(object.Truthy(left) && object.Truthy(right))
	case token.EITHER_OF:
		return object.NativeBool(object.Truthy(left) || object.Truthy(right))
	case token.WON_OF:
		return object.NativeBool(object.Truthy(left) != object.Truthy(right))
	}

	l, r := object.Numeric(left), object.Numeric(right)
	switch op {
	case token.BIGGR_OF:
		if object.ToFloat(r) > object.ToFloat(l) {
			return r
		}
		return l
	case token.SMALLR_OF:
		if object.ToFloat(r) < object.ToFloat(l) {
			return r
		}
		return l
	case token.QUOSHUNT_OF:
		if object.ToFloat(r) == 0 {
			return object.NULL
		}
		return &object.Float{Value: object.ToFloat(l) / object.ToFloat(r)}
	}

	li, lok := l.(*object.Integer)
	ri, rok := r.(*object.Integer)
	if lok && rok {
		return evalIntegerArithmetic(op, li.Value, ri.Value)
	}
	return evalFloatArithmetic(op, object.ToFloat(l), object.ToFloat(r))
}

func evalIntegerArithmetic(op token.TokenType, a, b int64) object.Object {
	switch op {
	case token.SUM_OF:
		return &object.Integer{Value: a + b}
	case token.DIFF_OF:
		return &object.Integer{Value: a - b}
	case token.PRODUKT_OF:
		return &object.Integer{Value: a * b}
	case token.MOD_OF:
		if b == 0 {
			return object.NULL
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return &object.Integer{Value: m}
	}
	return object.NULL
}

func evalFloatArithmetic(op token.TokenType, a, b float64) object.Object {
	switch op {
	case token.SUM_OF:
		return &object.Float{Value: a + b}
	case token.DIFF_OF:
		return &object.Float{Value: a - b}
	case token.PRODUKT_OF:
		return &object.Float{Value: a * b}
	case token.MOD_OF:
		if b == 0 {
			return object.NULL
		}
		m := math.Mod(a, b)
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return &object.Float{Value: m}
	}
	return object.NULL
}

// evalVariadic handles SMOOSH, ALL OF and ANY OF. The boolean forms stop
// evaluating at the first operand that decides the result.
func (i *Interpreter) evalVariadic(node *ast.VariadicOp, env *object.Environment) object.Object {
	switch node.Operator {
	case token.SMOOSH:
		var out strings.Builder
		for _, operand := range node.Operands {
			out.WriteString(object.Text(i.eval(operand, env)))
		}
		return &object.String{Value: out.String()}
	case token.ALL_OF:
		for _, operand := range node.Operands {
			if !object.Truthy(i.eval(operand, env)) {
				return object.FALSE
			}
		}
		return object.TRUE
	case token.ANY_OF:
		for _, operand := range node.Operands {
			if object.Truthy(i.eval(operand, env)) {
				return object.TRUE
			}
		}
		return object.FALSE
	}
	return object.NULL
}
