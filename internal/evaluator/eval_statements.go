package evaluator

import (
	"strings"

	"lolcode/internal/ast"
	"lolcode/internal/object"
	"lolcode/internal/token"
)

// exec runs one statement for its effect
func (i *Interpreter) exec(stmt ast.Statement, env *object.Environment) outcome {
	switch node := stmt.(type) {
	case *ast.VariableDecl:
		var val object.Object = object.NULL
		if node.Value != nil {
			val = i.eval(node.Value, env)
		}
		env.Set(node.Name, val)

	case *ast.Assignment:
		// Assigning to an undeclared name does nothing
		if env.Has(node.Name) {
			env.Set(node.Name, i.eval(node.Value, env))
		}

	case *ast.Recast:
		if cur, ok := env.Get(node.Name); ok {
			env.Set(node.Name, object.Cast(cur, node.Target))
		}

	case *ast.Visible:
		i.execVisible(node, env)

	case *ast.Gimmeh:
		var val object.Object = object.NULL
		if line, ok := i.in(); ok {
			val = &object.String{Value: line}
		}
		env.Set(node.Name, val)

	case *ast.Conditional:
		return i.execConditional(node, env)

	case *ast.Switch:
		return i.execSwitch(node, env)

	case *ast.Loop:
		return i.execLoop(node, env)

	case *ast.FunctionDef:
		// Bound ahead of time at top level; nested definitions are ignored

	case *ast.Return:
		return outcome{signal: signalReturn, value: i.eval(node.Value, env)}

	case *ast.Break:
		return outcome{signal: signalBreak}

	case *ast.ExpressionStatement:
		env.Set(object.IT, i.eval(node.Expression, env))
	}
	return normal
}

// execVisible writes every value's text form with no separator and a
// trailing newline, then leaves the last raw value in IT
func (i *Interpreter) execVisible(node *ast.Visible, env *object.Environment) {
	var out strings.Builder
	var last object.Object = object.NULL
	for _, expr := range node.Values {
		last = i.eval(expr, env)
		out.WriteString(object.Text(last))
	}
	out.WriteString("\n")
	i.out(out.String())
	env.Set(object.IT, last)
}

// execConditional branches on IT; MEBBE clauses evaluate their own condition
func (i *Interpreter) execConditional(node *ast.Conditional, env *object.Environment) outcome {
	if object.Truthy(env.It()) {
		return i.execBlock(node.Then, env)
	}
	for _, elif := range node.Elifs {
		if object.Truthy(i.eval(elif.Condition, env)) {
			return i.execBlock(elif.Body, env)
		}
	}
	return i.execBlock(node.Else, env)
}

// execSwitch runs the first case whose literal has the same text as IT,
// or the default block. Exactly one body runs. GTFO stops here.
func (i *Interpreter) execSwitch(node *ast.Switch, env *object.Environment) outcome {
	subject := object.Text(env.It())

	body := node.Default
	for _, c := range node.Cases {
		if object.Text(evalLiteral(c.Value)) == subject {
			body = c.Body
			break
		}
	}

	res := i.execBlock(body, env)
	if res.signal == signalBreak {
		return normal
	}
	return res
}

// execLoop checks the condition before each pass, runs the body, then steps
// the loop variable by one. GTFO ends the loop.
func (i *Interpreter) execLoop(node *ast.Loop, env *object.Environment) outcome {
	if !env.Has(node.Var) {
		env.Set(node.Var, &object.Integer{Value: 0})
	}

	step := int64(1)
	if node.Step == token.NERFIN {
		step = -1
	}

	for {
		if node.Condition != nil {
			holds := object.Truthy(i.eval(node.Condition, env))
			if node.ConditionKind == token.TIL {
				holds = !holds
			}
			if !holds {
				return normal
			}
		}

		res := i.execBlock(node.Body, env)
		switch res.signal {
		case signalBreak:
			return normal
		case signalReturn:
			return res
		}

		cur, _ := env.Get(node.Var)
		switch n := object.Numeric(cur).(type) {
		case *object.Float:
			env.Set(node.Var, &object.Float{Value: n.Value + float64(step)})
		case *object.Integer:
			env.Set(node.Var, &object.Integer{Value: n.Value + step})
		}
	}
}
