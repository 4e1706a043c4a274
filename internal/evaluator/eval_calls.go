package evaluator

import (
	"lolcode/internal/ast"
	"lolcode/internal/object"
)

func (i *Interpreter) evalExpressions(exps []ast.Expression, env *object.Environment) []object.Object {
	result := make([]object.Object, 0, len(exps))
	for _, e := range exps {
		result = append(result, i.eval(e, env))
	}
	return result
}

// call evaluates the arguments in the caller's table, then runs the body
// against a fresh table holding only IT and the parameters. Unknown
// functions yield NOOB; surplus arguments are dropped and missing ones
// stay undeclared.
func (i *Interpreter) call(node *ast.FunctionCall, env *object.Environment) object.Object {
	args := i.evalExpressions(node.Arguments, env)

	fn, ok := i.functions[node.Name]
	if !ok {
		return object.NULL
	}

	local := object.NewLocalEnvironment(env)
	for idx, param := range fn.Parameters {
		if idx >= len(args) {
			break
		}
		local.Set(param, args[idx])
	}

	res := i.execBlock(fn.Body, local)
	if res.signal == signalReturn && res.value != nil {
		return res.value
	}
	return object.NULL
}
